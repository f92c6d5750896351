package services

// CatalogProduct is one entry of the demo recognition catalog.
type CatalogProduct struct {
	Name        string
	Price       string
	Category    string
	Description string
	Image       string
	Confidence  float64
}

// Catalog is the hard-coded product set the mock recognizer rotates
// through. There is no real image recognition behind it.
var Catalog = []CatalogProduct{
	{
		Name:        "Apple AirPods Pro (2nd Gen)",
		Price:       "1,899 kr",
		Category:    "Electronics",
		Description: "Active noise cancellation with Adaptive Transparency",
		Image:       "https://store.storeimages.cdn-apple.com/4668/as-images.apple.com/is/MQD83",
		Confidence:  0.95,
	},
	{
		Name:        "Samsung Galaxy Buds Pro",
		Price:       "1,299 kr",
		Category:    "Electronics",
		Description: "Active noise cancellation and ambient sound",
		Image:       "https://images.samsung.com/is/image/samsung/p6pim/dk/2101/gallery/dk-galaxy-buds-pro",
		Confidence:  0.92,
	},
	{
		Name:        "Sony WH-1000XM4",
		Price:       "2,499 kr",
		Category:    "Electronics",
		Description: "Industry-leading noise canceling with Dual Noise Sensor technology",
		Image:       "https://www.sony.com/image/wh1000xm4",
		Confidence:  0.88,
	},
	{
		Name:        "iPhone 15 Pro",
		Price:       "9,999 kr",
		Category:    "Electronics",
		Description: "Titanium design with A17 Pro chip",
		Image:       "https://store.storeimages.cdn-apple.com/4668/as-images.apple.com/is/iphone-15-pro",
		Confidence:  0.97,
	},
}
