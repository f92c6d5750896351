package models

import (
	"strconv"
	"time"
)

// Offer is one store's price listing for a product.
type Offer struct {
	Store        string  `json:"store"`
	Price        float64 `json:"price"`
	Shipping     float64 `json:"shipping"`
	ETA          string  `json:"eta"`
	Rating       float64 `json:"rating"`
	ReviewCount  int     `json:"reviewCount"`
	ProductName  string  `json:"productName"`
	ProductImage string  `json:"productImage,omitempty"`
	Category     string  `json:"category,omitempty"`
	Description  string  `json:"description,omitempty"`
}

// Favorite is a persisted bookmark of one Offer.
//
// ID is assigned at creation and unique per record. Key is derived from the
// offer's content and is what membership and deduplication are based on, so
// saving the same offer twice yields a single favorite.
type Favorite struct {
	ID  string `json:"id"`
	Key string `json:"key"`
	Offer
	AddedAt time.Time `json:"addedAt"`
}

// OfferKey derives the content identity of an offer:
// productName-store-price. Offers sharing all three collapse into one
// favorite.
func OfferKey(o Offer) string {
	name := o.ProductName
	if name == "" {
		name = "unknown"
	}
	return name + "-" + o.Store + "-" + strconv.FormatFloat(o.Price, 'f', -1, 64)
}
