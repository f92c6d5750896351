package services

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/scana-dk/scana/internal/models"
	"github.com/scana-dk/scana/internal/stores/favorites"
	"github.com/scana-dk/scana/internal/stores/profile"
)

//go:embed prices.json
var pricesJSON []byte

// fallbackProduct is served when a scanned product has no dataset entry, so
// the results screen always has something to show.
const fallbackProduct = "Apple AirPods Pro (2nd Gen)"

type productOffers struct {
	Name   string         `json:"name"`
	Offers []models.Offer `json:"offers"`
}

// OfferService serves the bundled price-comparison dataset and keeps the
// profile's favorites counter in sync with the favorites store.
type OfferService struct {
	favorites *favorites.Store
	profile   *profile.Store
	products  []productOffers
}

func NewOfferService(fav *favorites.Store, prof *profile.Store) (*OfferService, error) {
	var products []productOffers
	if err := json.Unmarshal(pricesJSON, &products); err != nil {
		return nil, fmt.Errorf("decoding bundled price dataset: %w", err)
	}

	for i := range products {
		p := &products[i]
		for j := range p.Offers {
			p.Offers[j].ProductName = p.Name
		}
		if c := catalogEntry(p.Name); c != nil {
			for j := range p.Offers {
				p.Offers[j].ProductImage = c.Image
				p.Offers[j].Category = c.Category
				p.Offers[j].Description = c.Description
			}
		}
	}

	return &OfferService{favorites: fav, profile: prof, products: products}, nil
}

// Compare returns the offers for productName sorted cheapest first. An
// unknown product falls back to the default dataset entry.
func (s *OfferService) Compare(productName string) []models.Offer {
	offers := s.find(productName)
	if offers == nil {
		offers = s.find(fallbackProduct)
	}

	sorted := make([]models.Offer, len(offers))
	copy(sorted, offers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Price < sorted[j].Price
	})
	return sorted
}

// Toggle flips the offer's favorite membership, pushes the new list length
// into the profile, and reports whether the offer is now a favorite.
func (s *OfferService) Toggle(ctx context.Context, offer models.Offer) (bool, error) {
	on, err := s.favorites.Toggle(ctx, offer)
	if err != nil {
		return false, err
	}
	if err := s.syncCount(ctx); err != nil {
		return on, err
	}
	return on, nil
}

// RemoveFavorite deletes the favorite with the given content key and syncs
// the profile counter.
func (s *OfferService) RemoveFavorite(ctx context.Context, key string) error {
	if err := s.favorites.Remove(ctx, key); err != nil {
		return err
	}
	return s.syncCount(ctx)
}

func (s *OfferService) syncCount(ctx context.Context) error {
	list, err := s.favorites.Load(ctx)
	if err != nil {
		return err
	}
	_, err = s.profile.SetFavoritesCount(ctx, len(list))
	return err
}

func (s *OfferService) find(productName string) []models.Offer {
	for i := range s.products {
		if s.products[i].Name == productName {
			return s.products[i].Offers
		}
	}
	return nil
}

func catalogEntry(name string) *CatalogProduct {
	for i := range Catalog {
		if Catalog[i].Name == name {
			return &Catalog[i]
		}
	}
	return nil
}
