// Package services contains the application services that orchestrate the
// Scana stores: mock product recognition, price comparison with favorites,
// and the signup/login flow.
package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/scana-dk/scana/internal/logging"
	"github.com/scana-dk/scana/internal/models"
	"github.com/scana-dk/scana/internal/storage"
	"github.com/scana-dk/scana/internal/stores/history"
	"github.com/scana-dk/scana/internal/stores/profile"
)

// ScanResult carries the recognized product and the persisted history
// record of one scan.
type ScanResult struct {
	Product CatalogProduct
	Record  models.ScanRecord
}

// ScanService implements the scan pipeline: pick the next catalog product,
// record it in the history (crediting the profile's elo), and bump the
// scan counter.
//
// The pipeline's writes are independent: if the process dies between them,
// a scan can be recorded without its elo credit or counter bump. Nothing is
// rolled back; the next scan proceeds normally.
type ScanService struct {
	storage storage.Storage
	history *history.Store
	profile *profile.Store
	log     logging.Logger
}

func NewScanService(s storage.Storage, h *history.Store, p *profile.Store, log logging.Logger) *ScanService {
	return &ScanService{storage: s, history: h, profile: p, log: log.With("service", "scan")}
}

// Scan runs the pipeline for one captured photo (photoURI may be empty).
func (s *ScanService) Scan(ctx context.Context, photoURI string) (*ScanResult, error) {
	product, err := s.nextProduct(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := s.history.Add(ctx, history.ScanInput{
		ProductName: product.Name,
		Price:       product.Price,
		PhotoURI:    photoURI,
	}, func(ctx context.Context, inc int) error {
		_, err := s.profile.AddElo(ctx, inc)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("recording scan: %w", err)
	}

	if _, err := s.profile.IncScanCount(ctx); err != nil {
		return nil, fmt.Errorf("updating scan count: %w", err)
	}

	s.log.Info(ctx, "scan recorded", "product", product.Name)
	return &ScanResult{Product: product, Record: rec}, nil
}

// nextProduct reads the rotation counter, picks the corresponding catalog
// entry, and advances the counter. A missing or malformed counter restarts
// the rotation at the first product.
func (s *ScanService) nextProduct(ctx context.Context) (CatalogProduct, error) {
	count := 0

	data, err := s.storage.Get(ctx, storage.KeyScanCount)
	if err != nil {
		return CatalogProduct{}, fmt.Errorf("loading scan counter: %w", err)
	}
	if data != nil {
		count, err = strconv.Atoi(string(data))
		if err != nil {
			s.log.Warn(ctx, "malformed scan counter, restarting rotation", "value", string(data))
			count = 0
		}
	}

	product := Catalog[count%len(Catalog)]

	if err := s.storage.Set(ctx, storage.KeyScanCount, []byte(strconv.Itoa(count+1))); err != nil {
		return CatalogProduct{}, fmt.Errorf("saving scan counter: %w", err)
	}
	return product, nil
}
