package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/newrban/cotizador-api/internal/catalog"
	"github.com/newrban/cotizador-api/internal/models"
	"github.com/newrban/cotizador-api/internal/repository"
)

var ErrTooManyProducts = errors.New("too many products")

// CatalogService handles business logic for the product catalog
type CatalogService struct {
	repo        repository.CatalogRepository
	maxProducts int
	log         *slog.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo repository.CatalogRepository, maxProducts int, log *slog.Logger) *CatalogService {
	return &CatalogService{
		repo:        repo,
		maxProducts: maxProducts,
		log:         log,
	}
}

// List returns the current catalog in display order
func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	return s.repo.Load(ctx)
}

// Save validates every candidate, silently drops the rejects,
// normalizes image links, and replaces the whole stored catalog with
// the surviving set. A save with fewer valid records than before
// shrinks the catalog; there is no merging.
func (s *CatalogService) Save(ctx context.Context, candidates []models.ProductInput) ([]models.Product, error) {
	if len(candidates) > s.maxProducts {
		return nil, ErrTooManyProducts
	}

	accepted := make([]models.Product, 0, len(candidates))
	for i, candidate := range candidates {
		product, ok := catalog.Validate(candidate)
		if !ok {
			s.log.Debug("candidate rejected", "position", i)
			continue
		}

		normalized, err := catalog.NormalizeImageURL(product.ImageURL)
		if err != nil {
			s.log.Warn("image link not recognized, keeping as submitted",
				"position", i,
				"url", product.ImageURL,
			)
		}
		product.ImageURL = normalized

		accepted = append(accepted, product)
	}

	if err := s.repo.Replace(ctx, accepted); err != nil {
		return nil, fmt.Errorf("failed to persist catalog: %w", err)
	}

	s.log.Info("catalog saved", "submitted", len(candidates), "accepted", len(accepted))

	return accepted, nil
}
