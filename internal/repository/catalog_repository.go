package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/newrban/cotizador-api/internal/models"
)

// CatalogRepository defines persistence for the product catalog.
// The catalog is always read and written whole: Replace swaps the
// entire stored set, there is no per-record update.
type CatalogRepository interface {
	Load(ctx context.Context) ([]models.Product, error)
	Replace(ctx context.Context, products []models.Product) error
}

// FileCatalogRepository persists the catalog as a JSON file.
// Saves are atomic (temp file + rename) and serialized by a mutex;
// concurrent saves resolve as last-writer-wins.
type FileCatalogRepository struct {
	path string
	log  *slog.Logger
	mu   sync.Mutex
}

// NewFileCatalogRepository creates a repository backed by the given file path
func NewFileCatalogRepository(path string, log *slog.Logger) *FileCatalogRepository {
	return &FileCatalogRepository{
		path: path,
		log:  log,
	}
}

// Load reads the persisted catalog. A missing or unreadable file yields
// an empty catalog rather than an error, so a fresh deployment starts
// with nothing to sell instead of refusing to start.
func (r *FileCatalogRepository) Load(ctx context.Context) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.log.Warn("catalog file unreadable, starting empty", "path", r.path, "error", err)
		}
		return []models.Product{}, nil
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		r.log.Warn("catalog file malformed, starting empty", "path", r.path, "error", err)
		return []models.Product{}, nil
	}

	return products, nil
}

// Replace overwrites the stored catalog with the given set. The write
// goes to a temp file in the same directory and is renamed into place,
// so a failed save never leaves a partially written catalog behind.
func (r *FileCatalogRepository) Replace(ctx context.Context, products []models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "catalog-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp catalog file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close catalog file: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace catalog file: %w", err)
	}

	return nil
}
