package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/newrban/cotizador-api/internal/models"
	"github.com/newrban/cotizador-api/internal/repository"
	"github.com/newrban/cotizador-api/internal/service"
	"github.com/newrban/cotizador-api/pkg/logger"
	"github.com/shopspring/decimal"
)

func newCatalogHandler(t *testing.T) (*CatalogHandler, *repository.FileCatalogRepository) {
	t.Helper()

	log := logger.New("error")
	repo := repository.NewFileCatalogRepository(filepath.Join(t.TempDir(), "catalog.json"), log)
	svc := service.NewCatalogService(repo, 20, log)
	return NewCatalogHandler(svc, log), repo
}

func TestGetCatalog_Empty(t *testing.T) {
	handler, _ := newCatalogHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	w := httptest.NewRecorder()

	handler.GetCatalog(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var products []models.Product
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(products) != 0 {
		t.Errorf("expected empty catalog, got %d products", len(products))
	}
}

func TestGetCatalog_Seeded(t *testing.T) {
	handler, repo := newCatalogHandler(t)

	seed := []models.Product{
		{Name: "Soap", Price: decimal.NewFromFloat(10.00), ImageURL: "http://img/1"},
		{Name: "Oil", Price: decimal.NewFromFloat(25.00), ImageURL: "http://img/2"},
	}
	if err := repo.Replace(context.Background(), seed); err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	w := httptest.NewRecorder()

	handler.GetCatalog(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var products []models.Product
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}

	if products[0].Name != "Soap" || products[1].Name != "Oil" {
		t.Errorf("unexpected product order: %q, %q", products[0].Name, products[1].Name)
	}
}

func TestSaveCatalog(t *testing.T) {
	handler, _ := newCatalogHandler(t)

	candidates := []models.ProductInput{
		{Name: "Soap", Price: decimal.NewFromFloat(10.00), ImageURL: "http://img/1"},
		{Name: "", Price: decimal.NewFromFloat(5.00), ImageURL: "http://img"},
		{Name: "Oil", Price: decimal.NewFromFloat(25.00), ImageURL: "http://img/2"},
	}
	body, _ := json.Marshal(candidates)

	req := httptest.NewRequest(http.MethodPut, "/api/catalog", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.SaveCatalog(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp SaveCatalogResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Accepted != 2 {
		t.Errorf("accepted = %d, want 2", resp.Accepted)
	}

	if len(resp.Products) != 2 {
		t.Fatalf("products = %d, want 2", len(resp.Products))
	}

	if resp.Products[0].Name != "Soap" || resp.Products[1].Name != "Oil" {
		t.Errorf("unexpected accepted products: %q, %q", resp.Products[0].Name, resp.Products[1].Name)
	}
}

func TestSaveCatalog_InvalidBody(t *testing.T) {
	handler, _ := newCatalogHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/api/catalog", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()

	handler.SaveCatalog(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestSaveCatalog_TooManyCandidates(t *testing.T) {
	log := logger.New("error")
	repo := repository.NewFileCatalogRepository(filepath.Join(t.TempDir(), "catalog.json"), log)
	svc := service.NewCatalogService(repo, 1, log)
	handler := NewCatalogHandler(svc, log)

	candidates := []models.ProductInput{
		{Name: "A", Price: decimal.NewFromFloat(1), ImageURL: "http://img/a"},
		{Name: "B", Price: decimal.NewFromFloat(2), ImageURL: "http://img/b"},
	}
	body, _ := json.Marshal(candidates)

	req := httptest.NewRequest(http.MethodPut, "/api/catalog", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.SaveCatalog(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}
