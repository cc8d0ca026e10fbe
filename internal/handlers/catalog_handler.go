package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/newrban/cotizador-api/internal/models"
	"github.com/newrban/cotizador-api/internal/service"
)

// CatalogHandler handles catalog-related HTTP requests
type CatalogHandler struct {
	service *service.CatalogService
	log     *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service *service.CatalogService, log *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log,
	}
}

// SaveCatalogResponse reports how many candidates survived validation
// along with the catalog as saved. Rejected candidates are only
// visible through the accepted count.
type SaveCatalogResponse struct {
	Accepted int              `json:"accepted"`
	Products []models.Product `json:"products"`
}

// GetCatalog handles GET /api/catalog
// Returns the current catalog in display order
func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		h.log.Error("failed to load catalog", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.log)
}

// SaveCatalog handles PUT /api/catalog (admin only)
// Replaces the whole catalog with the valid subset of the submitted candidates
func (h *CatalogHandler) SaveCatalog(w http.ResponseWriter, r *http.Request) {
	var candidates []models.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&candidates); err != nil {
		h.log.Error("failed to decode catalog candidates", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	accepted, err := h.service.Save(r.Context(), candidates)
	if err != nil {
		if errors.Is(err, service.ErrTooManyProducts) {
			WriteError(w, http.StatusBadRequest, "Too many products", h.log)
			return
		}

		h.log.Error("failed to save catalog", "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to save catalog", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, SaveCatalogResponse{
		Accepted: len(accepted),
		Products: accepted,
	}, h.log)
}
