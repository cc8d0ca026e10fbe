package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/newrban/cotizador-api/internal/config"
	"github.com/newrban/cotizador-api/internal/export"
	"github.com/newrban/cotizador-api/internal/models"
	"github.com/newrban/cotizador-api/internal/service"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	whatsapp     config.WhatsAppConfig
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, whatsapp config.WhatsAppConfig, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		whatsapp:     whatsapp,
		log:          log,
	}
}

// WhatsAppResponse carries the pre-filled deep link and the message it embeds
type WhatsAppResponse struct {
	Link string `json:"link"`
	Text string `json:"text"`
}

// Quote handles POST /api/order/quote
// Computes lines and total for the selected quantities; customer info is optional here
func (h *OrderHandler) Quote(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	order, err := h.orderService.Quote(r.Context(), req)
	if err != nil {
		h.log.Error("failed to compute order", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, order, h.log)
}

// ExportExcel handles POST /api/order/export
// Finalizes the order and returns it as a downloadable spreadsheet
func (h *OrderHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	order, ok := h.finalize(w, r, req)
	if !ok {
		return
	}

	workbook, err := export.OrderWorkbook(order)
	if err != nil {
		h.log.Error("failed to build order workbook", "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to generate spreadsheet", h.log)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=pedido.xlsx")
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(workbook)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(workbook); err != nil {
		h.log.Error("failed to write workbook response", "error", err)
	}

	h.log.Info("order exported", "order_id", order.ID, "lines", len(order.Lines))
}

// ExportWhatsApp handles POST /api/order/whatsapp
// Finalizes the order and returns the pre-filled messaging deep link
func (h *OrderHandler) ExportWhatsApp(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	order, ok := h.finalize(w, r, req)
	if !ok {
		return
	}

	WriteJSON(w, http.StatusOK, WhatsAppResponse{
		Link: export.OrderLink(h.whatsapp, order),
		Text: export.OrderMessage(order),
	}, h.log)

	h.log.Info("order link generated", "order_id", order.ID, "lines", len(order.Lines))
}

func (h *OrderHandler) decodeRequest(w http.ResponseWriter, r *http.Request) (models.OrderRequest, bool) {
	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return models.OrderRequest{}, false
	}
	return req, true
}

func (h *OrderHandler) finalize(w http.ResponseWriter, r *http.Request, req models.OrderRequest) (*models.Order, bool) {
	order, err := h.orderService.Finalize(r.Context(), req)
	if err != nil {
		switch err {
		case service.ErrIncompleteCustomer:
			WriteError(w, http.StatusBadRequest, "Customer name and email are required", h.log)
		case service.ErrEmptyOrder:
			WriteError(w, http.StatusBadRequest, "Order must contain at least one item", h.log)
		default:
			h.log.Error("failed to finalize order", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return nil, false
	}
	return order, true
}
