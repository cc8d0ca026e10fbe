package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/newrban/cotizador-api/internal/models"
	"github.com/newrban/cotizador-api/internal/repository"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyOrder         = errors.New("order must contain at least one item")
	ErrIncompleteCustomer = errors.New("customer name and email are required")
)

// OrderService handles order business logic
type OrderService struct {
	repo repository.CatalogRepository
	log  *slog.Logger
}

// NewOrderService creates a new order service
func NewOrderService(repo repository.CatalogRepository, log *slog.Logger) *OrderService {
	return &OrderService{
		repo: repo,
		log:  log,
	}
}

// Quote computes an order against the current catalog. Customer info
// may be missing at this stage; it is only enforced by Finalize.
func (s *OrderService) Quote(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	products, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	order := computeOrder(products, req.Items, req.Customer)
	order.ID = uuid.New().String()

	return order, nil
}

// Finalize computes an order that is ready to be exported. Both
// customer fields are required and the order must have at least one
// positive-quantity line.
func (s *OrderService) Finalize(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	if strings.TrimSpace(req.Customer.Name) == "" || strings.TrimSpace(req.Customer.Email) == "" {
		return nil, ErrIncompleteCustomer
	}

	order, err := s.Quote(ctx, req)
	if err != nil {
		return nil, err
	}

	if len(order.Lines) == 0 {
		return nil, ErrEmptyOrder
	}

	return order, nil
}

// computeOrder builds one line per positive-quantity selection.
// Selections pointing outside the current catalog are treated as
// zero-quantity: the catalog may have shrunk between the client
// fetching it and submitting the order.
func computeOrder(products []models.Product, items []models.Selection, customer models.Customer) *models.Order {
	lines := make([]models.OrderLine, 0, len(items))
	total := decimal.Zero

	for _, sel := range items {
		if sel.Quantity <= 0 {
			continue
		}
		if sel.Index < 0 || sel.Index >= len(products) {
			continue
		}

		product := products[sel.Index]
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(sel.Quantity))).Round(2)

		lines = append(lines, models.OrderLine{
			Name:        product.Name,
			Description: product.Description,
			UnitPrice:   product.Price,
			Quantity:    sel.Quantity,
			Subtotal:    subtotal,
		})

		total = total.Add(subtotal)
	}

	return &models.Order{
		Lines:    lines,
		Total:    total,
		Customer: customer,
	}
}
