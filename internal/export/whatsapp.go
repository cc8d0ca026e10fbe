package export

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/newrban/cotizador-api/internal/config"
	"github.com/newrban/cotizador-api/internal/models"
)

// OrderMessage renders an order as the plain-text body of a WhatsApp
// message: a header line, one line per order line, the total, and the
// customer's details when present.
func OrderMessage(order *models.Order) string {
	var b strings.Builder

	b.WriteString("Hola! Quiero hacer el siguiente pedido:\n")
	for _, line := range order.Lines {
		fmt.Fprintf(&b, "- %d x %s ($%s c/u) = $%s\n",
			line.Quantity,
			line.Name,
			line.UnitPrice.StringFixed(2),
			line.Subtotal.StringFixed(2),
		)
	}
	fmt.Fprintf(&b, "Total: $%s", order.Total.StringFixed(2))

	if order.Customer.Name != "" {
		fmt.Fprintf(&b, "\nCliente: %s", order.Customer.Name)
	}
	if order.Customer.Email != "" {
		fmt.Fprintf(&b, "\nEmail: %s", order.Customer.Email)
	}

	return b.String()
}

// OrderLink embeds the order message, URL-escaped, into a deep link
// addressed to the configured destination number.
func OrderLink(cfg config.WhatsAppConfig, order *models.Order) string {
	return fmt.Sprintf("%s/%s?text=%s",
		strings.TrimRight(cfg.BaseURL, "/"),
		cfg.Phone,
		url.QueryEscape(OrderMessage(order)),
	)
}
