package catalog

import (
	"strings"

	"github.com/newrban/cotizador-api/internal/models"
)

// Validate applies the persistence rule to an operator-submitted
// candidate: non-blank name, positive price, non-blank image link.
// Candidates failing the rule are dropped whole; there is no partial
// save and no per-field error reporting.
func Validate(in models.ProductInput) (models.Product, bool) {
	name := strings.TrimSpace(in.Name)
	image := strings.TrimSpace(in.ImageURL)

	if name == "" || image == "" || !in.Price.IsPositive() {
		return models.Product{}, false
	}

	return models.Product{
		Name:        name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    image,
	}, true
}
