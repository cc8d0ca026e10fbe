package export

import (
	"bytes"
	"fmt"

	"github.com/newrban/cotizador-api/internal/models"
	"github.com/tealeg/xlsx"
)

// OrderWorkbook renders an order as a two-sheet spreadsheet: "Pedido"
// holds one row per order line plus a trailing TOTAL row, "Datos"
// holds the customer's name and email.
func OrderWorkbook(order *models.Order) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Pedido")
	if err != nil {
		return nil, fmt.Errorf("failed to create order sheet: %w", err)
	}

	headers := []string{"Producto", "Descripción", "Precio Unitario", "Cantidad", "Subtotal"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, line := range order.Lines {
		row := sheet.AddRow()
		row.AddCell().SetValue(line.Name)
		row.AddCell().SetValue(line.Description)
		row.AddCell().SetValue(line.UnitPrice.StringFixed(2))
		row.AddCell().SetValue(line.Quantity)
		row.AddCell().SetValue(line.Subtotal.StringFixed(2))
	}

	totalRow := sheet.AddRow()
	for i := 0; i < 3; i++ {
		totalRow.AddCell()
	}
	totalRow.AddCell().SetValue("TOTAL")
	totalRow.AddCell().SetValue(order.Total.StringFixed(2))

	customerSheet, err := file.AddSheet("Datos")
	if err != nil {
		return nil, fmt.Errorf("failed to create customer sheet: %w", err)
	}

	customerHeader := customerSheet.AddRow()
	customerHeader.AddCell().SetValue("Cliente")
	customerHeader.AddCell().SetValue("Email")

	customerRow := customerSheet.AddRow()
	customerRow.AddCell().SetValue(order.Customer.Name)
	customerRow.AddCell().SetValue(order.Customer.Email)

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}
