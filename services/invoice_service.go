package services

import (
	"context"
	"fmt"
	"io"

	"online-shop/models"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// DocumentSink receives the rendered document. Handlers wrap the response
// writer; tests use an in-memory sink.
type DocumentSink interface {
	io.Writer
	Finalize() error
}

type InvoiceService struct {
	orders OrderStore
}

func NewInvoiceService(orders OrderStore) *InvoiceService {
	return &InvoiceService{orders: orders}
}

func InvoiceFilename(orderID int) string {
	return fmt.Sprintf("invoice-%d.pdf", orderID)
}

// InvoiceTotal sums the order's frozen snapshot prices. This is deliberately
// not the live cart pricing: catalog edits after checkout must not change an
// invoice.
func InvoiceTotal(order *models.Order) decimal.Decimal {
	total := decimal.Zero
	for _, line := range order.Products {
		total = total.Add(decimal.NewFromFloat(line.Price).Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// Render looks up the order, authorizes the caller, and writes the invoice
// PDF to the sink. The same order id always yields the same logical content.
func (s *InvoiceService) Render(ctx context.Context, orderID, userID int, sink DocumentSink) error {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	if order.UserID != userID {
		return models.UnauthorizedError("order does not belong to the authenticated user")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Invoice", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Order ID: %d", order.ID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, "--------------------------------------------", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	for _, line := range order.Products {
		price := decimal.NewFromFloat(line.Price)
		pdf.CellFormat(0, 8,
			fmt.Sprintf("%s - %d x $%s", line.Title, line.Quantity, price.StringFixed(2)),
			"", 1, "L", false, 0, "")
	}

	pdf.CellFormat(0, 8, "-----------------------", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Total Price: $"+InvoiceTotal(order).StringFixed(2), "", 1, "L", false, 0, "")

	if err := pdf.Output(sink); err != nil {
		// The response may be partially written by now; termination is best
		// effort, the caller cannot downgrade this to a clean error page.
		return models.ExternalServiceError("failed to write invoice", err)
	}

	return sink.Finalize()
}
