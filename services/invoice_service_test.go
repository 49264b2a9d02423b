package services

import (
	"bytes"
	"context"
	"testing"

	"online-shop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memorySink implements DocumentSink for testing
type memorySink struct {
	bytes.Buffer
	finalized bool
}

func (s *memorySink) Finalize() error {
	s.finalized = true
	return nil
}

func testOrder() *models.Order {
	return &models.Order{
		ID:        7,
		UserID:    42,
		UserEmail: "user@example.com",
		Products: []models.OrderProduct{
			{Title: "A", Price: 10, Quantity: 1},
			{Title: "B", Price: 5, Quantity: 2},
		},
	}
}

func TestInvoiceTotal(t *testing.T) {
	assert.Equal(t, "20.00", InvoiceTotal(testOrder()).StringFixed(2))
}

func TestInvoiceTotal_MatchesPerLineAmounts(t *testing.T) {
	order := testOrder()

	lineSum := 0.0
	for _, line := range order.Products {
		lineSum += line.Price * float64(line.Quantity)
	}

	total, _ := InvoiceTotal(order).Float64()
	assert.InDelta(t, lineSum, total, 0.001)
}

func TestRender_WritesPDFAndFinalizes(t *testing.T) {
	orders := &MockOrderStore{Order: testOrder()}
	svc := NewInvoiceService(orders)
	sink := &memorySink{}

	err := svc.Render(context.Background(), 7, 42, sink)

	require.NoError(t, err)
	assert.True(t, sink.finalized)
	assert.True(t, bytes.HasPrefix(sink.Bytes(), []byte("%PDF")))
}

func TestRender_Deterministic(t *testing.T) {
	orders := &MockOrderStore{Order: testOrder()}
	svc := NewInvoiceService(orders)

	first := &memorySink{}
	require.NoError(t, svc.Render(context.Background(), 7, 42, first))
	second := &memorySink{}
	require.NoError(t, svc.Render(context.Background(), 7, 42, second))

	assert.Equal(t, first.Len(), second.Len())
}

func TestRender_ForeignOrderUnauthorized(t *testing.T) {
	orders := &MockOrderStore{Order: testOrder()}
	svc := NewInvoiceService(orders)
	sink := &memorySink{}

	err := svc.Render(context.Background(), 7, 99, sink)

	require.Error(t, err)
	assert.Equal(t, models.ErrKindUnauthorized, models.KindOf(err))
	assert.Zero(t, sink.Len())
}

func TestRender_UnknownOrderNotFound(t *testing.T) {
	orders := &MockOrderStore{FindErr: models.NotFoundError("order not found")}
	svc := NewInvoiceService(orders)
	sink := &memorySink{}

	err := svc.Render(context.Background(), 404, 42, sink)

	require.Error(t, err)
	assert.Equal(t, models.ErrKindNotFound, models.KindOf(err))
	assert.Zero(t, sink.Len())
}
