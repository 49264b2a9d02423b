package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"online-shop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSession_BuildsCallbackURLs(t *testing.T) {
	payment := &MockPaymentClient{SessionID: "cs_test_123"}
	svc := NewCheckoutService(payment, time.Second)

	lineItems := []LineItem{{Name: "X", UnitAmount: 1000, Quantity: 2}}

	sessionID, err := svc.CreateSession(context.Background(), lineItems, "http://localhost:8080")

	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", sessionID)
	assert.Equal(t, "http://localhost:8080/checkout/success", payment.SuccessURL)
	assert.Equal(t, "http://localhost:8080/checkout/cancel", payment.CancelURL)
	assert.Equal(t, lineItems, payment.LineItems)
}

func TestCreateSession_ProviderFailure(t *testing.T) {
	payment := &MockPaymentClient{CreateErr: errors.New("api key expired")}
	svc := NewCheckoutService(payment, time.Second)

	_, err := svc.CreateSession(context.Background(), nil, "http://localhost:8080")

	require.Error(t, err)
	assert.Equal(t, models.ErrKindExternalService, models.KindOf(err))
}

func TestVerifyPaid(t *testing.T) {
	payment := &MockPaymentClient{Paid: true}
	svc := NewCheckoutService(payment, time.Second)

	require.NoError(t, svc.VerifyPaid(context.Background(), "cs_test_123"))
}

func TestVerifyPaid_Unpaid(t *testing.T) {
	payment := &MockPaymentClient{Paid: false}
	svc := NewCheckoutService(payment, time.Second)

	err := svc.VerifyPaid(context.Background(), "cs_test_123")

	require.Error(t, err)
	assert.Equal(t, models.ErrKindUnauthorized, models.KindOf(err))
}

func TestVerifyPaid_MissingSessionID(t *testing.T) {
	svc := NewCheckoutService(&MockPaymentClient{}, time.Second)

	err := svc.VerifyPaid(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, models.ErrKindValidation, models.KindOf(err))
}
