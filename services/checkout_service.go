package services

import (
	"context"
	"time"

	"online-shop/models"
)

// PaymentClient is the hosted-checkout side of the payment provider. The
// concrete implementation lives in libs; tests supply a mock.
type PaymentClient interface {
	CreateCheckoutSession(ctx context.Context, lineItems []LineItem, successURL, cancelURL string) (string, error)
	VerifySession(ctx context.Context, sessionID string) (bool, error)
}

type CheckoutService struct {
	payment PaymentClient
	timeout time.Duration
}

func NewCheckoutService(payment PaymentClient, timeout time.Duration) *CheckoutService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &CheckoutService{payment: payment, timeout: timeout}
}

// CreateSession opens a hosted checkout session for the priced line items and
// returns its id for the client-side redirect. The provider call is bounded
// by the configured timeout; expiry and rejection surface as the same error
// class. The session's completion is NOT verified before order creation
// unless CHECKOUT_VERIFY_SESSION is enabled.
func (s *CheckoutService) CreateSession(ctx context.Context, lineItems []LineItem, baseURL string) (string, error) {
	successURL := baseURL + "/checkout/success"
	cancelURL := baseURL + "/checkout/cancel"

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	sessionID, err := s.payment.CreateCheckoutSession(ctx, lineItems, successURL, cancelURL)
	if err != nil {
		return "", models.ExternalServiceError("failed to create checkout session", err)
	}
	return sessionID, nil
}

// VerifyPaid confirms with the provider that the session was actually paid.
func (s *CheckoutService) VerifyPaid(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return models.ValidationError("session_id is required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	paid, err := s.payment.VerifySession(ctx, sessionID)
	if err != nil {
		return models.ExternalServiceError("failed to verify checkout session", err)
	}
	if !paid {
		return models.UnauthorizedError("checkout session is not paid")
	}
	return nil
}
