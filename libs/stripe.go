package libs

import (
	"context"
	"fmt"

	"online-shop/services"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// StripeClient implements services.PaymentClient against Stripe's hosted
// checkout. One instance is constructed at startup and injected; there is no
// package-level key.
type StripeClient struct {
	api      *client.API
	currency string
}

func NewStripeClient(secretKey, currency string) (*StripeClient, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("stripe secret key not set")
	}
	if currency == "" {
		currency = "usd"
	}

	api := &client.API{}
	api.Init(secretKey, nil)

	return &StripeClient{api: api, currency: currency}, nil
}

func (c *StripeClient) CreateCheckoutSession(ctx context.Context, lineItems []services.LineItem, successURL, cancelURL string) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(successURL),
		CancelURL:          stripe.String(cancelURL),
	}

	for _, item := range lineItems {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(c.currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(item.UnitAmount),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	session, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return "", err
	}
	return session.ID, nil
}

func (c *StripeClient) VerifySession(ctx context.Context, sessionID string) (bool, error) {
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	}

	session, err := c.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return false, err
	}
	return session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid, nil
}
