package services

import (
	"fmt"

	"online-shop/models"

	"github.com/shopspring/decimal"
)

// LineItem is the provider-facing representation of one cart line. UnitAmount
// is in minor currency units (cents).
type LineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
}

type PricingService struct{}

func NewPricingService() *PricingService {
	return &PricingService{}
}

// CartTotal sums price x quantity over the cart using the current catalog
// prices. All arithmetic is decimal so summation order cannot drift.
func (s *PricingService) CartTotal(items []models.CartItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		price, qty, err := itemAmounts(item)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(price.Mul(qty))
	}
	return total, nil
}

// ProviderLineItems converts the cart into the payment provider's line-item
// shape, scaling prices to minor units.
func (s *PricingService) ProviderLineItems(items []models.CartItem) ([]LineItem, error) {
	lineItems := make([]LineItem, 0, len(items))
	for _, item := range items {
		price, _, err := itemAmounts(item)
		if err != nil {
			return nil, err
		}
		lineItems = append(lineItems, LineItem{
			Name:       item.Product.Title,
			UnitAmount: price.Mul(decimal.NewFromInt(100)).Round(0).IntPart(),
			Quantity:   int64(item.Quantity),
		})
	}
	return lineItems, nil
}

func itemAmounts(item models.CartItem) (price, qty decimal.Decimal, err error) {
	if item.Product == nil {
		return decimal.Zero, decimal.Zero, models.ValidationError(fmt.Sprintf("cart item %d has no product", item.ID))
	}
	if item.Product.Price < 0 {
		return decimal.Zero, decimal.Zero, models.ValidationError(fmt.Sprintf("product %q has an invalid price", item.Product.Title))
	}
	if item.Quantity <= 0 {
		return decimal.Zero, decimal.Zero, models.ValidationError(fmt.Sprintf("product %q has an invalid quantity", item.Product.Title))
	}
	return decimal.NewFromFloat(item.Product.Price), decimal.NewFromInt(int64(item.Quantity)), nil
}
