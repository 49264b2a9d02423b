package services

import (
	"context"

	"online-shop/models"
)

// MockCartStore implements CartStore for testing
type MockCartStore struct {
	Items    []models.CartItem
	GetErr   error
	ClearErr error
	Cleared  bool
}

func (m *MockCartStore) GetCart(_ context.Context, _ int) ([]models.CartItem, error) {
	return m.Items, m.GetErr
}

func (m *MockCartStore) ClearCart(_ context.Context, _ int) error {
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.Cleared = true
	return nil
}

// MockOrderStore implements OrderStore for testing
type MockOrderStore struct {
	Saved   []*models.Order
	SaveErr error
	Order   *models.Order
	FindErr error
	nextID  int
}

func (m *MockOrderStore) Save(_ context.Context, order *models.Order) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.nextID++
	order.ID = m.nextID
	saved := *order
	m.Saved = append(m.Saved, &saved)
	return nil
}

func (m *MockOrderStore) FindByID(_ context.Context, _ int) (*models.Order, error) {
	return m.Order, m.FindErr
}

func (m *MockOrderStore) FindByUser(_ context.Context, userID int) ([]models.Order, error) {
	orders := []models.Order{}
	for _, o := range m.Saved {
		if o.UserID == userID {
			orders = append(orders, *o)
		}
	}
	return orders, nil
}

// MockPaymentClient implements PaymentClient for testing
type MockPaymentClient struct {
	SessionID  string
	CreateErr  error
	Paid       bool
	VerifyErr  error
	LineItems  []LineItem
	SuccessURL string
	CancelURL  string
}

func (m *MockPaymentClient) CreateCheckoutSession(_ context.Context, lineItems []LineItem, successURL, cancelURL string) (string, error) {
	m.LineItems = lineItems
	m.SuccessURL = successURL
	m.CancelURL = cancelURL
	return m.SessionID, m.CreateErr
}

func (m *MockPaymentClient) VerifySession(_ context.Context, _ string) (bool, error) {
	return m.Paid, m.VerifyErr
}

func cartWith(products ...models.Product) []models.CartItem {
	items := make([]models.CartItem, 0, len(products))
	for i := range products {
		items = append(items, models.CartItem{
			ID:        i + 1,
			ProductID: products[i].ID,
			Product:   &products[i],
			Quantity:  1,
		})
	}
	return items
}
