package services

import (
	"context"
	"log"

	"online-shop/models"

	"github.com/shopspring/decimal"
)

type CartStore interface {
	GetCart(ctx context.Context, userID int) ([]models.CartItem, error)
	ClearCart(ctx context.Context, userID int) error
}

type OrderStore interface {
	Save(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id int) (*models.Order, error)
	FindByUser(ctx context.Context, userID int) ([]models.Order, error)
}

// ErrEmptyCart rejects checkout completion for an empty cart instead of
// materializing a zero-line order.
var ErrEmptyCart = models.ValidationError("cart is empty")

type OrderService struct {
	carts  CartStore
	orders OrderStore
	email  *models.EmailService
}

func NewOrderService(carts CartStore, orders OrderStore, email *models.EmailService) *OrderService {
	return &OrderService{carts: carts, orders: orders, email: email}
}

// PlaceOrder converts the user's cart into an immutable order: read cart,
// snapshot each product by value, persist, then clear the cart. Persistence
// and clearing are separate storage operations, not one transaction; if the
// clear fails the order still exists and both the order and the error are
// returned. Revisiting the success URL with a non-empty cart creates another
// order each time.
func (s *OrderService) PlaceOrder(ctx context.Context, userID int, userEmail string) (*models.Order, error) {
	items, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &models.Order{
		UserID:    userID,
		UserEmail: userEmail,
	}
	for _, item := range items {
		if item.Product == nil {
			return nil, models.ValidationError("cart item has no product")
		}
		order.Products = append(order.Products, models.OrderProduct{
			ProductID:   item.ProductID,
			Title:       item.Product.Title,
			Description: item.Product.Description,
			Price:       item.Product.Price,
			Quantity:    item.Quantity,
		})
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	if err := s.carts.ClearCart(ctx, userID); err != nil {
		log.Printf("order %d created but cart clear failed: %v", order.ID, err)
		return order, err
	}

	s.sendConfirmation(order)

	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID int) ([]models.Order, error) {
	return s.orders.FindByUser(ctx, userID)
}

// sendConfirmation mails the order total in the background. Best effort: a
// mail failure never fails the order.
func (s *OrderService) sendConfirmation(order *models.Order) {
	if s.email == nil {
		return
	}

	total := decimal.Zero
	for _, line := range order.Products {
		total = total.Add(decimal.NewFromFloat(line.Price).Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	go func() {
		if err := s.email.SendOrderConfirmationEmail(order.UserEmail, order.ID, total.StringFixed(2)); err != nil {
			log.Printf("failed to send confirmation for order %d: %v", order.ID, err)
		}
	}()
}
