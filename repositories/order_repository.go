package repositories

import (
	"context"
	"errors"
	"time"

	"online-shop/config"
	"online-shop/models"

	"github.com/jackc/pgx/v5"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Save persists the order and its snapshot lines in a single transaction.
// Orders are write-once: there is no update path.
func (r *OrderRepository) Save(ctx context.Context, order *models.Order) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return models.PersistenceError("failed to start transaction", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	err = tx.QueryRow(ctx,
		`INSERT INTO orders (user_id, user_email, created_at) VALUES ($1, $2, $3) RETURNING id, created_at`,
		order.UserID, order.UserEmail, now,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return models.PersistenceError("failed to create order", err)
	}

	for i := range order.Products {
		line := &order.Products[i]
		line.OrderID = order.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO order_products (order_id, product_id, title, description, price, quantity)
			 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			line.OrderID, line.ProductID, line.Title, line.Description, line.Price, line.Quantity,
		).Scan(&line.ID)
		if err != nil {
			return models.PersistenceError("failed to create order line", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return models.PersistenceError("failed to commit order", err)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id int) (*models.Order, error) {
	var order models.Order
	err := config.DB.QueryRow(ctx,
		`SELECT id, user_id, user_email, created_at FROM orders WHERE id = $1`,
		id,
	).Scan(&order.ID, &order.UserID, &order.UserEmail, &order.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NotFoundError("order not found")
		}
		return nil, models.PersistenceError("failed to load order", err)
	}

	products, err := r.findLines(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Products = products

	return &order, nil
}

func (r *OrderRepository) FindByUser(ctx context.Context, userID int) ([]models.Order, error) {
	rows, err := config.DB.Query(ctx,
		`SELECT id, user_id, user_email, created_at FROM orders WHERE user_id = $1 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, models.PersistenceError("failed to list orders", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var order models.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.UserEmail, &order.CreatedAt); err != nil {
			return nil, models.PersistenceError("failed to scan order", err)
		}
		orders = append(orders, order)
	}
	rows.Close()

	for i := range orders {
		products, err := r.findLines(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Products = products
	}

	return orders, nil
}

func (r *OrderRepository) findLines(ctx context.Context, orderID int) ([]models.OrderProduct, error) {
	rows, err := config.DB.Query(ctx,
		`SELECT id, order_id, product_id, title, description, price, quantity
		 FROM order_products WHERE order_id = $1 ORDER BY id`,
		orderID)
	if err != nil {
		return nil, models.PersistenceError("failed to load order lines", err)
	}
	defer rows.Close()

	products := []models.OrderProduct{}
	for rows.Next() {
		var line models.OrderProduct
		err := rows.Scan(&line.ID, &line.OrderID, &line.ProductID, &line.Title, &line.Description, &line.Price, &line.Quantity)
		if err != nil {
			return nil, models.PersistenceError("failed to scan order line", err)
		}
		products = append(products, line)
	}
	return products, nil
}
