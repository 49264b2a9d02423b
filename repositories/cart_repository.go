package repositories

import (
	"context"

	"online-shop/config"
	"online-shop/models"
)

type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

// GetCart returns the user's cart lines with their product resolved.
func (r *CartRepository) GetCart(ctx context.Context, userID int) ([]models.CartItem, error) {
	query := `SELECT ci.id, ci.user_id, ci.product_id, ci.quantity, ci.created_at, ci.updated_at,
	                 p.id, p.title, p.description, p.price, COALESCE(p.image_url, ''), p.created_at, p.updated_at
	          FROM cart_items ci
	          JOIN products p ON ci.product_id = p.id
	          WHERE ci.user_id = $1
	          ORDER BY ci.created_at`

	rows, err := config.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, models.PersistenceError("failed to load cart", err)
	}
	defer rows.Close()

	items := []models.CartItem{}
	for rows.Next() {
		var item models.CartItem
		var p models.Product
		err := rows.Scan(
			&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
			&p.ID, &p.Title, &p.Description, &p.Price, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, models.PersistenceError("failed to scan cart item", err)
		}
		item.Product = &p
		items = append(items, item)
	}
	return items, nil
}

func (r *CartRepository) AddToCart(ctx context.Context, userID, productID int) error {
	query := `INSERT INTO cart_items (user_id, product_id, quantity, created_at, updated_at)
	          VALUES ($1, $2, 1, NOW(), NOW())
	          ON CONFLICT (user_id, product_id)
	          DO UPDATE SET quantity = cart_items.quantity + 1, updated_at = NOW()`

	if _, err := config.DB.Exec(ctx, query, userID, productID); err != nil {
		return models.PersistenceError("failed to add to cart", err)
	}
	return nil
}

func (r *CartRepository) RemoveFromCart(ctx context.Context, userID, productID int) error {
	query := `DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`

	if _, err := config.DB.Exec(ctx, query, userID, productID); err != nil {
		return models.PersistenceError("failed to remove cart item", err)
	}
	return nil
}

func (r *CartRepository) ClearCart(ctx context.Context, userID int) error {
	query := `DELETE FROM cart_items WHERE user_id = $1`

	if _, err := config.DB.Exec(ctx, query, userID); err != nil {
		return models.PersistenceError("failed to clear cart", err)
	}
	return nil
}
