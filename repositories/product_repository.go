package repositories

import (
	"context"
	"errors"

	"online-shop/config"
	"online-shop/models"

	"github.com/jackc/pgx/v5"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) GetAllProducts(ctx context.Context, page, limit int) ([]models.Product, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, models.PersistenceError("failed to count products", err)
	}

	query := `SELECT id, title, description, price, COALESCE(image_url, ''), created_at, updated_at
	          FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := config.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, models.PersistenceError("failed to list products", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, models.PersistenceError("failed to scan product", err)
		}
		products = append(products, p)
	}
	return products, total, nil
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	query := `SELECT id, title, description, price, COALESCE(image_url, ''), created_at, updated_at
	          FROM products WHERE id = $1`

	var p models.Product
	err := config.DB.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.Price, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NotFoundError("product not found")
		}
		return nil, models.PersistenceError("failed to load product", err)
	}
	return &p, nil
}
