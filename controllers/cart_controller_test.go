package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"online-shop/middleware"
	"online-shop/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// MockCartManager implements CartManager for testing
type MockCartManager struct {
	Items   []models.CartItem
	Added   []int
	Removed []int
	AddErr  error
}

func (m *MockCartManager) GetCart(_ context.Context, _ int) ([]models.CartItem, error) {
	return m.Items, nil
}

func (m *MockCartManager) AddToCart(_ context.Context, _, productID int) error {
	if m.AddErr != nil {
		return m.AddErr
	}
	m.Added = append(m.Added, productID)
	return nil
}

func (m *MockCartManager) RemoveFromCart(_ context.Context, _, productID int) error {
	m.Removed = append(m.Removed, productID)
	return nil
}

func cartRouter(carts *MockCartManager, catalog *MockCatalog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())

	ctrl := NewCartController(carts, catalog)
	router.GET("/cart", asUser(42), ctrl.GetCart)
	router.POST("/cart", asUser(42), ctrl.PostCart)
	router.POST("/cart-delete-item", asUser(42), ctrl.PostCartDeleteItem)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestPostCart_AddsKnownProduct(t *testing.T) {
	carts := &MockCartManager{}
	catalog := &MockCatalog{Product: &models.Product{ID: 3, Title: "Latte", Price: 4.50}}
	router := cartRouter(carts, catalog)

	w := postJSON(router, "/cart", `{"product_id": 3}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int{3}, carts.Added)
}

func TestPostCart_UnknownProductNotFound(t *testing.T) {
	carts := &MockCartManager{}
	router := cartRouter(carts, &MockCatalog{})

	w := postJSON(router, "/cart", `{"product_id": 404}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, carts.Added, "cart must stay untouched for unknown products")
}

func TestPostCart_MissingProductID(t *testing.T) {
	router := cartRouter(&MockCartManager{}, &MockCatalog{})

	w := postJSON(router, "/cart", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostCartDeleteItem_RemovesLine(t *testing.T) {
	carts := &MockCartManager{}
	router := cartRouter(carts, &MockCatalog{})

	w := postJSON(router, "/cart-delete-item", `{"product_id": 5}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int{5}, carts.Removed)
}

func TestGetCart_ReturnsItems(t *testing.T) {
	carts := &MockCartManager{
		Items: []models.CartItem{
			{ID: 1, ProductID: 3, Quantity: 2, Product: &models.Product{ID: 3, Title: "Latte", Price: 4.50}},
		},
	}
	router := cartRouter(carts, &MockCatalog{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Latte")
}
