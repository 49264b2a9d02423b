package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"online-shop/config"
	"online-shop/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockCatalog implements CatalogStore for testing
type MockCatalog struct {
	Products []models.Product
	Total    int
	Product  *models.Product
	Err      error
}

func (m *MockCatalog) GetAllProducts(_ context.Context, page, limit int) ([]models.Product, int, error) {
	if m.Err != nil {
		return nil, 0, m.Err
	}
	offset := (page - 1) * limit
	if offset >= len(m.Products) {
		return []models.Product{}, m.Total, nil
	}
	end := offset + limit
	if end > len(m.Products) {
		end = len(m.Products)
	}
	return m.Products[offset:end], m.Total, nil
}

func (m *MockCatalog) GetProductByID(_ context.Context, _ int) (*models.Product, error) {
	if m.Product == nil {
		return nil, models.NotFoundError("product not found")
	}
	return m.Product, m.Err
}

func shopRouter(catalog *MockCatalog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{ProductsPerPage: 6}

	router := gin.New()
	ctrl := NewShopController(catalog)
	router.GET("/products", ctrl.GetProducts)
	router.GET("/products/:id", ctrl.GetProductByID)
	return router
}

func listProducts(t *testing.T, router *gin.Engine, path string) models.PaginatedResponse {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.PaginatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func catalogOf(n int) *MockCatalog {
	products := make([]models.Product, n)
	for i := range products {
		products[i] = models.Product{ID: i + 1, Title: "Product", Price: 10}
	}
	return &MockCatalog{Products: products, Total: n}
}

func TestGetProducts_FirstPage(t *testing.T) {
	router := shopRouter(catalogOf(13))

	resp := listProducts(t, router, "/products")

	assert.True(t, resp.Meta.HasNextPage)
	assert.False(t, resp.Meta.HasPrevPage)
	assert.Equal(t, 3, resp.Meta.LastPage)
	assert.Len(t, resp.Data, 6)
}

func TestGetProducts_BeyondLastPage(t *testing.T) {
	router := shopRouter(catalogOf(13))

	resp := listProducts(t, router, "/products?page=9")

	assert.False(t, resp.Meta.HasNextPage)
	assert.Empty(t, resp.Data)
}
