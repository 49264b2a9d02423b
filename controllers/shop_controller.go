package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"online-shop/config"
	"online-shop/models"

	"github.com/gin-gonic/gin"
)

type CatalogStore interface {
	GetAllProducts(ctx context.Context, page, limit int) ([]models.Product, int, error)
	GetProductByID(ctx context.Context, id int) (*models.Product, error)
}

type ShopController struct {
	catalog CatalogStore
}

func NewShopController(catalog CatalogStore) *ShopController {
	return &ShopController{catalog: catalog}
}

func productListCacheKey(page, limit int) string {
	return fmt.Sprintf("products_list_p%d_l%d", page, limit)
}

// @Summary List products
// @Description Get paginated list of products
// @Tags Shop
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.PaginatedResponse
// @Router /products [get]
func (ctrl *ShopController) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage := config.AppConfig.ProductsPerPage

	cacheKey := productListCacheKey(page, perPage)
	ctx := c.Request.Context()

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	products, total, err := ctrl.catalog.GetAllProducts(ctx, page, perPage)
	if err != nil {
		c.Error(err)
		return
	}

	response := models.PaginatedResponse{
		Success: true,
		Message: "Products retrieved",
		Data:    products,
		Meta:    models.NewPageInfo(page, perPage, total),
	}

	if config.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		config.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// @Summary Get product by ID
// @Description Get product details
// @Tags Shop
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ShopController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid product ID"})
		return
	}

	product, err := ctrl.catalog.GetProductByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Product retrieved", Data: product})
}
