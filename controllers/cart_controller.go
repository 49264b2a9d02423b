package controllers

import (
	"context"

	"online-shop/models"

	"github.com/gin-gonic/gin"
)

type CartManager interface {
	GetCart(ctx context.Context, userID int) ([]models.CartItem, error)
	AddToCart(ctx context.Context, userID, productID int) error
	RemoveFromCart(ctx context.Context, userID, productID int) error
}

type CartController struct {
	carts   CartManager
	catalog CatalogStore
}

func NewCartController(carts CartManager, catalog CatalogStore) *CartController {
	return &CartController{carts: carts, catalog: catalog}
}

// @Summary Get cart
// @Description Get the authenticated user's cart with resolved products
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	items, err := ctrl.carts.GetCart(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Cart retrieved", Data: items})
}

// @Summary Add to cart
// @Description Add a product to the cart, incrementing quantity if present
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Add to cart request"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart [post]
func (ctrl *CartController) PostCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "product_id is required"})
		return
	}

	ctx := c.Request.Context()
	userID := c.GetInt("user_id")

	// Unknown products are rejected before touching the cart.
	if _, err := ctrl.catalog.GetProductByID(ctx, req.ProductID); err != nil {
		c.Error(err)
		return
	}

	if err := ctrl.carts.AddToCart(ctx, userID, req.ProductID); err != nil {
		c.Error(err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Product added to cart"})
}

// @Summary Remove cart item
// @Description Remove a product line from the cart
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.RemoveCartItemRequest true "Remove cart item request"
// @Success 200 {object} models.Response
// @Router /cart-delete-item [post]
func (ctrl *CartController) PostCartDeleteItem(c *gin.Context) {
	var req models.RemoveCartItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "product_id is required"})
		return
	}

	userID := c.GetInt("user_id")

	if err := ctrl.carts.RemoveFromCart(c.Request.Context(), userID, req.ProductID); err != nil {
		c.Error(err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Product removed from cart"})
}
