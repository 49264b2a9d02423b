package controllers

import (
	"fmt"

	"online-shop/models"
	"online-shop/services"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	carts         CartManager
	pricing       *services.PricingService
	checkout      *services.CheckoutService
	orders        *services.OrderService
	verifySession bool
}

func NewCheckoutController(carts CartManager, pricing *services.PricingService, checkout *services.CheckoutService, orders *services.OrderService, verifySession bool) *CheckoutController {
	return &CheckoutController{
		carts:         carts,
		pricing:       pricing,
		checkout:      checkout,
		orders:        orders,
		verifySession: verifySession,
	}
}

func baseURL(c *gin.Context) string {
	scheme := "https"
	if c.Request.TLS == nil {
		scheme = "http"
	}
	return fmt.Sprintf("%s://%s", scheme, c.Request.Host)
}

// @Summary Start checkout
// @Description Price the cart and open a hosted payment session
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 500 {object} models.ErrorResponse
// @Router /checkout [get]
func (ctrl *CheckoutController) GetCheckout(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetInt("user_id")

	items, err := ctrl.carts.GetCart(ctx, userID)
	if err != nil {
		c.Error(err)
		return
	}

	total, err := ctrl.pricing.CartTotal(items)
	if err != nil {
		c.Error(err)
		return
	}

	lineItems, err := ctrl.pricing.ProviderLineItems(items)
	if err != nil {
		c.Error(err)
		return
	}

	sessionID, err := ctrl.checkout.CreateSession(ctx, lineItems, baseURL(c))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Checkout session created",
		Data: models.CheckoutResponse{
			Items:      items,
			TotalPrice: total.StringFixed(2),
			SessionID:  sessionID,
		},
	})
}

// @Summary Checkout success callback
// @Description Materialize the cart into an order and clear the cart
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Param session_id query string false "Checkout session id (required when verification is enabled)"
// @Success 201 {object} models.Response
// @Failure 500 {object} models.ErrorResponse
// @Router /checkout/success [get]
func (ctrl *CheckoutController) GetCheckoutSuccess(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetInt("user_id")
	userEmail := c.GetString("user_email")

	if ctrl.verifySession {
		if err := ctrl.checkout.VerifyPaid(ctx, c.Query("session_id")); err != nil {
			c.Error(err)
			return
		}
	}

	order, err := ctrl.orders.PlaceOrder(ctx, userID, userEmail)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(201, models.Response{
		Success: true,
		Message: "Order created successfully",
		Data: models.CheckoutSuccessResponse{
			OrderID:   order.ID,
			UserEmail: order.UserEmail,
			Items:     len(order.Products),
		},
	})
}
