package controllers

import (
	"fmt"
	"log"
	"strconv"

	"online-shop/models"
	"online-shop/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders   *services.OrderService
	invoices *services.InvoiceService
}

func NewOrderController(orders *services.OrderService, invoices *services.InvoiceService) *OrderController {
	return &OrderController{orders: orders, invoices: invoices}
}

// responseSink streams invoice bytes straight to the client. Headers go out
// on the first write, so lookup and authorization failures inside the
// renderer can still produce a clean error response.
type responseSink struct {
	c       *gin.Context
	orderID int
	wrote   bool
}

func (s *responseSink) Write(p []byte) (int, error) {
	if !s.wrote {
		s.c.Header("Content-Type", "application/pdf")
		s.c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", services.InvoiceFilename(s.orderID)))
		s.wrote = true
	}
	return s.c.Writer.Write(p)
}

func (s *responseSink) Finalize() error {
	s.c.Writer.Flush()
	return nil
}

// @Summary List orders
// @Description Get the authenticated user's orders
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /orders [get]
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	userID := c.GetInt("user_id")

	orders, err := ctrl.orders.ListOrders(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Orders retrieved", Data: orders})
}

// @Summary Download invoice
// @Description Stream the order's invoice as a PDF
// @Tags Orders
// @Security BearerAuth
// @Produce application/pdf
// @Param orderId path int true "Order ID"
// @Success 200 {file} binary
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{orderId}/invoice [get]
func (ctrl *OrderController) GetInvoice(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("orderId"))
	if err != nil || orderID <= 0 {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid order ID"})
		return
	}

	userID := c.GetInt("user_id")
	sink := &responseSink{c: c, orderID: orderID}

	if err := ctrl.invoices.Render(c.Request.Context(), orderID, userID, sink); err != nil {
		if sink.wrote {
			// Headers and part of the body are already out; terminate the
			// stream and log instead of sending a second response.
			log.Printf("invoice stream for order %d aborted: %v", orderID, err)
			return
		}
		c.Error(err)
	}
}
