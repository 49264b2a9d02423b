package routes

import (
	"log"

	"online-shop/config"
	"online-shop/controllers"
	"online-shop/libs"
	"online-shop/middleware"
	"online-shop/models"
	"online-shop/repositories"
	"online-shop/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	productRepo := repositories.NewProductRepository()
	cartRepo := repositories.NewCartRepository()
	orderRepo := repositories.NewOrderRepository()
	userRepo := repositories.NewUserRepository()

	stripeClient, err := libs.NewStripeClient(config.AppConfig.StripeSecretKey, config.AppConfig.Currency)
	if err != nil {
		log.Fatalf("Failed to initialize payment client: %v", err)
	}

	emailService, err := models.NewEmailService()
	if err != nil {
		log.Println("Order confirmation emails disabled:", err)
		emailService = nil
	}

	pricingService := services.NewPricingService()
	checkoutService := services.NewCheckoutService(stripeClient, config.AppConfig.CheckoutTimeout)
	orderService := services.NewOrderService(cartRepo, orderRepo, emailService)
	invoiceService := services.NewInvoiceService(orderRepo)
	authService := services.NewAuthService(userRepo)

	authCtrl := controllers.NewAuthController(authService)
	shopCtrl := controllers.NewShopController(productRepo)
	cartCtrl := controllers.NewCartController(cartRepo, productRepo)
	checkoutCtrl := controllers.NewCheckoutController(cartRepo, pricingService, checkoutService, orderService, config.AppConfig.CheckoutVerifySession)
	orderCtrl := controllers.NewOrderController(orderService, invoiceService)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	router.GET("/", shopCtrl.GetProducts)
	router.GET("/products", shopCtrl.GetProducts)
	router.GET("/products/:id", shopCtrl.GetProductByID)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart", cartCtrl.PostCart)
		auth.POST("/cart-delete-item", cartCtrl.PostCartDeleteItem)

		auth.GET("/checkout", checkoutCtrl.GetCheckout)
		auth.GET("/checkout/success", checkoutCtrl.GetCheckoutSuccess)

		auth.GET("/orders", orderCtrl.GetOrders)
		auth.GET("/orders/:orderId/invoice", orderCtrl.GetInvoice)
	}
}
