package models

type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type AddToCartRequest struct {
	ProductID int `json:"product_id" form:"product_id" binding:"required,gt=0"`
}

type RemoveCartItemRequest struct {
	ProductID int `json:"product_id" form:"product_id" binding:"required,gt=0"`
}

type CheckoutResponse struct {
	Items      []CartItem `json:"items"`
	TotalPrice string     `json:"total_price"`
	SessionID  string     `json:"session_id"`
}

type CheckoutSuccessResponse struct {
	OrderID   int    `json:"order_id"`
	UserEmail string `json:"user_email"`
	Items     int    `json:"items"`
}
