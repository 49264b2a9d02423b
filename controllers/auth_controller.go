package controllers

import (
	"online-shop/models"
	"online-shop/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register godoc
// @Summary Register new user
// @Description Register a new customer account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	result, err := ctrl.auth.Register(c.Request.Context(), req)
	if err != nil {
		if models.KindOf(err) == models.ErrKindValidation {
			c.JSON(400, models.ErrorResponse{Success: false, Message: err.Error()})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(201, models.Response{Success: true, Message: "Registration successful", Data: result})
}

// Login godoc
// @Summary Login
// @Description Authenticate and receive a bearer token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	result, err := ctrl.auth.Login(c.Request.Context(), req)
	if err != nil {
		if models.KindOf(err) == models.ErrKindUnauthorized {
			c.JSON(401, models.ErrorResponse{Success: false, Message: err.Error()})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Login successful", Data: result})
}
