package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"online-shop/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func errorRouter(err error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/boom", func(c *gin.Context) {
		c.Error(err)
	})
	return router
}

func doRequest(router *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestErrorHandler_NotFound(t *testing.T) {
	w := doRequest(errorRouter(models.NotFoundError("order not found")))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "order not found")
}

func TestErrorHandler_Unauthorized(t *testing.T) {
	w := doRequest(errorRouter(models.UnauthorizedError("not yours")))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestErrorHandler_ValidationStays500(t *testing.T) {
	w := doRequest(errorRouter(models.ValidationError("bad quantity")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestErrorHandler_UntypedError(t *testing.T) {
	w := doRequest(errorRouter(assert.AnError))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestErrorHandler_DoesNotOverrideWrittenResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/boom", func(c *gin.Context) {
		c.String(http.StatusOK, "partial body")
		c.Error(models.NotFoundError("too late"))
	})

	w := doRequest(router)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "partial body", w.Body.String())
}
