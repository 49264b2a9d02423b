package middleware

import (
	"log"
	"net/http"

	"online-shop/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the single place taxonomy errors become responses.
// Handlers push errors with c.Error and abort; nothing is retried here.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := StatusFor(err)

		if status == http.StatusInternalServerError {
			log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		}

		c.JSON(status, models.ErrorResponse{
			Success: false,
			Message: messageFor(err, status),
		})
	}
}

// StatusFor maps the error taxonomy to HTTP statuses: NotFound 404,
// Unauthorized 403, everything else 500.
func StatusFor(err error) int {
	switch models.KindOf(err) {
	case models.ErrKindNotFound:
		return http.StatusNotFound
	case models.ErrKindUnauthorized:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(err error, status int) string {
	if status == http.StatusInternalServerError {
		// Internal detail stays in the log.
		return "Internal server error"
	}
	return err.Error()
}
