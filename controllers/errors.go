package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/frcalderon/sweetify-ms-products/services"
)

// ErrorResponse is the uniform error body returned by every failing route.
type ErrorResponse struct {
	Message    string    `json:"message"`
	HTTPStatus string    `json:"httpStatus"`
	Timestamp  time.Time `json:"timestamp"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{
		Message:    message,
		HTTPStatus: statusName(status),
		Timestamp:  time.Now().UTC(),
	})
}

// respondServiceError maps domain error kinds onto HTTP statuses. Store
// failures fall through as 500s; nothing is retried.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrIngredientNotFound):
		respondError(c, http.StatusNotFound, "Ingredient not found")
	case errors.Is(err, services.ErrProductNotFound):
		respondError(c, http.StatusNotFound, "Product not found")
	case errors.Is(err, services.ErrIngredientInUse):
		respondError(c, http.StatusBadRequest, "Ingredient has products assigned")
	default:
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}

// statusName renders a status code as its constant-style name, e.g.
// 404 -> NOT_FOUND.
func statusName(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}
