package handlers

import (
	"errors"
	"log"
	"net/http"

	"solar-sizer/internal/api/models"
	"solar-sizer/internal/model"
	"solar-sizer/internal/store"

	"github.com/gin-gonic/gin"
)

func badRequest(c *gin.Context, code string, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}

// respondError maps engine and store errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "INTERNAL_ERROR"
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		status, code = http.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, model.ErrNoCandidates):
		status, code = http.StatusUnprocessableEntity, "NO_COMPATIBLE_EQUIPMENT"
	case errors.Is(err, store.ErrNotFound):
		status, code = http.StatusNotFound, "NOT_FOUND"
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("[API] %s %s: %v", c.Request.Method, c.FullPath(), err)
		msg = "An unexpected error occurred"
	}
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: msg,
		},
	})
}
