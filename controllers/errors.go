package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Syahrulalhabib/nutrivision-backend/services"
)

// respondError maps a pipeline error to a structured failure response.
// Request errors never crash the process; unknown kinds are internal.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	kind := "internal_error"

	switch {
	case errors.Is(err, services.ErrInference):
		// Undecodable or malformed input image. Model execution
		// failures carry no sentinel and fall through to internal.
		status = http.StatusBadRequest
		kind = "inference_error"
	case errors.Is(err, services.ErrFoodNotFound):
		status = http.StatusNotFound
		kind = "food_not_found"
	case errors.Is(err, services.ErrCatalogMismatch):
		kind = "catalog_mismatch"
	case errors.Is(err, services.ErrIndexOutOfRange):
		kind = "index_out_of_range"
	case errors.Is(err, services.ErrInsufficientData):
		kind = "insufficient_data"
	case errors.Is(err, services.ErrDataLoad):
		kind = "data_load_error"
	case errors.Is(err, services.ErrModelLoad):
		kind = "model_load_error"
	}

	c.JSON(status, gin.H{"error": kind, "message": err.Error()})
}
