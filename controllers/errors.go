package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"resort-backend/services"
)

// respondServiceError translates domain errors into the response envelope.
// Validation failures keep their structure (missing fields, failing field) so
// the UI can highlight inputs; anything unrecognized becomes a generic 500.
func respondServiceError(c *gin.Context, err error) {
	var incomplete *services.IncompleteStepError
	if errors.As(err, &incomplete) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":       false,
			"error":         "incomplete_step",
			"step":          incomplete.Step,
			"missingFields": incomplete.Missing,
		})
		return
	}

	var paymentErr *services.PaymentValidationError
	if errors.As(err, &paymentErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "payment_validation_failed",
			"field":   paymentErr.Field,
		})
		return
	}

	var dateErr services.DateError
	if errors.As(err, &dateErr) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": dateErr.Error()})
		return
	}

	switch {
	case errors.Is(err, services.ErrDraftNotFound),
		errors.Is(err, services.ErrCartNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrOfferingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, services.ErrDraftConfirmed),
		errors.Is(err, services.ErrBookingAlreadyPaid):
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, services.ErrGuestsExceedCapacity),
		errors.Is(err, services.ErrRosterIndex),
		errors.Is(err, services.ErrRosterField),
		errors.Is(err, services.ErrAtFinalStep):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "operation_failed"})
	}
}
