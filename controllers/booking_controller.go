// controllers/booking_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resort-backend/services"
	"resort-backend/utils"
)

type BookingController struct {
	Bookings *services.BookingService
	Payments *services.PaymentService
}

func NewBookingController(bookings *services.BookingService, payments *services.PaymentService) *BookingController {
	return &BookingController{Bookings: bookings, Payments: payments}
}

func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.Bookings.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

func (bc *BookingController) GetBookingByReference(c *gin.Context) {
	booking, err := bc.Bookings.ByReference(c.Param("reference"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (bc *BookingController) GetBookingPayments(c *gin.Context) {
	// 404 for unknown references before listing an empty history
	if _, err := bc.Bookings.ByReference(c.Param("reference")); err != nil {
		respondServiceError(c, err)
		return
	}
	records, err := bc.Bookings.PaymentsByReference(c.Param("reference"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, records)
}

// Pay runs the simulated charge for a confirmed booking.
func (bc *BookingController) Pay(c *gin.Context) {
	var payload services.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	record, err := bc.Payments.Pay(c.Param("reference"), payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, record)
}
