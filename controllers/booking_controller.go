package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"
)

type BookingController struct {
	ledger    *services.BookingService
	flow      *services.CheckinService
	exportDir string
}

func NewBookingController(ledger *services.BookingService, flow *services.CheckinService, exportDir string) *BookingController {
	return &BookingController{ledger: ledger, flow: flow, exportDir: exportDir}
}

// GetBookings returns the full history, newest first.
func (bc *BookingController) GetBookings(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, bc.ledger.List())
}

func (bc *BookingController) GetBooking(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	booking, err := bc.ledger.Get(id)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// DeleteBooking removes a record from history. Room occupancy is
// independent of history deletion and never changes here.
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	if err := bc.ledger.Delete(c.Request.Context(), id); err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// GetReceipt serves the booking's plain-text receipt and exports a copy
// under the configured export directory.
func (bc *BookingController) GetReceipt(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	booking, err := bc.ledger.Get(id)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}

	if _, err := utils.ExportReceipt(booking, bc.exportDir); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, fmt.Sprintf("export receipt: %v", err))
		return
	}
	c.String(http.StatusOK, utils.ReceiptText(booking))
}

// GetLastReceipt serves the receipt of the most recent check-in this run.
func (bc *BookingController) GetLastReceipt(c *gin.Context) {
	booking := bc.flow.LastReceipt()
	if booking == nil {
		utils.JSONError(c, http.StatusNotFound, "no receipt recorded yet")
		return
	}
	c.String(http.StatusOK, utils.ReceiptText(*booking))
}

func bookingIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return 0, false
	}
	return uint(id), true
}
