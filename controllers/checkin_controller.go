package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"
)

type CheckinController struct {
	flow *services.CheckinService
}

func NewCheckinController(flow *services.CheckinService) *CheckinController {
	return &CheckinController{flow: flow}
}

// PreviewCheckIn stages the billing breakdown for staff review. Nothing is
// persisted; an abandoned preview needs no cleanup.
func (cc *CheckinController) PreviewCheckIn(c *gin.Context) {
	id, ok := roomIDParam(c)
	if !ok {
		return
	}

	var in services.CheckInInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	quote, err := cc.flow.Preview(id, in)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, quote)
}

// ConfirmCheckIn runs the Available -> Occupied transition and returns the
// stored booking record.
func (cc *CheckinController) ConfirmCheckIn(c *gin.Context) {
	id, ok := roomIDParam(c)
	if !ok {
		return
	}

	var in services.CheckInInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	booking, err := cc.flow.CheckIn(c.Request.Context(), id, in)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// Checkout runs the Occupied -> Available transition. The booking stays in
// history with Active flipped off.
func (cc *CheckinController) Checkout(c *gin.Context) {
	id, ok := roomIDParam(c)
	if !ok {
		return
	}

	booking, err := cc.flow.CheckOut(c.Request.Context(), id)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}
