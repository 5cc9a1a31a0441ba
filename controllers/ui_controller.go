package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"
)

type UIController struct {
	ui *services.UIStateService
}

func NewUIController(ui *services.UIStateService) *UIController {
	return &UIController{ui: ui}
}

func (uc *UIController) GetUIState(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, uc.ui.Snapshot())
}

type uiPatchPayload struct {
	Filter   *string `json:"filter"`
	Category *string `json:"category"`
	Search   *string `json:"search"`
	Page     *int    `json:"page"`
	PageSize *int    `json:"pageSize"`
	Dark     *bool   `json:"dark"`
}

// UpdateUIState applies the fields present in the patch, each persisted as
// it lands. Page is applied last so an explicit page survives the page
// reset that filter, category and search changes perform.
func (uc *UIController) UpdateUIState(c *gin.Context) {
	var payload uiPatchPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	ctx := c.Request.Context()

	if payload.Filter != nil {
		if err := uc.ui.SetFilter(ctx, *payload.Filter); err != nil {
			utils.JSONFromError(c, err)
			return
		}
	}
	if payload.Category != nil {
		if err := uc.ui.SetCategory(ctx, *payload.Category); err != nil {
			utils.JSONFromError(c, err)
			return
		}
	}
	if payload.Search != nil {
		if err := uc.ui.SetSearch(ctx, *payload.Search); err != nil {
			utils.JSONFromError(c, err)
			return
		}
	}
	if payload.PageSize != nil {
		if err := uc.ui.SetPageSize(ctx, *payload.PageSize); err != nil {
			utils.JSONFromError(c, err)
			return
		}
	}
	if payload.Page != nil {
		if err := uc.ui.SetPage(ctx, *payload.Page); err != nil {
			utils.JSONFromError(c, err)
			return
		}
	}
	if payload.Dark != nil {
		if err := uc.ui.SetDark(ctx, *payload.Dark); err != nil {
			utils.JSONFromError(c, err)
			return
		}
	}

	utils.JSONSuccess(c, http.StatusOK, uc.ui.Snapshot())
}
