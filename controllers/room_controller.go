package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"
)

type RoomController struct {
	rooms *services.RoomService
	ui    *services.UIStateService
	flow  *services.CheckinService
	query services.QueryService
}

func NewRoomController(rooms *services.RoomService, ui *services.UIStateService, flow *services.CheckinService) *RoomController {
	return &RoomController{rooms: rooms, ui: ui, flow: flow}
}

// GetRooms returns the filtered, paginated view for the current UI state,
// plus the dashboard counters over the whole inventory.
func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms := rc.rooms.List()
	ui := rc.ui.Snapshot()

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"view":  rc.query.View(rooms, ui),
		"stats": rc.query.Stats(rooms),
		"ui":    ui,
	})
}

func (rc *RoomController) GetStats(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.query.Stats(rc.rooms.List()))
}

type roomEditPayload struct {
	Type  string  `json:"type"`
	Price float64 `json:"price"`
}

// UpdateRoom edits type and price. Occupancy never changes here.
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := roomIDParam(c)
	if !ok {
		return
	}

	var payload roomEditPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	room, err := rc.flow.EditRoom(c.Request.Context(), id, payload.Type, payload.Price)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func roomIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return 0, false
	}
	return uint(id), true
}
