package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"frontdesk-backend/services"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONFromError maps an engine error kind to its HTTP status. Persistence
// failures mean the write was rejected; the caller must treat state as
// possibly inconsistent, so they surface as a gateway error.
func JSONFromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrConflict):
		JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrPersistence):
		JSONError(c, http.StatusBadGateway, err.Error())
	default:
		JSONError(c, http.StatusInternalServerError, err.Error())
	}
}
