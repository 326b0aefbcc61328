package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zaqqye/facetrack_backend/internal/attendance"
	"github.com/zaqqye/facetrack_backend/internal/ws"
)

type SettingsController struct {
	Svc *attendance.Service
	Hub *ws.FeedHub
}

// Reset restores the demo roster and empties the logs.
func (sc *SettingsController) Reset(c *gin.Context) {
	if err := sc.Svc.ResetToDefaults(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	sc.Hub.Publish(ws.Event{Type: ws.EventDatabaseReset})
	c.JSON(http.StatusOK, gin.H{"message": "System restored to demo defaults."})
}

// Clear deletes every student and log.
func (sc *SettingsController) Clear(c *gin.Context) {
	if err := sc.Svc.ClearDatabase(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	sc.Hub.Publish(ws.Event{Type: ws.EventDatabaseCleared})
	c.JSON(http.StatusOK, gin.H{"message": "Database purged."})
}
