package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zaqqye/facetrack_backend/internal/attendance"
)

type DashboardController struct {
	Svc *attendance.Service
}

func (dc *DashboardController) Get(c *gin.Context) {
	stats, err := dc.Svc.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
