package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zaqqye/facetrack_backend/internal/attendance"
	"github.com/zaqqye/facetrack_backend/internal/config"
	"github.com/zaqqye/facetrack_backend/internal/controllers"
	"github.com/zaqqye/facetrack_backend/internal/middleware"
	"github.com/zaqqye/facetrack_backend/internal/models"
	"github.com/zaqqye/facetrack_backend/internal/recognition"
	"github.com/zaqqye/facetrack_backend/internal/ws"
)

func Register(r *gin.Engine, cfg *config.Config, svc *attendance.Service, rec recognition.Recognizer, hub *ws.FeedHub) error {
	r.Use(cors.New(corsConfig(cfg)))

	// Controllers
	authCtrl, err := controllers.NewAuthController(cfg)
	if err != nil {
		return err
	}
	studentCtrl := &controllers.StudentController{Svc: svc, Hub: hub}
	attendanceCtrl := &controllers.AttendanceController{Svc: svc, Hub: hub}
	scanCtrl := &controllers.ScanController{Svc: svc, Recognizer: rec, Hub: hub}
	dashboardCtrl := &controllers.DashboardController{Svc: svc}
	settingsCtrl := &controllers.SettingsController{Svc: svc, Hub: hub}

	// Public
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/api/v1/auth/login", authCtrl.Login)

	// Protected
	api := r.Group("/api/v1", middleware.AuthMiddleware(authCtrl.Auth))
	{
		api.GET("/auth/me", authCtrl.Me)
		api.POST("/auth/logout", authCtrl.Logout)

		api.GET("/dashboard", dashboardCtrl.Get)

		api.GET("/students", studentCtrl.List)
		api.POST("/students", studentCtrl.Register)
		api.GET("/students/at-risk", studentCtrl.AtRisk)

		api.GET("/logs", attendanceCtrl.ListLogs)
		api.POST("/attendance", attendanceCtrl.Record)
		api.POST("/scan", scanCtrl.Scan)

		api.GET("/feed", ws.FeedHandler(hub))

		// Admin-only
		settings := api.Group("/settings", middleware.RequireRoles(models.RoleAdmin))
		{
			settings.POST("/reset", settingsCtrl.Reset)
			settings.POST("/clear", settingsCtrl.Clear)
		}
	}
	return nil
}

func corsConfig(cfg *config.Config) cors.Config {
	cc := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	origins := cfg.AllowedOrigins()
	if len(origins) == 1 && origins[0] == "*" {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = origins
		cc.AllowCredentials = true
	}
	return cc
}
