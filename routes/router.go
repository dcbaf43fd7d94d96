package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"dojoroll/config"
	"dojoroll/controllers"
	"dojoroll/middleware"
	"dojoroll/store"
	"dojoroll/utils"
)

// SetupRouter wires routes, middlewares, and controllers around the shared
// document store.
func SetupRouter(st store.Store) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(utils.Logger))
	r.Use(middleware.Recovery(utils.Logger))

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.Use(middleware.RateLimitMiddleware())

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	signInController := controllers.NewSignInController(st, utils.Logger)
	milestoneController := controllers.NewMilestoneController(st, utils.Logger)

	r.POST("/signins", signInController.RecordSignIn)
	r.GET("/signins/:date", signInController.ListSignIns)
	r.GET("/milestones", milestoneController.CheckMilestones)

	return r
}
