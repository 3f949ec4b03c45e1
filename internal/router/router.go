package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yukikurage/campus-wellness-api/internal/constants"
	"github.com/yukikurage/campus-wellness-api/internal/handlers"
	"github.com/yukikurage/campus-wellness-api/internal/middleware"
	"github.com/yukikurage/campus-wellness-api/internal/session"
	"gorm.io/gorm"
)

// Handlers bundles the HTTP handlers mounted by New.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Mood         *handlers.MoodHandler
	Productivity *handlers.ProductivityHandler
	Overview     *handlers.OverviewHandler
}

// Options configure the engine.
type Options struct {
	SessionStore sessions.Store
	CORSOrigins  []string
	DB           *gorm.DB
}

// New builds the Gin engine with middleware and all routes.
func New(opts Options, h Handlers) *gin.Engine {
	if err := middleware.RegisterValidators(); err != nil {
		panic(err)
	}

	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())

	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", constants.HeaderRequestID},
			ExposeHeaders:    []string{"Content-Length", constants.HeaderRequestID},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.Use(session.Middleware(opts.SessionStore))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		if opts.DB != nil {
			if sqlDB, err := opts.DB.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":   "degraded",
					"database": "unreachable",
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Campus Wellness API is running",
			"database": "connected",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", h.Auth.Signup)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
			auth.GET("/me", middleware.RequireAuth(), h.Auth.Me)
		}

		// Main screens (protected)
		app := api.Group("")
		app.Use(middleware.RequireAuth())
		{
			app.GET("/screens", handlers.ListScreens)
			app.GET("/dashboard", h.Overview.Dashboard)

			app.GET("/moods/options", h.Mood.Options)
			app.GET("/moods", h.Mood.ListMoods)
			app.POST("/moods", h.Mood.CreateMood)

			app.GET("/calendar", h.Overview.Calendar)

			app.GET("/productivity/options", h.Productivity.Options)
			app.GET("/productivity", h.Productivity.ListProductivity)
			app.POST("/productivity", h.Productivity.CreateProductivity)

			app.GET("/support", h.Overview.Support)
			app.POST("/support/reflect", h.Overview.Reflect)
		}
	}

	return r
}
