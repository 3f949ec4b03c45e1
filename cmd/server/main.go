package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/campus-wellness-api/internal/config"
	"github.com/yukikurage/campus-wellness-api/internal/database"
	"github.com/yukikurage/campus-wellness-api/internal/handlers"
	"github.com/yukikurage/campus-wellness-api/internal/repository"
	"github.com/yukikurage/campus-wellness-api/internal/router"
	"github.com/yukikurage/campus-wellness-api/internal/services"
	"github.com/yukikurage/campus-wellness-api/internal/session"
	"github.com/yukikurage/campus-wellness-api/internal/utils"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	utils.InitLogger(cfg.LogFile, cfg.LogLevel)
	defer utils.Logger.Sync()
	utils.InitMetrics()

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		utils.Logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		utils.Logger.Fatal("failed to run migrations", zap.Error(err))
	}

	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	moodRepo := repository.NewMoodRepository(db)
	productivityRepo := repository.NewProductivityRepository(db)

	// Reflections stay disabled without an API key
	var reflector services.Reflector
	if cfg.OpenAIAPIKey != "" {
		reflector = services.NewAIService(cfg.OpenAIAPIKey, "")
	} else {
		utils.Logger.Warn("OPENAI_API_KEY not set, support reflections disabled")
	}

	clock := utils.Clock(time.Now)
	authService := services.NewAuthService(userRepo)
	moodService := services.NewMoodService(moodRepo, clock)
	productivityService := services.NewProductivityService(productivityRepo, clock)
	dashboardService := services.NewDashboardService(moodRepo, productivityRepo)
	calendarService := services.NewCalendarService(moodRepo, clock)
	supportService := services.NewSupportService(moodRepo, reflector)

	store, err := session.NewStore(cfg)
	if err != nil {
		utils.Logger.Fatal("failed to create session store", zap.Error(err))
	}

	r := router.New(router.Options{
		SessionStore: store,
		CORSOrigins:  cfg.CORSOrigins,
		DB:           db,
	}, router.Handlers{
		Auth:         handlers.NewAuthHandler(authService),
		Mood:         handlers.NewMoodHandler(moodService),
		Productivity: handlers.NewProductivityHandler(productivityService),
		Overview:     handlers.NewOverviewHandler(dashboardService, calendarService, supportService),
	})

	// Start server
	addr := ":" + cfg.Port
	utils.Logger.Info("server starting", zap.String("addr", addr), zap.String("db_driver", cfg.DBDriver))
	if err := r.Run(addr); err != nil {
		utils.Logger.Fatal("failed to start server", zap.Error(err))
	}
}
