package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/go-chi/chi/v5"
	"github.com/obras-paraguay/natacion-api/internal/admin"
	"github.com/obras-paraguay/natacion-api/internal/assistant"
	"github.com/obras-paraguay/natacion-api/internal/auth"
	"github.com/obras-paraguay/natacion-api/internal/booking"
	"github.com/obras-paraguay/natacion-api/internal/config"
	"github.com/obras-paraguay/natacion-api/internal/database"
	"github.com/obras-paraguay/natacion-api/internal/handlers"
	"github.com/obras-paraguay/natacion-api/internal/notifier"
	"github.com/obras-paraguay/natacion-api/internal/store"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)
	st := store.New(db, logger)

	// Staff notifier (optional)
	var staffNotifier notifier.Notifier
	if cfg.DiscordBotToken != "" {
		session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
		if err != nil {
			logger.Warn("Discord notifier not initialized", zap.Error(err))
		} else {
			staffNotifier = notifier.NewDiscordNotifier(session, cfg.DiscordNotificationsChannelID)
		}
	}

	// Assistant bridge (optional)
	var bridge *assistant.Bridge
	if cfg.GeminiAPIKey != "" {
		bridge, err = assistant.NewBridge(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, logger)
		if err != nil {
			logger.Warn("Assistant bridge not initialized", zap.Error(err))
			bridge = nil
		}
	}

	// Initialize Handlers
	engine := booking.NewEngine(st, staffNotifier, logger)
	authHandler := auth.NewAuthHandler(cfg)
	classHandler := handlers.NewClassHandler(st, engine)
	adminHandler := handlers.NewAdminHandler(admin.NewService(st, logger), authHandler)
	chatHandler := handlers.NewChatHandler(bridge, logger)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, cfg, classHandler, adminHandler, chatHandler)

	// Start Server
	logger.Info("Starting server", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
