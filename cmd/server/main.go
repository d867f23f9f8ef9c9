package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/uai-coreday/coreday-api/internal/auth"
	"github.com/uai-coreday/coreday-api/internal/config"
	"github.com/uai-coreday/coreday-api/internal/database"
	"github.com/uai-coreday/coreday-api/internal/handlers"
	"github.com/uai-coreday/coreday-api/internal/notifier"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Debug.Println(".env file not found, reading environment directly")
	}

	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	// Initialize Handlers
	discordNotifier, err := notifier.NewDiscordNotifier(cfg)
	if err != nil {
		logger.Info.Printf("Discord notifier not initialized: %v", err)
	}
	var n notifier.Notifier
	if discordNotifier != nil {
		n = discordNotifier
	}

	adminAuth := auth.NewAdminAuth(cfg)
	personaHandler := handlers.NewPersonaHandler(db, adminAuth, n)
	asistenciaHandler := handlers.NewAsistenciaHandler(db, adminAuth)
	seccionHandler := handlers.NewSeccionHandler(db, adminAuth)
	statsHandler := handlers.NewStatsHandler(db, adminAuth)
	uploadHandler := handlers.NewUploadHandler(db, n)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, adminAuth, personaHandler, asistenciaHandler, seccionHandler, statsHandler, uploadHandler)

	// Start Server
	logger.Info.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		logger.Error.Fatalf("Failed to start server: %v", err)
	}
}
