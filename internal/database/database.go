package database

import (
	"github.com/shrimpsizemoose/trekker/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/uai-coreday/coreday-api/internal/config"
	"github.com/uai-coreday/coreday-api/internal/models"
)

func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath+"?_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		logger.Error.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto Migrate
	err = db.AutoMigrate(
		&models.Persona{},
		&models.Asistencia{},
		&models.SeccionBus{},
		&models.SeccionAlmuerzo{},
	)
	if err != nil {
		logger.Error.Fatalf("Failed to auto migrate: %v", err)
	}

	return db
}
