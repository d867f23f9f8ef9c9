package handlers

import (
	"errors"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/uai-coreday/coreday-api/internal/auth"
	"github.com/uai-coreday/coreday-api/internal/config"
	"github.com/uai-coreday/coreday-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	db.AutoMigrate(&models.Persona{}, &models.Asistencia{}, &models.SeccionBus{}, &models.SeccionAlmuerzo{})
	return db
}

func newTestAuth(t *testing.T) (*auth.AdminAuth, string) {
	t.Helper()
	adminAuth := auth.NewAdminAuth(&config.Config{
		AdminPassword: "secreta",
		SessionSecret: "test-secret",
	})
	token, err := adminAuth.GenerateToken()
	if err != nil {
		t.Fatalf("failed to generate session token: %v", err)
	}
	return adminAuth, auth.SessionCookie + "=" + token
}

func statusOf(err error) int {
	var se huma.StatusError
	if errors.As(err, &se) {
		return se.GetStatus()
	}
	return 0
}

func seedPersona(t *testing.T, db *gorm.DB, rut, dv, seccion, carrera string) models.Persona {
	t.Helper()
	p := models.Persona{
		Rut:             rut,
		Dv:              dv,
		Nombres:         "Ana",
		ApellidoPaterno: "Pérez",
		ApellidoMaterno: "Soto",
		SeccionCore:     seccion,
		Carrera:         carrera,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("failed to seed persona: %v", err)
	}
	return p
}
