package handlers

import (
	"context"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/uai-coreday/coreday-api/internal/auth"
	"github.com/uai-coreday/coreday-api/internal/models"
)

// SeccionHandler owns the two per-section flag sets used by logistics: buses
// loaded and special meal delivered. Both are membership-only.
type SeccionHandler struct {
	db        *gorm.DB
	adminAuth *auth.AdminAuth
}

func NewSeccionHandler(db *gorm.DB, adminAuth *auth.AdminAuth) *SeccionHandler {
	return &SeccionHandler{db: db, adminAuth: adminAuth}
}

type ListSeccionesRequest struct {
	auth.AuthInput
}

type ListSeccionesResponse struct {
	Body []string
}

type MarcarSeccionRequest struct {
	auth.AuthInput
	Body struct {
		SeccionCore string `json:"seccion_core"`
	}
}

type QuitarSeccionRequest struct {
	auth.AuthInput
	SeccionCore string `query:"seccion_core"`
}

func (h *SeccionHandler) listar(input *ListSeccionesRequest, modelo interface{}) (*ListSeccionesResponse, error) {
	if err := h.adminAuth.Authorize(input.Cookie); err != nil {
		return nil, err
	}

	secciones := []string{}
	if err := h.db.Model(modelo).Order("seccion_core").Pluck("seccion_core", &secciones).Error; err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}
	return &ListSeccionesResponse{Body: secciones}, nil
}

func (h *SeccionHandler) marcar(input *MarcarSeccionRequest, registro interface{}, seccion string) (*OkResponse, error) {
	if err := h.adminAuth.Authorize(input.Cookie); err != nil {
		return nil, err
	}
	if seccion == "" {
		return nil, huma.Error400BadRequest("seccion_core requerido")
	}

	// Idempotent: re-marking a flagged section is a no-op.
	err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "seccion_core"}},
		DoNothing: true,
	}).Create(registro).Error
	if err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}
	return okResponse(), nil
}

func (h *SeccionHandler) quitar(input *QuitarSeccionRequest, modelo interface{}) (*OkResponse, error) {
	if err := h.adminAuth.Authorize(input.Cookie); err != nil {
		return nil, err
	}
	seccion := strings.TrimSpace(input.SeccionCore)
	if seccion == "" {
		return nil, huma.Error400BadRequest("seccion_core requerido")
	}

	if err := h.db.Unscoped().Where("seccion_core = ?", seccion).Delete(modelo).Error; err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}
	return okResponse(), nil
}

// GET /api/admin/buses
func (h *SeccionHandler) HandleListBuses(ctx context.Context, input *ListSeccionesRequest) (*ListSeccionesResponse, error) {
	return h.listar(input, &models.SeccionBus{})
}

// POST /api/admin/buses
func (h *SeccionHandler) HandleMarcarBus(ctx context.Context, input *MarcarSeccionRequest) (*OkResponse, error) {
	seccion := strings.TrimSpace(input.Body.SeccionCore)
	return h.marcar(input, &models.SeccionBus{SeccionCore: seccion}, seccion)
}

// DELETE /api/admin/buses?seccion_core=X
func (h *SeccionHandler) HandleQuitarBus(ctx context.Context, input *QuitarSeccionRequest) (*OkResponse, error) {
	return h.quitar(input, &models.SeccionBus{})
}

// GET /api/admin/almuerzo-entregado
func (h *SeccionHandler) HandleListAlmuerzo(ctx context.Context, input *ListSeccionesRequest) (*ListSeccionesResponse, error) {
	return h.listar(input, &models.SeccionAlmuerzo{})
}

// POST /api/admin/almuerzo-entregado
func (h *SeccionHandler) HandleMarcarAlmuerzo(ctx context.Context, input *MarcarSeccionRequest) (*OkResponse, error) {
	seccion := strings.TrimSpace(input.Body.SeccionCore)
	return h.marcar(input, &models.SeccionAlmuerzo{SeccionCore: seccion}, seccion)
}

// DELETE /api/admin/almuerzo-entregado?seccion_core=X
func (h *SeccionHandler) HandleQuitarAlmuerzo(ctx context.Context, input *QuitarSeccionRequest) (*OkResponse, error) {
	return h.quitar(input, &models.SeccionAlmuerzo{})
}
