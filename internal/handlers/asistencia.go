package handlers

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/uai-coreday/coreday-api/internal/auth"
	"github.com/uai-coreday/coreday-api/internal/metrics"
	"github.com/uai-coreday/coreday-api/internal/models"
	"github.com/uai-coreday/coreday-api/internal/rut"
)

type AsistenciaHandler struct {
	db        *gorm.DB
	adminAuth *auth.AdminAuth
}

func NewAsistenciaHandler(db *gorm.DB, adminAuth *auth.AdminAuth) *AsistenciaHandler {
	return &AsistenciaHandler{db: db, adminAuth: adminAuth}
}

type BuscarPersonaRequest struct {
	Rut string `query:"rut" doc:"RUT body, or a full RUT like 12.345.678-5"`
	Dv  string `query:"dv" doc:"Check digit; optional when embedded in rut"`
}

type BuscarPersonaResponse struct {
	Body PersonaConAsistencia
}

// HandleBuscar is the public self-check-in lookup. Input is cleaned of dots,
// dashes and whitespace and uppercased; a full RUT pasted into the rut
// parameter yields its trailing character as the check digit.
func (h *AsistenciaHandler) HandleBuscar(ctx context.Context, input *BuscarPersonaRequest) (*BuscarPersonaResponse, error) {
	var cuerpo, dv string
	if input.Dv != "" {
		cuerpo = rut.Digits(rut.Clean(input.Rut))
		dv = rut.Clean(input.Dv)
	} else {
		cuerpo, dv, _ = rut.Parse(input.Rut)
	}

	if cuerpo == "" || dv == "" {
		return nil, huma.Error400BadRequest("Faltan parámetros rut y dv")
	}

	var persona models.Persona
	if err := h.db.Where("rut = ? AND dv = ?", cuerpo, dv).First(&persona).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, huma.Error404NotFound("No se encontró persona con ese RUT")
		}
		return nil, huma.Error500InternalServerError(err.Error())
	}

	res := &BuscarPersonaResponse{}
	res.Body.PersonaResponse = toPersonaResponse(persona)

	var asistencia models.Asistencia
	if err := h.db.Where("persona_id = ?", persona.ID).First(&asistencia).Error; err == nil {
		resp := toAsistenciaResponse(asistencia)
		res.Body.Asistencia = &resp
	}

	return res, nil
}

type RegistrarAsistenciaRequest struct {
	Body struct {
		PersonaID              uint   `json:"persona_id"`
		RestriccionAlimentaria string `json:"restriccion_alimentaria,omitempty"`
	}
}

type RegistrarAsistenciaResponse struct {
	Body AsistenciaResponse
}

// HandleRegistrar records the check-in. Upsert keyed on persona_id: a second
// call only overwrites the declared restriction.
func (h *AsistenciaHandler) HandleRegistrar(ctx context.Context, input *RegistrarAsistenciaRequest) (*RegistrarAsistenciaResponse, error) {
	if input.Body.PersonaID == 0 {
		return nil, huma.Error400BadRequest("persona_id es obligatorio")
	}

	var persona models.Persona
	if err := h.db.First(&persona, input.Body.PersonaID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, huma.Error404NotFound("Persona no encontrada")
		}
		return nil, huma.Error500InternalServerError(err.Error())
	}

	restriccion := models.NormalizarRestriccion(input.Body.RestriccionAlimentaria)

	asistencia := models.Asistencia{
		PersonaID:              persona.ID,
		RegistradoAt:           time.Now(),
		RestriccionAlimentaria: restriccion,
	}
	err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "persona_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"restriccion_alimentaria", "registrado_at", "updated_at"}),
	}).Create(&asistencia).Error
	if err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}

	// Re-read into a fresh struct so the response carries the surviving
	// row's id on upsert.
	var guardada models.Asistencia
	if err := h.db.Where("persona_id = ?", persona.ID).First(&guardada).Error; err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}

	metrics.CheckinsTotal.WithLabelValues(string(restriccion)).Inc()

	return &RegistrarAsistenciaResponse{Body: toAsistenciaResponse(guardada)}, nil
}

type RemoveAsistenciaRequest struct {
	auth.AuthInput
	PersonaID uint `path:"personaId"`
}

// HandleRemove deletes only the attendance record; the persona stays and can
// check in again.
func (h *AsistenciaHandler) HandleRemove(ctx context.Context, input *RemoveAsistenciaRequest) (*OkResponse, error) {
	if err := h.adminAuth.Authorize(input.Cookie); err != nil {
		return nil, err
	}

	if err := h.db.Unscoped().Where("persona_id = ?", input.PersonaID).Delete(&models.Asistencia{}).Error; err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}

	return okResponse(), nil
}
