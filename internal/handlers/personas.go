package handlers

import (
	"context"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shrimpsizemoose/trekker/logger"
	"gorm.io/gorm"

	"github.com/uai-coreday/coreday-api/internal/auth"
	"github.com/uai-coreday/coreday-api/internal/metrics"
	"github.com/uai-coreday/coreday-api/internal/models"
	"github.com/uai-coreday/coreday-api/internal/notifier"
)

type PersonaHandler struct {
	db        *gorm.DB
	adminAuth *auth.AdminAuth
	notifier  notifier.Notifier
}

func NewPersonaHandler(db *gorm.DB, adminAuth *auth.AdminAuth, n notifier.Notifier) *PersonaHandler {
	return &PersonaHandler{db: db, adminAuth: adminAuth, notifier: n}
}

type ListPersonasRequest struct {
	auth.AuthInput
}

type ListPersonasResponse struct {
	Body []PersonaConAsistencia
}

// HandleList returns every persona joined with its asistencia (or null),
// ordered by paternal surname.
func (h *PersonaHandler) HandleList(ctx context.Context, input *ListPersonasRequest) (*ListPersonasResponse, error) {
	if err := h.adminAuth.Authorize(input.Cookie); err != nil {
		return nil, err
	}

	var personas []models.Persona
	if err := h.db.Order("apellido_paterno").Find(&personas).Error; err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}

	var asistencias []models.Asistencia
	if err := h.db.Find(&asistencias).Error; err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}

	porPersona := make(map[uint]models.Asistencia, len(asistencias))
	for _, a := range asistencias {
		porPersona[a.PersonaID] = a
	}

	list := make([]PersonaConAsistencia, 0, len(personas))
	for _, p := range personas {
		item := PersonaConAsistencia{PersonaResponse: toPersonaResponse(p)}
		if a, ok := porPersona[p.ID]; ok {
			resp := toAsistenciaResponse(a)
			item.Asistencia = &resp
		}
		list = append(list, item)
	}

	return &ListPersonasResponse{Body: list}, nil
}

type CreatePersonaRequest struct {
	auth.AuthInput
	Body struct {
		Rut                    string `json:"rut"`
		Dv                     string `json:"dv"`
		Nombres                string `json:"nombres"`
		ApellidoPaterno        string `json:"apellido_paterno"`
		ApellidoMaterno        string `json:"apellido_materno"`
		CorreoUAI              string `json:"correo_uai,omitempty"`
		SeccionCore            string `json:"seccion_core"`
		Carrera                string `json:"carrera,omitempty"`
		RestriccionAlimentaria string `json:"restriccion_alimentaria,omitempty"`
	}
}

type CreatePersonaResponse struct {
	Body PersonaResponse
}

// HandleCreate adds one persona manually. The persona is created already
// checked in, with the declared restriction (or ninguna).
func (h *PersonaHandler) HandleCreate(ctx context.Context, input *CreatePersonaRequest) (*CreatePersonaResponse, error) {
	if err := h.adminAuth.Authorize(input.Cookie); err != nil {
		return nil, err
	}

	persona := models.Persona{
		Rut:             strings.TrimSpace(input.Body.Rut),
		Dv:              strings.TrimSpace(input.Body.Dv),
		Nombres:         strings.TrimSpace(input.Body.Nombres),
		ApellidoPaterno: strings.TrimSpace(input.Body.ApellidoPaterno),
		ApellidoMaterno: strings.TrimSpace(input.Body.ApellidoMaterno),
		CorreoUAI:       strings.TrimSpace(input.Body.CorreoUAI),
		SeccionCore:     strings.TrimSpace(input.Body.SeccionCore),
		Carrera:         strings.TrimSpace(input.Body.Carrera),
	}

	if persona.Rut == "" || persona.Dv == "" || persona.Nombres == "" ||
		persona.ApellidoPaterno == "" || persona.ApellidoMaterno == "" || persona.SeccionCore == "" {
		return nil, huma.Error400BadRequest(
			"Faltan campos: rut, dv, nombres, apellido_paterno, apellido_materno, seccion_core")
	}

	var existente models.Persona
	if err := h.db.Where("rut = ? AND dv = ?", persona.Rut, persona.Dv).First(&existente).Error; err == nil {
		return nil, huma.Error409Conflict("Ya existe una persona con ese RUT y DV")
	} else if err != gorm.ErrRecordNotFound {
		return nil, huma.Error500InternalServerError(err.Error())
	}

	restriccion := models.NormalizarRestriccion(input.Body.RestriccionAlimentaria)

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&persona).Error; err != nil {
			return err
		}
		asistencia := models.Asistencia{
			PersonaID:              persona.ID,
			RegistradoAt:           persona.CreatedAt,
			RestriccionAlimentaria: restriccion,
		}
		return tx.Create(&asistencia).Error
	})
	if err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}

	h.refreshPersonasGauge()

	return &CreatePersonaResponse{Body: toPersonaResponse(persona)}, nil
}

type UpdatePersonaRequest struct {
	auth.AuthInput
	ID   uint `path:"id"`
	Body struct {
		Rut             *string `json:"rut,omitempty"`
		Dv              *string `json:"dv,omitempty"`
		Nombres         *string `json:"nombres,omitempty"`
		ApellidoPaterno *string `json:"apellido_paterno,omitempty"`
		ApellidoMaterno *string `json:"apellido_materno,omitempty"`
		CorreoUAI       *string `json:"correo_uai,omitempty"`
		SeccionCore     *string `json:"seccion_core,omitempty"`
		Carrera         *string `json:"carrera,omitempty"`
	}
}

type UpdatePersonaResponse struct {
	Body PersonaResponse
}

// HandleUpdate applies a partial edit; absent fields are left untouched.
func (h *PersonaHandler) HandleUpdate(ctx context.Context, input *UpdatePersonaRequest) (*UpdatePersonaResponse, error) {
	if err := h.adminAuth.Authorize(input.Cookie); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	campos := map[string]*string{
		"rut":              input.Body.Rut,
		"dv":               input.Body.Dv,
		"nombres":          input.Body.Nombres,
		"apellido_paterno": input.Body.ApellidoPaterno,
		"apellido_materno": input.Body.ApellidoMaterno,
		"correo_uai":       input.Body.CorreoUAI,
		"seccion_core":     input.Body.SeccionCore,
		"carrera":          input.Body.Carrera,
	}
	for columna, valor := range campos {
		if valor != nil {
			updates[columna] = strings.TrimSpace(*valor)
		}
	}

	if len(updates) == 0 {
		return nil, huma.Error400BadRequest("Nada que actualizar")
	}

	var persona models.Persona
	if err := h.db.First(&persona, input.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, huma.Error404NotFound("Persona no encontrada")
		}
		return nil, huma.Error500InternalServerError(err.Error())
	}

	if err := h.db.Model(&persona).Updates(updates).Error; err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}

	return &UpdatePersonaResponse{Body: toPersonaResponse(persona)}, nil
}

type DeletePersonaRequest struct {
	auth.AuthInput
	ID uint `path:"id"`
}

// HandleDelete removes one persona and its asistencia in one transaction.
func (h *PersonaHandler) HandleDelete(ctx context.Context, input *DeletePersonaRequest) (*OkResponse, error) {
	if err := h.adminAuth.Authorize(input.Cookie); err != nil {
		return nil, err
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("persona_id = ?", input.ID).Delete(&models.Asistencia{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.Persona{}, input.ID).Error
	})
	if err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}

	h.refreshPersonasGauge()

	return okResponse(), nil
}

type DeleteAllPersonasRequest struct {
	auth.AuthInput
}

// HandleDeleteAll wipes the whole list. Asistencias go first inside the same
// transaction so a failure never leaves orphan attendance.
func (h *PersonaHandler) HandleDeleteAll(ctx context.Context, input *DeleteAllPersonasRequest) (*OkResponse, error) {
	if err := h.adminAuth.Authorize(input.Cookie); err != nil {
		return nil, err
	}

	var total int64
	h.db.Model(&models.Persona{}).Count(&total)

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.Asistencia{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Where("1 = 1").Delete(&models.Persona{}).Error
	})
	if err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}

	metrics.PersonasTotal.Set(0)

	if h.notifier != nil {
		if err := h.notifier.NotifyWipe(total); err != nil {
			logger.Error.Printf("Failed to send wipe notification: %v", err)
		}
	}

	return okResponse(), nil
}

func (h *PersonaHandler) refreshPersonasGauge() {
	var total int64
	if err := h.db.Model(&models.Persona{}).Count(&total).Error; err == nil {
		metrics.PersonasTotal.Set(float64(total))
	}
}
