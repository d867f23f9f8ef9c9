package handlers

import (
	"time"

	"github.com/uai-coreday/coreday-api/internal/models"
)

type PersonaResponse struct {
	ID              uint      `json:"id"`
	Rut             string    `json:"rut"`
	Dv              string    `json:"dv"`
	Nombres         string    `json:"nombres"`
	ApellidoPaterno string    `json:"apellido_paterno"`
	ApellidoMaterno string    `json:"apellido_materno"`
	CorreoUAI       string    `json:"correo_uai,omitempty"`
	SeccionCore     string    `json:"seccion_core"`
	Carrera         string    `json:"carrera,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type AsistenciaResponse struct {
	ID                     uint               `json:"id"`
	PersonaID              uint               `json:"persona_id"`
	RegistradoAt           time.Time          `json:"registrado_at"`
	RestriccionAlimentaria models.Restriccion `json:"restriccion_alimentaria"`
}

// PersonaConAsistencia is the persona joined with its attendance, or null
// when the persona has not checked in yet.
type PersonaConAsistencia struct {
	PersonaResponse
	Asistencia *AsistenciaResponse `json:"asistencia"`
}

// OkResponse is the bare acknowledgment used by delete and toggle operations.
type OkResponse struct {
	Body struct {
		OK bool `json:"ok"`
	}
}

func okResponse() *OkResponse {
	res := &OkResponse{}
	res.Body.OK = true
	return res
}

func toPersonaResponse(p models.Persona) PersonaResponse {
	return PersonaResponse{
		ID:              p.ID,
		Rut:             p.Rut,
		Dv:              p.Dv,
		Nombres:         p.Nombres,
		ApellidoPaterno: p.ApellidoPaterno,
		ApellidoMaterno: p.ApellidoMaterno,
		CorreoUAI:       p.CorreoUAI,
		SeccionCore:     p.SeccionCore,
		Carrera:         p.Carrera,
		CreatedAt:       p.CreatedAt,
	}
}

func toAsistenciaResponse(a models.Asistencia) AsistenciaResponse {
	return AsistenciaResponse{
		ID:                     a.ID,
		PersonaID:              a.PersonaID,
		RegistradoAt:           a.RegistradoAt,
		RestriccionAlimentaria: a.RestriccionAlimentaria,
	}
}
