package models

import (
	"gorm.io/gorm"
)

// Persona is one attendee in the master list. Identity is the RUT plus its
// check digit; the pair is unique across the table.
type Persona struct {
	gorm.Model
	Rut             string `json:"rut" gorm:"uniqueIndex:idx_rut_dv"`
	Dv              string `json:"dv" gorm:"uniqueIndex:idx_rut_dv"`
	Nombres         string `json:"nombres"`
	ApellidoPaterno string `json:"apellido_paterno"`
	ApellidoMaterno string `json:"apellido_materno"`
	CorreoUAI       string `json:"correo_uai,omitempty"`
	SeccionCore     string `json:"seccion_core"`
	Carrera         string `json:"carrera,omitempty"`
}

// PersonaInsert carries the editable fields of a Persona, as produced by the
// spreadsheet importer or a manual create.
type PersonaInsert struct {
	Rut             string `json:"rut"`
	Dv              string `json:"dv"`
	Nombres         string `json:"nombres"`
	ApellidoPaterno string `json:"apellido_paterno"`
	ApellidoMaterno string `json:"apellido_materno"`
	CorreoUAI       string `json:"correo_uai,omitempty"`
	SeccionCore     string `json:"seccion_core"`
	Carrera         string `json:"carrera,omitempty"`
}
