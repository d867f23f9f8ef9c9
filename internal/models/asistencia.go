package models

import (
	"time"

	"gorm.io/gorm"
)

// Restriccion is the dietary restriction declared at check-in. The stored
// domain is ninguna/celiaco/vegetariano; vegan input is folded into
// vegetariano on write and reported under the merged key in stats.
type Restriccion string

const (
	RestriccionNinguna     Restriccion = "ninguna"
	RestriccionCeliaco     Restriccion = "celiaco"
	RestriccionVegetariano Restriccion = "vegetariano"
)

// NormalizarRestriccion maps any declared restriction onto the stored domain.
// Unknown or empty values fall back to ninguna.
func NormalizarRestriccion(s string) Restriccion {
	switch s {
	case "celiaco":
		return RestriccionCeliaco
	case "vegetariano", "vegano", "vegetariano_vegano":
		return RestriccionVegetariano
	default:
		return RestriccionNinguna
	}
}

// Asistencia records that a Persona checked in. At most one row per persona;
// deleting the persona cascades here.
type Asistencia struct {
	gorm.Model
	PersonaID              uint        `json:"persona_id" gorm:"uniqueIndex"`
	Persona                Persona     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	RegistradoAt           time.Time   `json:"registrado_at"`
	RestriccionAlimentaria Restriccion `json:"restriccion_alimentaria"`
}
