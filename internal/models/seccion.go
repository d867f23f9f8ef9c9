package models

import (
	"gorm.io/gorm"
)

// SeccionBus marks a section as already loaded onto the buses. Membership
// only, keyed by the section code.
type SeccionBus struct {
	gorm.Model
	SeccionCore string `json:"seccion_core" gorm:"uniqueIndex"`
}

// SeccionAlmuerzo marks a section as having received its special meal.
type SeccionAlmuerzo struct {
	gorm.Model
	SeccionCore string `json:"seccion_core" gorm:"uniqueIndex"`
}
