package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"gorm.io/gorm"

	"github.com/uai-coreday/coreday-api/internal/auth"
	"github.com/uai-coreday/coreday-api/internal/models"
)

type StatsHandler struct {
	db        *gorm.DB
	adminAuth *auth.AdminAuth
}

func NewStatsHandler(db *gorm.DB, adminAuth *auth.AdminAuth) *StatsHandler {
	return &StatsHandler{db: db, adminAuth: adminAuth}
}

type ConteoGrupo struct {
	Total       int `json:"total"`
	Registrados int `json:"registrados"`
}

type StatsRequest struct {
	auth.AuthInput
}

type StatsResponse struct {
	Body struct {
		TotalPersonas     int                    `json:"total_personas"`
		TotalRegistrados  int                    `json:"total_registrados"`
		TotalSinRegistrar int                    `json:"total_sin_registrar"`
		PorSeccion        map[string]ConteoGrupo `json:"por_seccion"`
		PorCarrera        map[string]ConteoGrupo `json:"por_carrera"`
		PorRestriccion    map[string]int         `json:"por_restriccion"`
	}
}

// HandleStats is a pure read+reduce over the full persona and asistencia
// sets: registration totals, per-section and per-career counters, and the
// dietary-restriction breakdown under the merged vegetariano_vegano key.
func (h *StatsHandler) HandleStats(ctx context.Context, input *StatsRequest) (*StatsResponse, error) {
	if err := h.adminAuth.Authorize(input.Cookie); err != nil {
		return nil, err
	}

	var personas []models.Persona
	if err := h.db.Find(&personas).Error; err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}
	var asistencias []models.Asistencia
	if err := h.db.Find(&asistencias).Error; err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}

	registrados := make(map[uint]bool, len(asistencias))
	porRestriccion := map[string]int{"ninguna": 0, "celiaco": 0, "vegetariano_vegano": 0}
	for _, a := range asistencias {
		registrados[a.PersonaID] = true
		switch a.RestriccionAlimentaria {
		case models.RestriccionCeliaco:
			porRestriccion["celiaco"]++
		case models.RestriccionVegetariano:
			porRestriccion["vegetariano_vegano"]++
		default:
			porRestriccion["ninguna"]++
		}
	}

	porSeccion := map[string]ConteoGrupo{}
	porCarrera := map[string]ConteoGrupo{}
	for _, p := range personas {
		reg := registrados[p.ID]

		sec := porSeccion[p.SeccionCore]
		sec.Total++
		if reg {
			sec.Registrados++
		}
		porSeccion[p.SeccionCore] = sec

		// Personas without a career fold into one bucket on this axis only.
		carrera := p.Carrera
		if carrera == "" {
			carrera = "(sin carrera)"
		}
		car := porCarrera[carrera]
		car.Total++
		if reg {
			car.Registrados++
		}
		porCarrera[carrera] = car
	}

	res := &StatsResponse{}
	res.Body.TotalPersonas = len(personas)
	res.Body.TotalRegistrados = len(asistencias)
	res.Body.TotalSinRegistrar = len(personas) - len(asistencias)
	res.Body.PorSeccion = porSeccion
	res.Body.PorCarrera = porCarrera
	res.Body.PorRestriccion = porRestriccion
	return res, nil
}
