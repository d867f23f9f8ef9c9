package handlers

import (
	"context"
	"testing"

	"github.com/uai-coreday/coreday-api/internal/models"
)

func TestHandleStats(t *testing.T) {
	db := newTestDB(t)
	adminAuth, cookie := newTestAuth(t)
	handler := NewStatsHandler(db, adminAuth)

	p1 := seedPersona(t, db, "11111111", "1", "A1", "Ingeniería")
	p2 := seedPersona(t, db, "22222222", "2", "A1", "")
	seedPersona(t, db, "33333333", "3", "B2", "Derecho")

	db.Create(&models.Asistencia{PersonaID: p1.ID, RestriccionAlimentaria: models.RestriccionVegetariano})
	db.Create(&models.Asistencia{PersonaID: p2.ID, RestriccionAlimentaria: models.RestriccionNinguna})

	req := &StatsRequest{}
	req.Cookie = cookie
	resp, err := handler.HandleStats(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleStats failed: %v", err)
	}

	s := resp.Body
	if s.TotalPersonas != 3 || s.TotalRegistrados != 2 || s.TotalSinRegistrar != 1 {
		t.Errorf("unexpected totals: %d/%d/%d", s.TotalPersonas, s.TotalRegistrados, s.TotalSinRegistrar)
	}
	if s.TotalPersonas != s.TotalRegistrados+s.TotalSinRegistrar {
		t.Error("total invariant broken")
	}

	if got := s.PorSeccion["A1"]; got.Total != 2 || got.Registrados != 2 {
		t.Errorf("unexpected A1 counters: %+v", got)
	}
	if got := s.PorSeccion["B2"]; got.Total != 1 || got.Registrados != 0 {
		t.Errorf("unexpected B2 counters: %+v", got)
	}

	if got := s.PorCarrera["(sin carrera)"]; got.Total != 1 || got.Registrados != 1 {
		t.Errorf("unexpected (sin carrera) counters: %+v", got)
	}
	if got := s.PorCarrera["Ingeniería"]; got.Total != 1 {
		t.Errorf("unexpected Ingeniería counters: %+v", got)
	}

	if s.PorRestriccion["vegetariano_vegano"] != 1 {
		t.Errorf("expected 1 vegetariano_vegano, got %d", s.PorRestriccion["vegetariano_vegano"])
	}
	if s.PorRestriccion["ninguna"] != 1 {
		t.Errorf("expected 1 ninguna, got %d", s.PorRestriccion["ninguna"])
	}
	if s.PorRestriccion["celiaco"] != 0 {
		t.Errorf("expected celiaco bucket present with 0, got %d", s.PorRestriccion["celiaco"])
	}
}

func TestHandleStats_EmptyStore(t *testing.T) {
	db := newTestDB(t)
	adminAuth, cookie := newTestAuth(t)
	handler := NewStatsHandler(db, adminAuth)

	req := &StatsRequest{}
	req.Cookie = cookie
	resp, err := handler.HandleStats(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleStats failed: %v", err)
	}

	if resp.Body.TotalPersonas != 0 || resp.Body.TotalRegistrados != 0 {
		t.Errorf("expected zero totals, got %+v", resp.Body)
	}
	// Restriction buckets are always present for the dashboard.
	for _, k := range []string{"ninguna", "celiaco", "vegetariano_vegano"} {
		if _, ok := resp.Body.PorRestriccion[k]; !ok {
			t.Errorf("missing bucket %q", k)
		}
	}
}

func TestHandleStats_Unauthorized(t *testing.T) {
	db := newTestDB(t)
	adminAuth, _ := newTestAuth(t)
	handler := NewStatsHandler(db, adminAuth)

	_, err := handler.HandleStats(context.Background(), &StatsRequest{})
	if statusOf(err) != 401 {
		t.Fatalf("expected 401, got %v", err)
	}
}
