package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/uai-coreday/coreday-api/internal/auth"
)

func RegisterRoutes(
	r *chi.Mux,
	adminAuth *auth.AdminAuth,
	personaHandler *PersonaHandler,
	asistenciaHandler *AsistenciaHandler,
	seccionHandler *SeccionHandler,
	statsHandler *StatsHandler,
	uploadHandler *UploadHandler,
) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize Huma API
	config := huma.DefaultConfig("Core Day Attendance API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: auth.SessionCookie,
		},
	}
	api := humachi.New(r, config)

	adminOp := func(o *huma.Operation) {
		o.Security = []map[string][]string{{"cookieAuth": {}}}
	}

	// Ops routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Session and upload stay plain chi handlers
	r.Post("/api/admin/login", adminAuth.HandleLogin)
	r.Delete("/api/admin/login", adminAuth.HandleLogout)
	r.Group(func(r chi.Router) {
		r.Use(adminAuth.RequireAdmin)
		r.Post("/api/admin/upload", uploadHandler.HandleUpload)
	})

	// Public check-in
	huma.Get(api, "/api/personas/buscar", asistenciaHandler.HandleBuscar)
	huma.Post(api, "/api/asistencia", asistenciaHandler.HandleRegistrar)

	// Admin surface
	huma.Get(api, "/api/admin/personas", personaHandler.HandleList, adminOp)
	huma.Post(api, "/api/admin/personas", personaHandler.HandleCreate, adminOp)
	huma.Delete(api, "/api/admin/personas", personaHandler.HandleDeleteAll, adminOp)
	huma.Patch(api, "/api/admin/personas/{id}", personaHandler.HandleUpdate, adminOp)
	huma.Delete(api, "/api/admin/personas/{id}", personaHandler.HandleDelete, adminOp)
	huma.Delete(api, "/api/admin/asistencias/{personaId}", asistenciaHandler.HandleRemove, adminOp)
	huma.Get(api, "/api/admin/stats", statsHandler.HandleStats, adminOp)
	huma.Get(api, "/api/admin/buses", seccionHandler.HandleListBuses, adminOp)
	huma.Post(api, "/api/admin/buses", seccionHandler.HandleMarcarBus, adminOp)
	huma.Delete(api, "/api/admin/buses", seccionHandler.HandleQuitarBus, adminOp)
	huma.Get(api, "/api/admin/almuerzo-entregado", seccionHandler.HandleListAlmuerzo, adminOp)
	huma.Post(api, "/api/admin/almuerzo-entregado", seccionHandler.HandleMarcarAlmuerzo, adminOp)
	huma.Delete(api, "/api/admin/almuerzo-entregado", seccionHandler.HandleQuitarAlmuerzo, adminOp)
}
