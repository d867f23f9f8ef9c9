package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shrimpsizemoose/trekker/logger"
	"gorm.io/gorm"

	"github.com/uai-coreday/coreday-api/internal/importer"
	"github.com/uai-coreday/coreday-api/internal/metrics"
	"github.com/uai-coreday/coreday-api/internal/models"
	"github.com/uai-coreday/coreday-api/internal/notifier"
)

// UploadHandler is a plain chi handler: huma has no comfortable surface for
// multipart uploads, and this endpoint only ever answers the admin dashboard.
type UploadHandler struct {
	db       *gorm.DB
	notifier notifier.Notifier
}

func NewUploadHandler(db *gorm.DB, n notifier.Notifier) *UploadHandler {
	return &UploadHandler{db: db, notifier: n}
}

// HandleUpload ingests the attendee spreadsheet. Auth is enforced by the
// RequireAdmin middleware on the route.
// POST /api/admin/upload
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No se envió archivo"})
		return
	}
	defer file.Close()

	personas, err := importer.ParseXLSX(file)
	if err != nil {
		if errors.Is(err, importer.ErrSinFilasValidas) {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": "No se encontraron filas válidas. Columnas esperadas: RUT, DV, nombres, apellido paterno, apellido materno, correo UAI, sección CORE, carrera.",
			})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No se pudo leer el archivo"})
		return
	}

	if err := importer.Upsert(h.db, personas); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	metrics.ImportedRowsTotal.Add(float64(len(personas)))
	var total int64
	if err := h.db.Model(&models.Persona{}).Count(&total).Error; err == nil {
		metrics.PersonasTotal.Set(float64(total))
	}

	if h.notifier != nil {
		if err := h.notifier.NotifyImport(len(personas)); err != nil {
			logger.Error.Printf("Failed to send import notification: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "count": len(personas)})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
