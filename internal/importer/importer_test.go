package importer

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/uai-coreday/coreday-api/internal/models"
)

func buildXLSX(t *testing.T, filas [][]interface{}) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	for i, fila := range filas {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("failed to compute cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &fila); err != nil {
			t.Fatalf("failed to write row: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("failed to serialize workbook: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestParseXLSX_DropsIncompleteRows(t *testing.T) {
	r := buildXLSX(t, [][]interface{}{
		{"RUT", "DV", "Nombres", "Apellido Paterno", "Apellido Materno", "Correo UAI", "Sección CORE", "Carrera"},
		{"12345678", "5", "Ana", "Pérez", "Soto", "ana@alumnos.uai.cl", "A1", "Ingeniería"},
		{"87654321", "", "Juan", "Rojas", "Díaz", "", "A2", ""}, // missing dv
	})

	personas, err := ParseXLSX(r)
	if err != nil {
		t.Fatalf("ParseXLSX returned error: %v", err)
	}

	if len(personas) != 1 {
		t.Fatalf("expected 1 valid row, got %d", len(personas))
	}
	if personas[0].Rut != "12345678" || personas[0].Dv != "5" {
		t.Errorf("unexpected persona: %+v", personas[0])
	}
	if personas[0].SeccionCore != "A1" {
		t.Errorf("expected seccion A1, got %q", personas[0].SeccionCore)
	}
}

func TestParseXLSX_HeaderSpellings(t *testing.T) {
	// Underscore variants and mixed case must resolve too.
	r := buildXLSX(t, [][]interface{}{
		{"rut", "DV_ALT", "NOMBRES", "apellido_paterno", "apellido_materno", "correo_uai", "seccion core", "carrera"},
		{"11111111", "1", "María", "Lagos", "Vera", "", "B3", "Derecho"},
	})

	personas, err := ParseXLSX(r)
	if err != nil {
		t.Fatalf("ParseXLSX returned error: %v", err)
	}
	if len(personas) != 1 {
		t.Fatalf("expected 1 row, got %d", len(personas))
	}
	if personas[0].ApellidoPaterno != "Lagos" || personas[0].SeccionCore != "B3" {
		t.Errorf("unexpected persona: %+v", personas[0])
	}
}

func TestParseXLSX_NoValidRows(t *testing.T) {
	r := buildXLSX(t, [][]interface{}{
		{"RUT", "DV", "Nombres", "Apellido Paterno", "Apellido Materno", "Sección CORE"},
		{"", "", "", "", "", ""},
	})

	if _, err := ParseXLSX(r); err != ErrSinFilasValidas {
		t.Fatalf("expected ErrSinFilasValidas, got %v", err)
	}
}

func TestUpsert_ReimportDoesNotDuplicate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	db.AutoMigrate(&models.Persona{})

	batch := []models.PersonaInsert{
		{Rut: "12345678", Dv: "5", Nombres: "Ana", ApellidoPaterno: "Pérez", ApellidoMaterno: "Soto", SeccionCore: "A1"},
		{Rut: "87654321", Dv: "K", Nombres: "Juan", ApellidoPaterno: "Rojas", ApellidoMaterno: "Díaz", SeccionCore: "A2"},
	}

	if err := Upsert(db, batch); err != nil {
		t.Fatalf("first Upsert failed: %v", err)
	}

	// Re-import with an updated section for Ana.
	batch[0].SeccionCore = "C9"
	if err := Upsert(db, batch); err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}

	var count int64
	db.Model(&models.Persona{}).Count(&count)
	if count != 2 {
		t.Errorf("expected 2 personas after re-import, got %d", count)
	}

	var ana models.Persona
	if err := db.Where("rut = ? AND dv = ?", "12345678", "5").First(&ana).Error; err != nil {
		t.Fatalf("failed to find persona: %v", err)
	}
	if ana.SeccionCore != "C9" {
		t.Errorf("expected updated seccion C9, got %q", ana.SeccionCore)
	}
}
