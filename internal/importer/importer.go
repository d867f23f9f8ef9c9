// Package importer turns an uploaded XLSX nomina into attendee rows. Only the
// first sheet is read. Rows missing any required field are dropped silently:
// partial rows in the source spreadsheets are expected noise, not errors.
package importer

import (
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/uai-coreday/coreday-api/internal/models"
)

var ErrSinFilasValidas = errors.New("no se encontraron filas válidas")

type campo int

const (
	campoRut campo = iota
	campoDv
	campoNombres
	campoApellidoPaterno
	campoApellidoMaterno
	campoCorreoUAI
	campoSeccionCore
	campoCarrera
)

// encabezados maps each field to its accepted column spellings, matched
// case-insensitively after trimming. Accented and unaccented variants are
// listed explicitly because exports come from different tools.
var encabezados = map[campo][]string{
	campoRut:             {"rut"},
	campoDv:              {"dv", "dv_alt"},
	campoNombres:         {"nombres"},
	campoApellidoPaterno: {"apellido paterno", "apellido_paterno"},
	campoApellidoMaterno: {"apellido materno", "apellido_materno"},
	campoCorreoUAI:       {"correo uai", "correo_uai"},
	campoSeccionCore:     {"sección core", "seccion core", "seccion_core"},
	campoCarrera:         {"carrera"},
}

var requeridos = []campo{
	campoRut, campoDv, campoNombres, campoApellidoPaterno, campoApellidoMaterno, campoSeccionCore,
}

func normalizarEncabezado(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// resolverColumnas maps sheet column index to field, consulting the accepted
// spellings table. Unrecognized columns are ignored.
func resolverColumnas(fila []string) map[int]campo {
	cols := make(map[int]campo)
	for i, h := range fila {
		nombre := normalizarEncabezado(h)
		for c, variantes := range encabezados {
			for _, v := range variantes {
				if nombre == v {
					cols[i] = c
				}
			}
		}
	}
	return cols
}

func filaAPersona(cols map[int]campo, fila []string) (models.PersonaInsert, bool) {
	valores := make(map[campo]string)
	for i, celda := range fila {
		if c, ok := cols[i]; ok {
			valores[c] = strings.TrimSpace(celda)
		}
	}

	for _, c := range requeridos {
		if valores[c] == "" {
			return models.PersonaInsert{}, false
		}
	}

	return models.PersonaInsert{
		Rut:             valores[campoRut],
		Dv:              valores[campoDv],
		Nombres:         valores[campoNombres],
		ApellidoPaterno: valores[campoApellidoPaterno],
		ApellidoMaterno: valores[campoApellidoMaterno],
		CorreoUAI:       valores[campoCorreoUAI],
		SeccionCore:     valores[campoSeccionCore],
		Carrera:         valores[campoCarrera],
	}, true
}

// ParseXLSX reads the first sheet and returns every row that resolved all
// required fields. ErrSinFilasValidas when none did.
func ParseXLSX(r io.Reader) ([]models.PersonaInsert, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	hojas := f.GetSheetList()
	if len(hojas) == 0 {
		return nil, ErrSinFilasValidas
	}

	filas, err := f.GetRows(hojas[0])
	if err != nil {
		return nil, err
	}
	if len(filas) < 2 {
		return nil, ErrSinFilasValidas
	}

	cols := resolverColumnas(filas[0])

	var personas []models.PersonaInsert
	for _, fila := range filas[1:] {
		if p, ok := filaAPersona(cols, fila); ok {
			personas = append(personas, p)
		}
	}

	if len(personas) == 0 {
		return nil, ErrSinFilasValidas
	}
	return personas, nil
}

// Upsert writes the batch keyed on (rut, dv): re-importing the same file
// updates rows in place instead of duplicating them.
func Upsert(db *gorm.DB, personas []models.PersonaInsert) error {
	registros := make([]models.Persona, 0, len(personas))
	for _, p := range personas {
		registros = append(registros, models.Persona{
			Rut:             p.Rut,
			Dv:              p.Dv,
			Nombres:         p.Nombres,
			ApellidoPaterno: p.ApellidoPaterno,
			ApellidoMaterno: p.ApellidoMaterno,
			CorreoUAI:       p.CorreoUAI,
			SeccionCore:     p.SeccionCore,
			Carrera:         p.Carrera,
		})
	}

	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "rut"}, {Name: "dv"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"nombres", "apellido_paterno", "apellido_materno",
			"correo_uai", "seccion_core", "carrera", "updated_at",
		}),
	}).Create(&registros).Error
}
