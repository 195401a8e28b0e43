// Package choices holds the fixed enumeration tables for reservation fields
// and the normalization used before every table lookup.
package choices

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/upslabs/reservalab/internal/pkg/apperrors"
)

// Table maps a normalized input token to its canonical display value.
type Table map[string]string

// Enumeration tables. Keys are the normalized form of every accepted token;
// values are what gets stored and echoed back to the client.
var (
	Cargo = Table{
		"ESTUDIANTE": "Estudiante",
		"DOCENTE":    "Docente",
		"EGRESADO":   "Egresado",
	}

	Carrera = Table{
		"COMPUTACION":              "Computacion",
		"SISTEMAS":                 "Sistemas",
		"ELECTRICIDAD / ELECTRICA": "Electricidad / Electrica",
		"ELECTRONICA":              "Electronica",
		"TELECOMUNICACIONES":       "Telecomunicaciones",
		"AMBIENTAL":                "Ambiental",
		"CIVIL":                    "Civil",
		"MECANICA":                 "Mecanica",
		"AUTOMOTRIZ":               "Automotriz",
		"MAESTRIA":                 "Maestria",
		"CECASIS":                  "CECASIS",
	}

	Nivel = Table{
		"1RO":      "1ro",
		"2DO":      "2do",
		"3RO":      "3ro",
		"4TO":      "4to",
		"5TO":      "5to",
		"6TO":      "6to",
		"7MO":      "7mo",
		"8VO":      "8vo",
		"9NO":      "9no",
		"10MO":     "10mo",
		"EGRESADO": "Egresado",
		"DOCENTE":  "Docente",
	}

	Discapacidad = Table{
		"SI": "SI",
		"NO": "NO",
	}

	Laboratorio = Table{
		"LABORATORIO NETWORKING 1":         "Laboratorio Networking 1",
		"LABORATORIO NETWORKING 2":         "Laboratorio Networking 2",
		"LABORATORIO NETWORKING 3":         "Laboratorio Networking 3",
		"LABORATORIO COMPUTACION AVANZADA": "Laboratorio Computacion Avanzada",
		"LABORATORIO IHM":                  "Laboratorio IHM",
	}

	Equipo = Table{
		"ROUTER 2800":   "Router 2800",
		"SWITCH 2960":   "Switch 2960",
		"HUB 240":       "HUB 240",
		"ROUTER 1941":   "Router 1941",
		"SWITCH 3560":   "Switch 3560",
		"KIT ARDUINO":   "Kit Arduino",
		"KIT RASPBERRY": "Kit Raspberry",
		"NINGUNO":       "Ninguno",
	}
)

// foldAccents decomposes to NFKD and drops combining marks, so that
// "Computación" and "Computacion" produce the same token.
var foldAccents = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
)

// Normalize canonicalizes a free-text enum selection: accent fold, trim
// surrounding whitespace, upper-case. Empty input normalizes to "".
func Normalize(s string) string {
	folded, _, err := transform.String(foldAccents, s)
	if err != nil {
		// Transform only fails on malformed UTF-8; fall back to the raw text
		// so the lookup still misses deterministically.
		folded = s
	}
	return strings.ToUpper(strings.TrimSpace(folded))
}

// Validate resolves a raw value against a table. A lookup miss is a
// ValidationError carrying the field name and the sorted display values.
func Validate(raw string, table Table, field string) (string, error) {
	key := Normalize(raw)
	display, ok := table[key]
	if !ok {
		return "", apperrors.NewValidationError("Valor no permitido para " + field).
			WithPermitidos(table.Allowed())
	}
	return display, nil
}

// Allowed returns the table's display values, sorted.
func (t Table) Allowed() []string {
	values := make([]string, 0, len(t))
	for _, v := range t {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
