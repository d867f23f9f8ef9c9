// Package rut normalizes Chilean RUT input before lookups. Attendees paste
// their RUT in every imaginable shape ("12.345.678-5", "12345678 5", lowercase
// "k"), so everything is reduced to a digits-only body plus one check digit.
package rut

import (
	"strings"
)

// Clean removes dots, dashes and whitespace and uppercases the rest.
func Clean(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '.', '-', ' ', '\t':
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

// Digits keeps only the decimal digits of s.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Parse splits a full RUT into its numeric body and trailing check digit.
// Returns ok=false when no digits remain after cleaning.
func Parse(input string) (cuerpo, dv string, ok bool) {
	limpio := Clean(input)
	if len(limpio) < 2 {
		return "", "", false
	}
	dv = limpio[len(limpio)-1:]
	cuerpo = Digits(limpio[:len(limpio)-1])
	if cuerpo == "" {
		return "", "", false
	}
	return cuerpo, dv, true
}
