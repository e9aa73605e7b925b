// Package template renders stored message templates against appointment
// and patient fields.
package template

import (
	"strings"
	"time"
)

// Placeholder names accepted in stored template bodies.
const (
	PlaceholderName       = "nome"
	PlaceholderDate       = "data"
	PlaceholderTime       = "hora"
	PlaceholderProcedures = "procedimentos"
)

const dateLayout = "02/01/2006"

// Fields carries the values substituted into a template body.
type Fields struct {
	PatientName string
	Date        time.Time
	Time        string
	Procedures  string
}

// Render substitutes {{name}} placeholders in body with the given
// fields. Unknown placeholders are left intact so a malformed template
// degrades visibly instead of silently dropping text.
func Render(body string, f Fields) string {
	replacer := strings.NewReplacer(
		"{{"+PlaceholderName+"}}", f.PatientName,
		"{{"+PlaceholderDate+"}}", f.Date.Format(dateLayout),
		"{{"+PlaceholderTime+"}}", f.Time,
		"{{"+PlaceholderProcedures+"}}", f.Procedures,
	)
	return replacer.Replace(body)
}
