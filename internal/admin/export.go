package admin

import (
	"strings"
	"time"

	"github.com/obras-paraguay/natacion-api/internal/models"
)

// Export contract: UTF-8 with a leading BOM so spreadsheet tools decode the
// accented Spanish headers correctly, semicolon-separated, every field
// double-quoted with internal quotes doubled.
const csvBOM = "\uFEFF"

var exportHeaders = []string{
	"Fecha Registro",
	"Alumno/a",
	"DNI",
	"WhatsApp / Teléfono",
	"Email",
	"Categoría",
	"Nivel de Clase",
	"Horario",
	"Días",
}

// ExportRecords renders the records as a downloadable CSV blob.
func (s *Service) ExportRecords(records []models.ReservationRecord) []byte {
	var b strings.Builder
	b.WriteString(csvBOM)
	b.WriteString(strings.Join(exportHeaders, ";"))

	for _, r := range records {
		email := r.Email
		if email == "" {
			email = "No provisto"
		}
		days := r.ClassDays
		if days == "" {
			days = "No especificado"
		}

		row := []string{
			formatTimestamp(r.Timestamp),
			r.StudentFullName,
			r.DNI,
			r.Phone,
			email,
			r.ClassCategory,
			r.ClassLevel,
			r.ClassTime,
			days,
		}

		b.WriteByte('\n')
		for i, field := range row {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		}
	}

	return []byte(b.String())
}

// ExportFilename is the fixed prefix plus the current timestamp, with
// characters unsafe for filenames replaced.
func ExportFilename(now time.Time) string {
	return "reporte_reservas_obras_" + now.Format("2006-01-02T15-04-05") + ".csv"
}

// formatTimestamp renders the stored RFC3339 timestamp the way the staff
// reads dates (dd/mm/yyyy). Unparseable values pass through untouched.
func formatTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Format("02/01/2006 15:04:05")
}
