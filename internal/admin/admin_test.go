package admin

import (
	"strings"
	"testing"
	"time"

	"github.com/obras-paraguay/natacion-api/internal/catalog"
	"github.com/obras-paraguay/natacion-api/internal/models"
	"github.com/obras-paraguay/natacion-api/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	db.AutoMigrate(&models.StateBlob{})
	st := store.New(db, nil)
	return NewService(st, nil), st
}

func TestListRecordsFilter(t *testing.T) {
	svc, st := newTestService(t)

	st.AppendReservation(models.ReservationRecord{StudentFullName: "Juan Pérez", DNI: "11111111", Phone: "+595911111"})
	st.AppendReservation(models.ReservationRecord{StudentFullName: "Ana Gómez", DNI: "22222222", Phone: "+595922222"})

	got := svc.ListRecords("GÓMEZ")
	if len(got) != 1 || got[0].StudentFullName != "Ana Gómez" {
		t.Errorf("expected exactly the Ana Gómez record, got %+v", got)
	}

	if got := svc.ListRecords("1111"); len(got) != 1 || got[0].StudentFullName != "Juan Pérez" {
		t.Errorf("expected DNI substring match for Juan Pérez, got %+v", got)
	}

	if got := svc.ListRecords("+5959"); len(got) != 2 {
		t.Errorf("expected phone substring to match both records, got %d", len(got))
	}

	all := svc.ListRecords("")
	if len(all) != 2 {
		t.Fatalf("expected empty filter to return all records, got %d", len(all))
	}
	if all[0].StudentFullName != "Ana Gómez" {
		t.Errorf("expected stored newest-first order, got %q first", all[0].StudentFullName)
	}
}

func TestClearRecords(t *testing.T) {
	svc, st := newTestService(t)

	st.AppendReservation(models.ReservationRecord{StudentFullName: "Juan Pérez"})
	if err := svc.ClearRecords(); err != nil {
		t.Fatalf("ClearRecords returned error: %v", err)
	}
	if got := svc.ListRecords(""); len(got) != 0 {
		t.Errorf("expected no records after clear, got %d", len(got))
	}
}

func TestSetRemainingSlots(t *testing.T) {
	svc, st := newTestService(t)

	if err := svc.SetRemainingSlots("k-4-6-17h", 4); err != nil {
		t.Fatalf("SetRemainingSlots returned error: %v", err)
	}
	if got := st.LoadClasses()[0].RemainingSlots; got != 4 {
		t.Errorf("expected 4 remaining slots, got %d", got)
	}

	// Negative values clamp to zero.
	if err := svc.SetRemainingSlots("k-4-6-17h", -3); err != nil {
		t.Fatalf("SetRemainingSlots returned error: %v", err)
	}
	if got := st.LoadClasses()[0].RemainingSlots; got != 0 {
		t.Errorf("expected clamp to 0, got %d", got)
	}

	// No upper clamp against capacity.
	if err := svc.SetRemainingSlots("k-4-6-17h", 50); err != nil {
		t.Fatalf("SetRemainingSlots returned error: %v", err)
	}
	if got := st.LoadClasses()[0].RemainingSlots; got != 50 {
		t.Errorf("expected above-capacity value kept, got %d", got)
	}

	if err := svc.SetRemainingSlots("no-such-class", 1); err != ErrOfferingNotFound {
		t.Errorf("expected ErrOfferingNotFound, got %v", err)
	}
}

func TestCommitInventory(t *testing.T) {
	svc, st := newTestService(t)

	edited := catalog.Default()
	edited[0].RemainingSlots = 2
	edited[5].RemainingSlots = 7

	if err := svc.CommitInventory(edited); err != nil {
		t.Fatalf("CommitInventory returned error: %v", err)
	}

	loaded := st.LoadClasses()
	if loaded[0].RemainingSlots != 2 || loaded[5].RemainingSlots != 7 {
		t.Errorf("expected edited snapshot persisted, got %d and %d",
			loaded[0].RemainingSlots, loaded[5].RemainingSlots)
	}
}

func TestExportRecords(t *testing.T) {
	svc, _ := newTestService(t)

	records := []models.ReservationRecord{
		{
			Timestamp:       "2026-03-15T17:30:00Z",
			StudentFullName: `Juan "Juancho" Pérez`,
			DNI:             "12345678",
			Phone:           "+595911111",
			ClassCategory:   models.CategoryKids,
			ClassLevel:      "Nivel Inicial",
			ClassTime:       "17:00 - 18:00",
			ClassDays:       "Lunes, Miércoles, Jueves",
		},
	}

	blob := string(svc.ExportRecords(records))

	if !strings.HasPrefix(blob, "\uFEFF") {
		t.Error("expected leading UTF-8 BOM")
	}

	lines := strings.Split(strings.TrimPrefix(blob, "\uFEFF"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus 1 row, got %d lines", len(lines))
	}
	if lines[0] != "Fecha Registro;Alumno/a;DNI;WhatsApp / Teléfono;Email;Categoría;Nivel de Clase;Horario;Días" {
		t.Errorf("unexpected header row: %q", lines[0])
	}

	row := lines[1]
	if !strings.Contains(row, `"Juan ""Juancho"" Pérez"`) {
		t.Errorf("expected internal quotes doubled, got %q", row)
	}
	if !strings.Contains(row, `"15/03/2026 17:30:00"`) {
		t.Errorf("expected human-readable timestamp, got %q", row)
	}
	if !strings.Contains(row, `"No provisto"`) {
		t.Errorf("expected missing email placeholder, got %q", row)
	}
	if !strings.Contains(row, `;"Niños";`) {
		t.Errorf("expected semicolon-delimited quoted category, got %q", row)
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, 3, 15, 17, 30, 0, 0, time.UTC)
	got := ExportFilename(now)
	if got != "reporte_reservas_obras_2026-03-15T17-30-00.csv" {
		t.Errorf("unexpected filename: %q", got)
	}
}
