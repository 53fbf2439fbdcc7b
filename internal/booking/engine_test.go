package booking

import (
	"errors"
	"testing"

	"github.com/obras-paraguay/natacion-api/internal/models"
	"github.com/obras-paraguay/natacion-api/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestEngine(t *testing.T) (*Engine, *store.Store) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	db.AutoMigrate(&models.StateBlob{})
	st := store.New(db, nil)
	return NewEngine(st, nil, nil), st
}

func validForm() models.BookingForm {
	return models.BookingForm{
		StudentFullName: "Juan Pérez",
		DNI:             "12345678",
		Phone:           "+595911111",
	}
}

func TestSubmitBookingScenario(t *testing.T) {
	engine, st := newTestEngine(t)

	rec, err := engine.SubmitBooking("k-4-6-17h", validForm())
	if err != nil {
		t.Fatalf("SubmitBooking returned error: %v", err)
	}

	classes := st.LoadClasses()
	if classes[0].ID != "k-4-6-17h" || classes[0].RemainingSlots != 9 {
		t.Errorf("expected remainingSlots 9 on k-4-6-17h, got %d", classes[0].RemainingSlots)
	}

	records := st.LoadReservations()
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].ClassLevel != "Nivel Inicial" {
		t.Errorf("expected snapshotted level 'Nivel Inicial', got %q", records[0].ClassLevel)
	}
	if records[0].ClassCategory != models.CategoryKids {
		t.Errorf("expected snapshotted category %q, got %q", models.CategoryKids, records[0].ClassCategory)
	}
	if records[0].ID != rec.ID {
		t.Errorf("returned record should be the persisted one")
	}

	// Second identical submission
	if _, err := engine.SubmitBooking("k-4-6-17h", validForm()); err != nil {
		t.Fatalf("second SubmitBooking returned error: %v", err)
	}
	if got := st.LoadClasses()[0].RemainingSlots; got != 8 {
		t.Errorf("expected remainingSlots 8 after second booking, got %d", got)
	}
	if got := len(st.LoadReservations()); got != 2 {
		t.Errorf("expected 2 records, got %d", got)
	}
}

func TestCapacityClamp(t *testing.T) {
	engine, st := newTestEngine(t)

	// k-4-6-17h has capacity 10; submit 12 bookings against it.
	for i := 0; i < 12; i++ {
		if _, err := engine.SubmitBooking("k-4-6-17h", validForm()); err != nil {
			t.Fatalf("booking %d returned error: %v", i+1, err)
		}
	}

	got := st.LoadClasses()[0].RemainingSlots
	if got != 0 {
		t.Errorf("expected remainingSlots clamped to 0, got %d", got)
	}
	// Over-capacity attempts still append records (advisory count).
	if n := len(st.LoadReservations()); n != 12 {
		t.Errorf("expected 12 records, got %d", n)
	}
}

func TestRecordsNewestFirst(t *testing.T) {
	engine, st := newTestEngine(t)

	first := validForm()
	second := validForm()
	second.StudentFullName = "Ana Gómez"

	engine.SubmitBooking("k-4-6-17h", first)
	engine.SubmitBooking("a-ini-16h", second)

	records := st.LoadReservations()
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].StudentFullName != "Ana Gómez" {
		t.Errorf("expected most recent record first, got %q", records[0].StudentFullName)
	}
}

func TestRecordImmutableUnderCatalogEdits(t *testing.T) {
	engine, st := newTestEngine(t)

	engine.SubmitBooking("k-4-6-17h", validForm())

	classes := st.LoadClasses()
	for i := range classes {
		if classes[i].ID == "k-4-6-17h" {
			classes[i].Level = "Nivel Cambiado"
			classes[i].Time = "23:00 - 23:30"
			classes[i].Capacity = 99
		}
	}
	st.SaveClasses(classes)

	rec := st.LoadReservations()[0]
	if rec.ClassLevel != "Nivel Inicial" {
		t.Errorf("record level changed after catalog edit: %q", rec.ClassLevel)
	}
	if rec.ClassTime != "17:00 - 18:00" {
		t.Errorf("record time changed after catalog edit: %q", rec.ClassTime)
	}
}

func TestSubmitBookingNotFound(t *testing.T) {
	engine, st := newTestEngine(t)

	_, err := engine.SubmitBooking("no-such-class", validForm())
	if !errors.Is(err, ErrOfferingNotFound) {
		t.Fatalf("expected ErrOfferingNotFound, got %v", err)
	}
	if n := len(st.LoadReservations()); n != 0 {
		t.Errorf("expected no side effects, got %d records", n)
	}
}

func TestEmailValidation(t *testing.T) {
	engine, _ := newTestEngine(t)

	form := validForm()
	form.Email = "not-an-email"
	_, err := engine.SubmitBooking("k-4-6-17h", form)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Field != "email" {
		t.Errorf("expected offending field 'email', got %q", vErr.Field)
	}

	form.Email = "a@b.co"
	if _, err := engine.SubmitBooking("k-4-6-17h", form); err != nil {
		t.Errorf("expected 'a@b.co' accepted, got %v", err)
	}

	form.Email = ""
	if _, err := engine.SubmitBooking("k-4-6-17h", form); err != nil {
		t.Errorf("expected empty email accepted, got %v", err)
	}
}

func TestRequiredFields(t *testing.T) {
	engine, st := newTestEngine(t)

	cases := []struct {
		field  string
		mutate func(*models.BookingForm)
	}{
		{"studentFullName", func(f *models.BookingForm) { f.StudentFullName = "  " }},
		{"dni", func(f *models.BookingForm) { f.DNI = "" }},
		{"phone", func(f *models.BookingForm) { f.Phone = "" }},
	}

	for _, tc := range cases {
		form := validForm()
		tc.mutate(&form)
		_, err := engine.SubmitBooking("k-4-6-17h", form)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("%s: expected ValidationError, got %v", tc.field, err)
		}
		if vErr.Field != tc.field {
			t.Errorf("expected offending field %q, got %q", tc.field, vErr.Field)
		}
	}

	if n := len(st.LoadReservations()); n != 0 {
		t.Errorf("validation failures must have no side effects, got %d records", n)
	}
}
