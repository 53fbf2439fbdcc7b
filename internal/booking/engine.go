package booking

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/obras-paraguay/natacion-api/internal/models"
	"github.com/obras-paraguay/natacion-api/internal/notifier"
	"github.com/obras-paraguay/natacion-api/internal/store"
	"go.uber.org/zap"
)

// ErrOfferingNotFound means the submitted class id is not in the loaded
// catalog. No side effects have happened when it is returned.
var ErrOfferingNotFound = errors.New("class offering not found")

// ValidationError names the form field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Engine mediates one reservation attempt from "class selected" to "record
// persisted, slot decremented".
type Engine struct {
	store    *store.Store
	notifier notifier.Notifier
	logger   *zap.Logger
}

func NewEngine(st *store.Store, n notifier.Notifier, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{store: st, notifier: n, logger: logger}
}

// SubmitBooking validates the form, decrements the offering's remaining slot
// count and appends a reservation record, both in one write. A full class is
// not refused: the count clamps at zero. The slot count is advisory, the
// front desk confirms the actual vacancy on payment.
func (e *Engine) SubmitBooking(offeringID string, form models.BookingForm) (*models.ReservationRecord, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}

	classes := e.store.LoadClasses()
	idx := -1
	for i := range classes {
		if classes[i].ID == offeringID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrOfferingNotFound
	}

	selected := classes[idx]
	newRemaining := selected.RemainingSlots - 1
	if newRemaining < 0 {
		newRemaining = 0
	}
	classes[idx].RemainingSlots = newRemaining

	record := models.ReservationRecord{
		ID:               uuid.NewString(),
		Timestamp:        time.Now().Format(time.RFC3339),
		StudentFullName:  form.StudentFullName,
		DNI:              form.DNI,
		ResponsibleAdult: form.ResponsibleAdult,
		Phone:            form.Phone,
		Email:            form.Email,
		ClassID:          selected.ID,
		ClassCategory:    selected.Category,
		ClassLevel:       selected.Level,
		ClassTime:        selected.Time,
		ClassDays:        strings.Join(selected.Days, ", "),
	}

	if err := e.store.SaveBooking(classes, record); err != nil {
		return nil, err
	}

	e.logger.Info("reservation created",
		zap.String("class_id", selected.ID),
		zap.String("record_id", record.ID),
		zap.Int("remaining_slots", newRemaining),
	)

	if e.notifier != nil {
		if err := e.notifier.NotifyReservation(record); err != nil {
			// Staff notification is best effort, the booking stands.
			e.logger.Warn("failed to notify staff", zap.Error(err))
		}
	}

	return &record, nil
}

func validateForm(form models.BookingForm) error {
	if strings.TrimSpace(form.StudentFullName) == "" {
		return &ValidationError{Field: "studentFullName", Message: "campo obligatorio"}
	}
	if strings.TrimSpace(form.DNI) == "" {
		return &ValidationError{Field: "dni", Message: "campo obligatorio"}
	}
	if strings.TrimSpace(form.Phone) == "" {
		return &ValidationError{Field: "phone", Message: "campo obligatorio"}
	}
	if form.Email != "" && !emailPattern.MatchString(form.Email) {
		return &ValidationError{Field: "email", Message: "Formato inválido."}
	}
	return nil
}
