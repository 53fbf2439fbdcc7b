package admin

import (
	"errors"
	"strings"

	"github.com/obras-paraguay/natacion-api/internal/models"
	"github.com/obras-paraguay/natacion-api/internal/store"
	"go.uber.org/zap"
)

var ErrOfferingNotFound = errors.New("class offering not found")

// Service backs the staff panel: record listing/export/clearing and direct
// slot-count edits. It reads and writes the same two collections as the
// booking engine but bypasses the capacity-decrement path.
type Service struct {
	store  *store.Store
	logger *zap.Logger
}

func NewService(st *store.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: st, logger: logger}
}

// ListRecords returns records matching filterText with a case-insensitive
// substring match against student name, DNI and phone. An empty filter
// returns everything in stored (newest-first) order.
func (s *Service) ListRecords(filterText string) []models.ReservationRecord {
	records := s.store.LoadReservations()
	if filterText == "" {
		return records
	}

	needle := strings.ToLower(filterText)
	filtered := make([]models.ReservationRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.StudentFullName), needle) ||
			strings.Contains(strings.ToLower(r.DNI), needle) ||
			strings.Contains(strings.ToLower(r.Phone), needle) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// ClearRecords empties the reservation collection. The confirmation gesture
// is the caller's responsibility; this is irreversible.
func (s *Service) ClearRecords() error {
	s.logger.Info("clearing all reservation records")
	return s.store.ClearReservations()
}

// SetRemainingSlots overwrites one offering's remaining slot count, clamped
// to >= 0. There is deliberately no upper clamp against capacity: operators
// may oversell a class (e.g. after a cancellation handled at the front desk).
func (s *Service) SetRemainingSlots(offeringID string, newValue int) error {
	if newValue < 0 {
		newValue = 0
	}

	classes := s.store.LoadClasses()
	found := false
	for i := range classes {
		if classes[i].ID == offeringID {
			classes[i].RemainingSlots = newValue
			found = true
			break
		}
	}
	if !found {
		return ErrOfferingNotFound
	}

	s.logger.Info("remaining slots overwritten",
		zap.String("class_id", offeringID),
		zap.Int("remaining_slots", newValue),
	)
	return s.store.SaveClasses(classes)
}

// CommitInventory overwrites the entire persisted catalog with the edited
// snapshot in one call.
func (s *Service) CommitInventory(edited []models.ClassOffering) error {
	s.logger.Info("inventory committed", zap.Int("classes", len(edited)))
	return s.store.SaveClasses(edited)
}
