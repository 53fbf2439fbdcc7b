package store

import (
	"encoding/json"

	"github.com/obras-paraguay/natacion-api/internal/catalog"
	"github.com/obras-paraguay/natacion-api/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Fixed blob keys. These match the keys the original site wrote, so a dump of
// either blob is directly comparable.
const (
	ClassesKey      = "obras_paraguay_classes"
	ReservationsKey = "obras_paraguay_reservations"
)

// Store owns the two persisted collections. Callers only ever read a full
// snapshot and write back a full replacement; there is no field-level update.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

func New(db *gorm.DB, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: db, logger: logger}
}

// LoadClasses returns the persisted catalog, or the default catalog when no
// blob exists or the blob cannot be parsed. Corruption never surfaces to the
// caller; a stale catalog from an older seed shape is returned as-is.
func (s *Store) LoadClasses() []models.ClassOffering {
	raw, ok := s.readBlob(ClassesKey)
	if !ok {
		return catalog.Default()
	}

	var classes []models.ClassOffering
	if err := json.Unmarshal([]byte(raw), &classes); err != nil {
		s.logger.Warn("unparseable classes blob, falling back to defaults", zap.Error(err))
		return catalog.Default()
	}
	return classes
}

// SaveClasses overwrites the persisted catalog in full. Remaining slots are
// clamped to >= 0 before writing; no upper clamp against capacity.
func (s *Store) SaveClasses(classes []models.ClassOffering) error {
	return s.saveClassesTx(s.db, classes)
}

// LoadReservations returns persisted records newest-first, or an empty slice
// when the blob is absent or unparseable.
func (s *Store) LoadReservations() []models.ReservationRecord {
	return s.loadReservationsTx(s.db)
}

func (s *Store) loadReservationsTx(tx *gorm.DB) []models.ReservationRecord {
	raw, ok := s.readBlobTx(tx, ReservationsKey)
	if !ok {
		return []models.ReservationRecord{}
	}

	var records []models.ReservationRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.logger.Warn("unparseable reservations blob, falling back to empty", zap.Error(err))
		return []models.ReservationRecord{}
	}
	return records
}

// AppendReservation prepends the record and writes back the full collection.
func (s *Store) AppendReservation(rec models.ReservationRecord) error {
	return s.appendReservationTx(s.db, rec)
}

// ClearReservations writes back an empty collection. Irreversible.
func (s *Store) ClearReservations() error {
	return s.writeBlob(s.db, ReservationsKey, "[]")
}

// SaveBooking persists a decremented catalog and the new reservation record
// in a single transaction, so an interrupted booking never leaves a
// decremented slot without its matching record.
func (s *Store) SaveBooking(classes []models.ClassOffering, rec models.ReservationRecord) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.saveClassesTx(tx, classes); err != nil {
			return err
		}
		return s.appendReservationTx(tx, rec)
	})
}

func (s *Store) saveClassesTx(tx *gorm.DB, classes []models.ClassOffering) error {
	for i := range classes {
		if classes[i].RemainingSlots < 0 {
			classes[i].RemainingSlots = 0
		}
	}

	data, err := json.Marshal(classes)
	if err != nil {
		return err
	}
	return s.writeBlob(tx, ClassesKey, string(data))
}

func (s *Store) appendReservationTx(tx *gorm.DB, rec models.ReservationRecord) error {
	records := append([]models.ReservationRecord{rec}, s.loadReservationsTx(tx)...)
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.writeBlob(tx, ReservationsKey, string(data))
}

func (s *Store) readBlob(key string) (string, bool) {
	return s.readBlobTx(s.db, key)
}

func (s *Store) readBlobTx(tx *gorm.DB, key string) (string, bool) {
	var blob models.StateBlob
	if err := tx.Where("key = ?", key).First(&blob).Error; err != nil {
		return "", false
	}
	return blob.Value, true
}

func (s *Store) writeBlob(tx *gorm.DB, key, value string) error {
	var blob models.StateBlob
	if err := tx.Where(models.StateBlob{Key: key}).FirstOrInit(&blob).Error; err != nil {
		return err
	}
	blob.Key = key
	blob.Value = value
	return tx.Save(&blob).Error
}
