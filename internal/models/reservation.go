package models

// ReservationRecord is one completed pre-reservation, newest first in the
// persisted collection. Records are immutable once written; the class fields
// are a snapshot taken at booking time, so later catalog edits never change
// historical rows.
type ReservationRecord struct {
	ID               string `json:"id"`
	Timestamp        string `json:"timestamp"`
	StudentFullName  string `json:"studentFullName"`
	DNI              string `json:"dni"`
	ResponsibleAdult string `json:"responsibleAdult,omitempty"`
	Phone            string `json:"phone"`
	Email            string `json:"email,omitempty"`
	ClassID          string `json:"classId"`
	ClassCategory    string `json:"classCategory"`
	ClassLevel       string `json:"classLevel"`
	ClassTime        string `json:"classTime"`
	ClassDays        string `json:"classDays,omitempty"`
}

// BookingForm carries the visitor-submitted fields of a pre-reservation.
type BookingForm struct {
	StudentFullName  string `json:"studentFullName"`
	DNI              string `json:"dni"`
	ResponsibleAdult string `json:"responsibleAdult,omitempty"`
	Phone            string `json:"phone"`
	Email            string `json:"email,omitempty"`
}
