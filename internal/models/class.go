package models

// Category values match the Spanish labels stored in the catalog blob.
const (
	CategoryKids    = "Niños"
	CategoryAdults  = "Adultos"
	CategoryAcuagym = "Acuagym"
)

// ClassOffering is one bookable time slot. The JSON field names are the
// persisted catalog format and must not change.
type ClassOffering struct {
	ID             string   `json:"id"`
	Category       string   `json:"category"`
	Level          string   `json:"level"`
	AgeRange       string   `json:"ageRange,omitempty"`
	Time           string   `json:"time"`
	Days           []string `json:"days"`
	Instructor     string   `json:"instructor"`
	Capacity       int      `json:"capacity"`
	RemainingSlots int      `json:"remainingSlots"`
	Price          int      `json:"price"`
}
