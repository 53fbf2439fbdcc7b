package catalog

import (
	"github.com/obras-paraguay/natacion-api/internal/models"
)

// Default returns the seed catalog used whenever no persisted catalog exists
// (or the persisted one cannot be parsed). Callers get a fresh copy; mutating
// the result never touches the seed.
func Default() []models.ClassOffering {
	out := make([]models.ClassOffering, len(seed))
	copy(out, seed)
	for i := range out {
		days := make([]string, len(seed[i].Days))
		copy(days, seed[i].Days)
		out[i].Days = days
	}
	return out
}

var seed = []models.ClassOffering{
	// Niños 4 a 6 años
	{
		ID:             "k-4-6-17h",
		Category:       models.CategoryKids,
		Level:          "Nivel Inicial",
		AgeRange:       "4 a 6 años",
		Time:           "17:00 - 18:00",
		Days:           []string{"Lunes", "Miércoles", "Jueves"},
		Capacity:       10,
		RemainingSlots: 10,
		Price:          4500,
	},
	{
		ID:             "k-4-6-18h",
		Category:       models.CategoryKids,
		Level:          "Nivel Inicial",
		AgeRange:       "4 a 6 años",
		Time:           "18:00 - 19:00",
		Days:           []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes"},
		Capacity:       10,
		RemainingSlots: 10,
		Price:          4500,
	},
	{
		ID:             "k-4-6-19h",
		Category:       models.CategoryKids,
		Level:          "Nivel Inicial",
		AgeRange:       "4 a 6 años",
		Time:           "19:00 - 20:00",
		Days:           []string{"Martes"},
		Capacity:       10,
		RemainingSlots: 10,
		Price:          4500,
	},
	// Niños 7 a 9 años
	{
		ID:             "k-7-9-17h",
		Category:       models.CategoryKids,
		Level:          "Nivel Intermedio",
		AgeRange:       "7 a 9 años",
		Time:           "17:00 - 18:00",
		Days:           []string{"Lunes", "Miércoles", "Jueves"},
		Capacity:       10,
		RemainingSlots: 10,
		Price:          4800,
	},
	{
		ID:             "k-7-9-18h",
		Category:       models.CategoryKids,
		Level:          "Nivel Intermedio",
		AgeRange:       "7 a 9 años",
		Time:           "18:00 - 19:00",
		Days:           []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes"},
		Capacity:       10,
		RemainingSlots: 10,
		Price:          4800,
	},
	{
		ID:             "k-7-9-19h",
		Category:       models.CategoryKids,
		Level:          "Nivel Intermedio",
		AgeRange:       "7 a 9 años",
		Time:           "19:00 - 20:00",
		Days:           []string{"Martes"},
		Capacity:       10,
		RemainingSlots: 10,
		Price:          4800,
	},
	// Niños 10 a 12 años
	{
		ID:             "k-10-12-17h",
		Category:       models.CategoryKids,
		Level:          "Nivel Pro",
		AgeRange:       "10 a 12 años",
		Time:           "17:00 - 18:00",
		Days:           []string{"Lunes", "Miércoles"},
		Capacity:       10,
		RemainingSlots: 10,
		Price:          5000,
	},
	{
		ID:             "k-10-12-18h",
		Category:       models.CategoryKids,
		Level:          "Nivel Pro",
		AgeRange:       "10 a 12 años",
		Time:           "18:00 - 19:00",
		Days:           []string{"Lunes", "Viernes"},
		Capacity:       10,
		RemainingSlots: 10,
		Price:          5000,
	},
	// Adultos
	{
		ID:             "a-ini-16h",
		Category:       models.CategoryAdults,
		Level:          "Nivel Inicial",
		Time:           "16:00 - 17:00",
		Days:           []string{"Lunes", "Miércoles", "Martes", "Jueves"},
		Instructor:     "Staff Obras",
		Capacity:       10,
		RemainingSlots: 10,
		Price:          5500,
	},
	{
		ID:             "a-int-19h",
		Category:       models.CategoryAdults,
		Level:          "Nivel Medio",
		Time:           "19:00 - 20:00",
		Days:           []string{"Lunes", "Miércoles"},
		Instructor:     "Staff Obras",
		Capacity:       10,
		RemainingSlots: 10,
		Price:          6000,
	},
	{
		ID:             "a-adv-20h",
		Category:       models.CategoryAdults,
		Level:          "Nivel Pro",
		Time:           "20:00 - 21:00",
		Days:           []string{"Martes", "Jueves"},
		Instructor:     "Staff Obras",
		Capacity:       10,
		RemainingSlots: 10,
		Price:          6500,
	},
	// Acuagym
	{
		ID:             "acu-1030",
		Category:       models.CategoryAcuagym,
		Level:          "Acuagym",
		Time:           "10:30 - 11:30",
		Days:           []string{"Lunes", "Viernes"},
		Instructor:     "Staff Obras",
		Capacity:       25,
		RemainingSlots: 25,
		Price:          4000,
	},
	{
		ID:             "acu-1000",
		Category:       models.CategoryAcuagym,
		Level:          "Acuagym",
		Time:           "10:00 - 11:00",
		Days:           []string{"Martes", "Jueves"},
		Instructor:     "Staff Obras",
		Capacity:       25,
		RemainingSlots: 25,
		Price:          4000,
	},
}
