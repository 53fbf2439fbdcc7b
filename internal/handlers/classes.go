package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/obras-paraguay/natacion-api/internal/booking"
	"github.com/obras-paraguay/natacion-api/internal/models"
	"github.com/obras-paraguay/natacion-api/internal/store"
)

type ClassHandler struct {
	store  *store.Store
	engine *booking.Engine
}

func NewClassHandler(st *store.Store, engine *booking.Engine) *ClassHandler {
	return &ClassHandler{store: st, engine: engine}
}

type ListClassesResponse struct {
	Body struct {
		Classes []models.ClassOffering `json:"classes"`
	}
}

// HandleListClasses returns the full catalog in seed order, so the page can
// derive category tabs and level filters from it.
func (h *ClassHandler) HandleListClasses(ctx context.Context, input *struct{}) (*ListClassesResponse, error) {
	res := &ListClassesResponse{}
	res.Body.Classes = h.store.LoadClasses()
	return res, nil
}

type SubmitBookingRequest struct {
	ID   string `path:"id" doc:"Class offering id"`
	Body struct {
		StudentFullName  string `json:"studentFullName" doc:"Student full name" required:"true"`
		DNI              string `json:"dni" doc:"Student identity document" required:"true"`
		ResponsibleAdult string `json:"responsibleAdult,omitempty" doc:"Responsible adult name"`
		Phone            string `json:"phone" doc:"WhatsApp / contact phone" required:"true"`
		Email            string `json:"email,omitempty" doc:"Optional contact email"`
	}
}

type SubmitBookingResponse struct {
	Body struct {
		Message     string                   `json:"message"`
		Reservation models.ReservationRecord `json:"reservation"`
	}
}

func (h *ClassHandler) HandleSubmitBooking(ctx context.Context, input *SubmitBookingRequest) (*SubmitBookingResponse, error) {
	form := models.BookingForm{
		StudentFullName:  input.Body.StudentFullName,
		DNI:              input.Body.DNI,
		ResponsibleAdult: input.Body.ResponsibleAdult,
		Phone:            input.Body.Phone,
		Email:            input.Body.Email,
	}

	record, err := h.engine.SubmitBooking(input.ID, form)
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			return nil, huma.Error422UnprocessableEntity("Datos inválidos", &huma.ErrorDetail{
				Location: "body." + vErr.Field,
				Message:  vErr.Message,
			})
		}
		if errors.Is(err, booking.ErrOfferingNotFound) {
			return nil, huma.Error404NotFound("Clase no encontrada")
		}
		return nil, huma.Error500InternalServerError("Failed to process reservation: " + err.Error())
	}

	res := &SubmitBookingResponse{}
	res.Body.Message = "Pre-reserva registrada. Abonar en recepción para confirmar vacante."
	res.Body.Reservation = *record
	return res, nil
}
