package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/obras-paraguay/natacion-api/internal/admin"
	"github.com/obras-paraguay/natacion-api/internal/auth"
	"github.com/obras-paraguay/natacion-api/internal/models"
)

type AdminHandler struct {
	service     *admin.Service
	authHandler *auth.AuthHandler
}

func NewAdminHandler(service *admin.Service, authHandler *auth.AuthHandler) *AdminHandler {
	return &AdminHandler{service: service, authHandler: authHandler}
}

type LoginRequest struct {
	Body struct {
		AccessID string `json:"accessId" doc:"Staff access ID" required:"true"`
	}
}

type LoginResponse struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      struct {
		Message string `json:"message"`
	}
}

func (h *AdminHandler) HandleLogin(ctx context.Context, input *LoginRequest) (*LoginResponse, error) {
	if err := h.authHandler.VerifyAccessID(input.Body.AccessID); err != nil {
		return nil, err
	}

	token, err := h.authHandler.GenerateToken()
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate token")
	}

	res := &LoginResponse{SetCookie: h.authHandler.SessionCookie(token)}
	res.Body.Message = "Acceso autorizado"
	return res, nil
}

type ListRecordsRequest struct {
	auth.AuthInput
	Search string `query:"search" doc:"Case-insensitive substring filter over name, DNI and phone"`
}

type ListRecordsResponse struct {
	Body struct {
		Records []models.ReservationRecord `json:"records"`
	}
}

func (h *AdminHandler) HandleListRecords(ctx context.Context, input *ListRecordsRequest) (*ListRecordsResponse, error) {
	if err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	res := &ListRecordsResponse{}
	res.Body.Records = h.service.ListRecords(input.Search)
	return res, nil
}

type ClearRecordsRequest struct {
	auth.AuthInput
	Body struct {
		Confirm bool `json:"confirm" doc:"Must be true; clearing is irreversible"`
	}
}

type ClearRecordsResponse struct {
	Body struct {
		Message string `json:"message"`
	}
}

func (h *AdminHandler) HandleClearRecords(ctx context.Context, input *ClearRecordsRequest) (*ClearRecordsResponse, error) {
	if err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}
	if !input.Body.Confirm {
		return nil, huma.Error400BadRequest("Confirmación requerida para eliminar los registros")
	}

	if err := h.service.ClearRecords(); err != nil {
		return nil, huma.Error500InternalServerError("Failed to clear records: " + err.Error())
	}

	res := &ClearRecordsResponse{}
	res.Body.Message = "Registros eliminados"
	return res, nil
}

type SetSlotsRequest struct {
	auth.AuthInput
	ID   string `path:"id" doc:"Class offering id"`
	Body struct {
		RemainingSlots int `json:"remainingSlots" doc:"New remaining slot count, clamped to >= 0"`
	}
}

type SetSlotsResponse struct {
	Body struct {
		Message string `json:"message"`
	}
}

func (h *AdminHandler) HandleSetRemainingSlots(ctx context.Context, input *SetSlotsRequest) (*SetSlotsResponse, error) {
	if err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	if err := h.service.SetRemainingSlots(input.ID, input.Body.RemainingSlots); err != nil {
		if errors.Is(err, admin.ErrOfferingNotFound) {
			return nil, huma.Error404NotFound("Clase no encontrada")
		}
		return nil, huma.Error500InternalServerError("Failed to update slots: " + err.Error())
	}

	res := &SetSlotsResponse{}
	res.Body.Message = "Cupos actualizados"
	return res, nil
}

type CommitInventoryRequest struct {
	auth.AuthInput
	Body struct {
		Classes []models.ClassOffering `json:"classes" doc:"Full edited catalog snapshot" required:"true"`
	}
}

type CommitInventoryResponse struct {
	Body struct {
		Message string `json:"message"`
	}
}

func (h *AdminHandler) HandleCommitInventory(ctx context.Context, input *CommitInventoryRequest) (*CommitInventoryResponse, error) {
	if err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	if err := h.service.CommitInventory(input.Body.Classes); err != nil {
		return nil, huma.Error500InternalServerError("Failed to save inventory: " + err.Error())
	}

	res := &CommitInventoryResponse{}
	res.Body.Message = "Guardado"
	return res, nil
}

// HandleExportCSV is a raw download endpoint; huma's typed responses don't
// fit a file attachment. Gated by the session cookie plus the optional
// export PIN.
func (h *AdminHandler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	if err := h.authHandler.Authorize(r.Context(), r.Header.Get("Cookie")); err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if err := h.authHandler.VerifyExportPIN(r.URL.Query().Get("pin")); err != nil {
		http.Error(w, "PIN de exportación incorrecto", http.StatusUnauthorized)
		return
	}

	records := h.service.ListRecords(r.URL.Query().Get("search"))
	blob := h.service.ExportRecords(records)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+admin.ExportFilename(time.Now())+`"`)
	w.Write(blob)
}
