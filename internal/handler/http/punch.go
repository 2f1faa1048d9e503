package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/RomanBrocki/ponto-online-go/internal/domain/punch"
	"github.com/RomanBrocki/ponto-online-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PunchHandler interface {
	RecordStage(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	ListMyMonth(w http.ResponseWriter, r *http.Request)
	MyAvailableMonths(w http.ResponseWriter, r *http.Request)
	ListMonth(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	AvailableMonths(w http.ResponseWriter, r *http.Request)
}

type PunchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &PunchHandlerImpl{
		punchService: punchService,
	}
}

// RecordStage implements PunchHandler.
func (h *PunchHandlerImpl) RecordStage(w http.ResponseWriter, r *http.Request) {
	var req punch.RecordStageRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RecordStage decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	punchResponse, err := h.punchService.RecordStage(r.Context(), req)
	if err != nil {
		slog.Error("RecordStage service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Punch stage recorded", "stage", req.Stage)
	response.Created(w, "Punch stage recorded successfully", punchResponse)
}

// GetToday implements PunchHandler.
func (h *PunchHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	punchResponse, err := h.punchService.GetToday(r.Context())
	if err != nil {
		slog.Error("GetToday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, punchResponse)
}

// ListMyMonth implements PunchHandler.
func (h *PunchHandlerImpl) ListMyMonth(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	listResponse, err := h.punchService.ListMyMonth(r.Context(), month)
	if err != nil {
		slog.Error("ListMyMonth service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, listResponse)
}

// MyAvailableMonths implements PunchHandler.
func (h *PunchHandlerImpl) MyAvailableMonths(w http.ResponseWriter, r *http.Request) {
	monthsResponse, err := h.punchService.MyAvailableMonths(r.Context())
	if err != nil {
		slog.Error("MyAvailableMonths service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, monthsResponse)
}

// ListMonth implements PunchHandler.
func (h *PunchHandlerImpl) ListMonth(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	employeeFilter := r.URL.Query().Get("employee")

	listResponse, err := h.punchService.ListMonth(r.Context(), month, employeeFilter)
	if err != nil {
		slog.Error("ListMonth service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, listResponse)
}

// Update implements PunchHandler.
func (h *PunchHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req punch.UpdatePunchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	punchResponse, err := h.punchService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Punch updated", "id", req.ID)
	response.SuccessWithMessage(w, "Punch updated successfully", punchResponse)
}

// Delete implements PunchHandler.
func (h *PunchHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.punchService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Punch deleted", "id", id)
	response.SuccessWithMessage(w, "Punch deleted successfully", nil)
}

// AvailableMonths implements PunchHandler.
func (h *PunchHandlerImpl) AvailableMonths(w http.ResponseWriter, r *http.Request) {
	monthsResponse, err := h.punchService.AvailableMonths(r.Context())
	if err != nil {
		slog.Error("AvailableMonths service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, monthsResponse)
}
