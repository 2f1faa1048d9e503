package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/RomanBrocki/ponto-online-go/internal/domain/user"
	"github.com/RomanBrocki/ponto-online-go/internal/handler/http/response"
)

type UserHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{
		userService: userService,
	}
}

// ListEmployees implements UserHandler.
func (h *UserHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	listResponse, err := h.userService.ListEmployees(r.Context())
	if err != nil {
		slog.Error("ListEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, listResponse)
}

// ChangePassword implements UserHandler.
func (h *UserHandlerImpl) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req user.ChangePasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ChangePassword decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.userService.ChangePassword(r.Context(), req); err != nil {
		slog.Error("ChangePassword service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Password changed successfully")
	response.SuccessWithMessage(w, "Password changed successfully", nil)
}
