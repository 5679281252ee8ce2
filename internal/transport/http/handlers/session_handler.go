package handlers

import (
	"net/http"

	"github.com/ivankudzin/heartlink/internal/pkg/validate"
	sessionsvc "github.com/ivankudzin/heartlink/internal/services/session"
	"github.com/ivankudzin/heartlink/internal/transport/http/dto"
	httperrors "github.com/ivankudzin/heartlink/internal/transport/http/errors"
)

type SessionHandler struct {
	service *sessionsvc.Service
}

func NewSessionHandler(service *sessionsvc.Service) *SessionHandler {
	return &SessionHandler{service: service}
}

func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "SESSION_SERVICE_UNAVAILABLE", "session service is unavailable")
		return
	}

	var req dto.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid request body")
		return
	}

	ok, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeStoreError(w, err, "failed to log in")
		return
	}
	if !ok {
		writeUnauthorized(w, "INVALID_CREDENTIALS", "email and password are required")
		return
	}

	h.writeSession(w)
}

func (h *SessionHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	if h.service == nil {
		writeInternal(w, "SESSION_SERVICE_UNAVAILABLE", "session service is unavailable")
		return
	}

	h.service.Logout()
	httperrors.Write(w, http.StatusOK, struct {
		OK bool `json:"ok"`
	}{OK: true})
}

func (h *SessionHandler) Get(w http.ResponseWriter, _ *http.Request) {
	if h.service == nil {
		writeInternal(w, "SESSION_SERVICE_UNAVAILABLE", "session service is unavailable")
		return
	}
	h.writeSession(w)
}

func (h *SessionHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "SESSION_SERVICE_UNAVAILABLE", "session service is unavailable")
		return
	}

	current, ok := h.service.CurrentUser()
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}

	var req dto.ProfileUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidation(w, err)
		return
	}

	h.service.UpdateProfile(applyProfileUpdate(current, req))
	h.writeSession(w)
}

func (h *SessionHandler) writeSession(w http.ResponseWriter) {
	resp := dto.SessionResponse{Authenticated: h.service.IsAuthenticated()}
	if user, ok := h.service.CurrentUser(); ok {
		u := toUserResponse(user)
		resp.User = &u
	}
	httperrors.Write(w, http.StatusOK, resp)
}
