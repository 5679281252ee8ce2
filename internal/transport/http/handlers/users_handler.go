package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ivankudzin/heartlink/internal/services/directory"
	httperrors "github.com/ivankudzin/heartlink/internal/transport/http/errors"
)

type UsersHandler struct {
	directory *directory.Service
}

func NewUsersHandler(dir *directory.Service) *UsersHandler {
	return &UsersHandler{directory: dir}
}

func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h.directory == nil {
		writeInternal(w, "DIRECTORY_UNAVAILABLE", "user directory is unavailable")
		return
	}

	user, ok := h.directory.GetUserByID(chi.URLParam(r, "id"))
	if !ok {
		writeNotFound(w, "USER_NOT_FOUND", "user not found")
		return
	}

	httperrors.Write(w, http.StatusOK, toUserResponse(user))
}
