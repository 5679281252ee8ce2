package handlers

import (
	"cmp"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ivankudzin/heartlink/internal/domain/model"
	"github.com/ivankudzin/heartlink/internal/services/directory"
	matchessvc "github.com/ivankudzin/heartlink/internal/services/matches"
	"github.com/ivankudzin/heartlink/internal/transport/http/dto"
	httperrors "github.com/ivankudzin/heartlink/internal/transport/http/errors"
)

type MatchesHandler struct {
	service   *matchessvc.Service
	directory *directory.Service
}

func NewMatchesHandler(service *matchessvc.Service, dir *directory.Service) *MatchesHandler {
	return &MatchesHandler{service: service, directory: dir}
}

// Handle lists matches, best compatibility first. The list is loaded on first
// use; refresh=1 reloads it, which drops matches created by likes.
func (h *MatchesHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.service == nil || h.directory == nil {
		writeInternal(w, "MATCHES_SERVICE_UNAVAILABLE", "matches service is unavailable")
		return
	}

	matches := h.service.Matches()
	if len(matches) == 0 || parseBool(r.URL.Query().Get("refresh")) {
		if err := h.service.FetchMatches(r.Context()); err != nil {
			writeStoreError(w, err, "failed to load matches")
			return
		}
		matches = h.service.Matches()
	}
	slices.SortStableFunc(matches, func(a, b model.Match) int {
		return cmp.Compare(b.Compatibility, a.Compatibility)
	})

	items := make([]dto.MatchItemResponse, 0, len(matches))
	for _, m := range matches {
		var user *model.User
		if u, ok := h.directory.GetUserByID(m.MatchedUserID); ok {
			user = &u
		}
		items = append(items, toMatchItem(m, user))
	}

	httperrors.Write(w, http.StatusOK, dto.MatchesResponse{Items: items})
}

// Discover reloads the queue and returns the candidate profiles in queue
// order. Ids the directory cannot resolve are skipped.
func (h *MatchesHandler) Discover(w http.ResponseWriter, r *http.Request) {
	if h.service == nil || h.directory == nil {
		writeInternal(w, "MATCHES_SERVICE_UNAVAILABLE", "matches service is unavailable")
		return
	}

	if err := h.service.FetchPotentialMatches(r.Context()); err != nil {
		writeStoreError(w, err, "failed to load candidates")
		return
	}

	queue := h.service.Queue()
	items := make([]dto.UserResponse, 0, len(queue))
	for _, id := range queue {
		if u, ok := h.directory.GetUserByID(id); ok {
			items = append(items, toUserResponse(u))
		}
	}

	httperrors.Write(w, http.StatusOK, dto.DiscoverResponse{Items: items})
}

func (h *MatchesHandler) Like(w http.ResponseWriter, r *http.Request) {
	if h.service == nil || h.directory == nil {
		writeInternal(w, "MATCHES_SERVICE_UNAVAILABLE", "matches service is unavailable")
		return
	}

	match, err := h.service.LikeUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, matchessvc.ErrValidation):
			writeBadRequest(w, "VALIDATION_ERROR", "invalid like request")
		default:
			writeStoreError(w, err, "failed to like user")
		}
		return
	}

	resp := dto.LikeResponse{Matched: match != nil}
	if match != nil {
		var user *model.User
		if u, ok := h.directory.GetUserByID(match.MatchedUserID); ok {
			user = &u
		}
		item := toMatchItem(*match, user)
		resp.Match = &item
	}
	httperrors.Write(w, http.StatusOK, resp)
}

func (h *MatchesHandler) Pass(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "MATCHES_SERVICE_UNAVAILABLE", "matches service is unavailable")
		return
	}

	if err := h.service.PassUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		switch {
		case errors.Is(err, matchessvc.ErrValidation):
			writeBadRequest(w, "VALIDATION_ERROR", "invalid pass request")
		default:
			writeStoreError(w, err, "failed to pass user")
		}
		return
	}

	httperrors.Write(w, http.StatusOK, struct {
		OK bool `json:"ok"`
	}{OK: true})
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
