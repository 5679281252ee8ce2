package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ivankudzin/heartlink/internal/domain/model"
	"github.com/ivankudzin/heartlink/internal/pkg/validate"
	"github.com/ivankudzin/heartlink/internal/services/directory"
	messagessvc "github.com/ivankudzin/heartlink/internal/services/messages"
	"github.com/ivankudzin/heartlink/internal/transport/http/dto"
	httperrors "github.com/ivankudzin/heartlink/internal/transport/http/errors"
)

type MessagesHandler struct {
	service   *messagessvc.Service
	directory *directory.Service
	loc       *time.Location
	now       func() time.Time
}

func NewMessagesHandler(service *messagessvc.Service, dir *directory.Service, loc *time.Location) *MessagesHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &MessagesHandler{service: service, directory: dir, loc: loc, now: time.Now}
}

// List returns conversations whose other participant the directory knows.
// Conversations load on first use or with refresh=1.
func (h *MessagesHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.service == nil || h.directory == nil {
		writeInternal(w, "MESSAGES_SERVICE_UNAVAILABLE", "messages service is unavailable")
		return
	}

	conversations := h.service.Conversations()
	if len(conversations) == 0 || parseBool(r.URL.Query().Get("refresh")) {
		if err := h.service.FetchConversations(r.Context()); err != nil {
			writeStoreError(w, err, "failed to load conversations")
			return
		}
		conversations = h.service.Conversations()
	}

	view := h.view()
	active, hasActive := h.service.ActiveConversation()
	items := make([]dto.ConversationItemResponse, 0, len(conversations))
	for _, c := range conversations {
		item, ok := h.conversationItem(c, view)
		if !ok {
			continue
		}
		item.Active = hasActive && active == c.ID
		items = append(items, item)
	}

	httperrors.Write(w, http.StatusOK, dto.ConversationsResponse{
		Items:       items,
		UnreadTotal: h.service.UnreadTotal(),
	})
}

// Thread opens a conversation: loads its messages on first open or with
// refresh=1 and makes it the active one, which marks incoming messages read.
func (h *MessagesHandler) Thread(w http.ResponseWriter, r *http.Request) {
	if h.service == nil || h.directory == nil {
		writeInternal(w, "MESSAGES_SERVICE_UNAVAILABLE", "messages service is unavailable")
		return
	}

	id := chi.URLParam(r, "id")
	if _, ok := h.lookup(w, r, id); !ok {
		return
	}

	if !h.service.Loaded(id) || parseBool(r.URL.Query().Get("refresh")) {
		if err := h.service.FetchMessages(r.Context(), id); err != nil {
			writeStoreError(w, err, "failed to load messages")
			return
		}
	}
	h.service.SetActiveConversation(id)

	conv, _ := h.service.Conversation(id)
	view := h.view()
	item, ok := h.conversationItem(conv, view)
	if !ok {
		writeNotFound(w, "CONVERSATION_NOT_FOUND", "conversation not found")
		return
	}
	item.Active = true

	thread := h.service.Messages(id)
	messages := make([]dto.MessageResponse, 0, len(thread))
	for _, m := range thread {
		messages = append(messages, view.message(m))
	}

	httperrors.Write(w, http.StatusOK, dto.ConversationThreadResponse{
		Conversation: item,
		Messages:     messages,
	})
}

func (h *MessagesHandler) Send(w http.ResponseWriter, r *http.Request) {
	if h.service == nil || h.directory == nil {
		writeInternal(w, "MESSAGES_SERVICE_UNAVAILABLE", "messages service is unavailable")
		return
	}

	var req dto.SendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidation(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	// The seed history goes in first so a reply lands after it.
	if _, known := h.service.Conversation(id); known && validate.Required(req.Content) && !h.service.Loaded(id) {
		if err := h.service.FetchMessages(r.Context(), id); err != nil {
			writeStoreError(w, err, "failed to load messages")
			return
		}
	}

	msg, sent, err := h.service.SendMessage(r.Context(), id, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, messagessvc.ErrConversationNotFound):
			writeNotFound(w, "CONVERSATION_NOT_FOUND", "conversation not found")
		default:
			writeStoreError(w, err, "failed to send message")
		}
		return
	}

	resp := dto.SendMessageResponse{Sent: sent}
	status := http.StatusOK
	if sent {
		m := h.view().message(msg)
		resp.Message = &m
		status = http.StatusCreated
	}
	httperrors.Write(w, status, resp)
}

func (h *MessagesHandler) ClearActive(w http.ResponseWriter, _ *http.Request) {
	if h.service == nil {
		writeInternal(w, "MESSAGES_SERVICE_UNAVAILABLE", "messages service is unavailable")
		return
	}

	h.service.ClearActiveConversation()
	httperrors.Write(w, http.StatusOK, struct {
		OK bool `json:"ok"`
	}{OK: true})
}

// lookup resolves id, loading the conversation list if it is still empty.
func (h *MessagesHandler) lookup(w http.ResponseWriter, r *http.Request, id string) (model.Conversation, bool) {
	if conv, ok := h.service.Conversation(id); ok {
		return conv, true
	}
	if len(h.service.Conversations()) == 0 {
		if err := h.service.FetchConversations(r.Context()); err != nil {
			writeStoreError(w, err, "failed to load conversations")
			return model.Conversation{}, false
		}
		if conv, ok := h.service.Conversation(id); ok {
			return conv, true
		}
	}
	writeNotFound(w, "CONVERSATION_NOT_FOUND", "conversation not found")
	return model.Conversation{}, false
}

func (h *MessagesHandler) conversationItem(c model.Conversation, view messageView) (dto.ConversationItemResponse, bool) {
	other, ok := h.directory.GetUserByID(c.OtherParticipant(view.currentUserID))
	if !ok {
		return dto.ConversationItemResponse{}, false
	}

	item := dto.ConversationItemResponse{
		ID:          c.ID,
		Participant: toUserResponse(other),
		UnreadCount: c.UnreadCount,
	}
	if c.LastMessage != nil {
		last := view.message(*c.LastMessage)
		item.LastMessage = &last
	}
	return item, true
}

func (h *MessagesHandler) view() messageView {
	return messageView{
		currentUserID: h.directory.CurrentUserID(),
		now:           h.now(),
		loc:           h.loc,
	}
}
