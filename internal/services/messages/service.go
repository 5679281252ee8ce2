package messages

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ivankudzin/heartlink/internal/domain/enums"
	"github.com/ivankudzin/heartlink/internal/domain/model"
	"github.com/ivankudzin/heartlink/internal/pkg/latency"
	"github.com/ivankudzin/heartlink/internal/pkg/validate"
	"github.com/ivankudzin/heartlink/internal/services/events"
)

const (
	defaultConversationsDelay = 500 * time.Millisecond
	defaultMessagesDelay      = 500 * time.Millisecond
	defaultSendDelay          = 300 * time.Millisecond
)

var ErrConversationNotFound = errors.New("conversation not found")

type Directory interface {
	CurrentUserID() string
}

type Config struct {
	ConversationsDelay time.Duration
	MessagesDelay      time.Duration
	SendDelay          time.Duration
}

type Dependencies struct {
	Directory         Directory
	SeedConversations func() []model.Conversation
	SeedMessages      func(conversationID string, now time.Time) []model.Message
	Delay             latency.Func
	NewID             func() string
	Now               func() time.Time
	Notifier          events.Notifier
	Logger            *zap.Logger
}

type Service struct {
	directory         Directory
	seedConversations func() []model.Conversation
	seedMessages      func(conversationID string, now time.Time) []model.Message
	delay             latency.Func
	newID             func() string
	events            events.Emitter
	logger            *zap.Logger
	cfg               Config
	now               func() time.Time

	mu            sync.Mutex
	conversations []model.Conversation
	messages      map[string][]model.Message
	loaded        map[string]bool
	active        string
	hasActive     bool
}

func NewService(deps Dependencies, cfg Config) *Service {
	if cfg.ConversationsDelay <= 0 {
		cfg.ConversationsDelay = defaultConversationsDelay
	}
	if cfg.MessagesDelay <= 0 {
		cfg.MessagesDelay = defaultMessagesDelay
	}
	if cfg.SendDelay <= 0 {
		cfg.SendDelay = defaultSendDelay
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	newID := deps.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	seedConversations := deps.SeedConversations
	if seedConversations == nil {
		seedConversations = func() []model.Conversation { return nil }
	}
	seedMessages := deps.SeedMessages
	if seedMessages == nil {
		seedMessages = func(string, time.Time) []model.Message { return nil }
	}

	return &Service{
		directory:         deps.Directory,
		seedConversations: seedConversations,
		seedMessages:      seedMessages,
		delay:             latency.OrDefault(deps.Delay),
		newID:             newID,
		events:            events.NewEmitter(deps.Notifier, logger, now),
		logger:            logger,
		cfg:               cfg,
		now:               now,
		conversations:     []model.Conversation{},
		messages:          make(map[string][]model.Message),
		loaded:            make(map[string]bool),
	}
}

func (s *Service) FetchConversations(ctx context.Context) error {
	if err := s.delay(ctx, s.cfg.ConversationsDelay); err != nil {
		return fmt.Errorf("fetch conversations: %w", err)
	}

	seeded := s.seedConversations()
	items := make([]model.Conversation, 0, len(seeded))
	for _, c := range seeded {
		items = append(items, c.Clone())
	}

	s.mu.Lock()
	s.conversations = items
	s.mu.Unlock()

	s.logger.Debug("conversations fetched", zap.Int("count", len(items)))
	s.events.Emit(ctx, enums.EventConversationsFetched, map[string]any{"count": len(items)})
	return nil
}

// FetchMessages replaces the thread of conversationID with its seed sequence.
// Unknown conversations get an empty thread.
func (s *Service) FetchMessages(ctx context.Context, conversationID string) error {
	if err := s.delay(ctx, s.cfg.MessagesDelay); err != nil {
		return fmt.Errorf("fetch messages: %w", err)
	}

	seeded := s.seedMessages(conversationID, s.now().UTC())
	thread := make([]model.Message, len(seeded))
	copy(thread, seeded)

	s.mu.Lock()
	s.messages[conversationID] = thread
	s.loaded[conversationID] = true
	if idx := s.indexOf(conversationID); idx >= 0 && len(thread) > 0 {
		last := thread[len(thread)-1]
		s.conversations[idx].LastMessage = &last
	}
	s.mu.Unlock()

	s.logger.Debug("messages fetched", zap.String("conversation_id", conversationID), zap.Int("count", len(thread)))
	s.events.Emit(ctx, enums.EventMessagesFetched, map[string]any{
		"conversation_id": conversationID,
		"count":           len(thread),
	})
	return nil
}

// SendMessage appends a message from the current user to the other
// participant. Blank content is a no-op and reports false.
func (s *Service) SendMessage(ctx context.Context, conversationID, content string) (model.Message, bool, error) {
	if !validate.Required(content) {
		return model.Message{}, false, nil
	}
	if s.directory == nil {
		return model.Message{}, false, fmt.Errorf("messages directory is nil")
	}
	if err := s.delay(ctx, s.cfg.SendDelay); err != nil {
		return model.Message{}, false, fmt.Errorf("send message: %w", err)
	}

	currentUserID := s.directory.CurrentUserID()

	s.mu.Lock()
	idx := s.indexOf(conversationID)
	if idx < 0 {
		s.mu.Unlock()
		return model.Message{}, false, ErrConversationNotFound
	}

	msg := model.Message{
		ID:             s.newID(),
		ConversationID: conversationID,
		SenderID:       currentUserID,
		ReceiverID:     s.conversations[idx].OtherParticipant(currentUserID),
		Content:        content,
		Timestamp:      s.now().UTC(),
		Read:           false,
	}
	s.messages[conversationID] = append(s.messages[conversationID], msg)
	last := msg
	s.conversations[idx].LastMessage = &last
	s.mu.Unlock()

	s.logger.Debug("message sent", zap.String("conversation_id", conversationID), zap.String("message_id", msg.ID))
	s.events.Emit(ctx, enums.EventMessageSent, map[string]any{
		"conversation_id": conversationID,
		"message_id":      msg.ID,
	})
	return msg, true, nil
}

// SetActiveConversation marks conversationID active, zeroes its unread count
// and marks read every message in it addressed to the current user.
func (s *Service) SetActiveConversation(conversationID string) {
	currentUserID := ""
	if s.directory != nil {
		currentUserID = s.directory.CurrentUserID()
	}

	s.mu.Lock()
	s.active = conversationID
	s.hasActive = true
	if idx := s.indexOf(conversationID); idx >= 0 {
		s.conversations[idx].UnreadCount = 0
	}
	thread := s.messages[conversationID]
	for i := range thread {
		if thread[i].ReceiverID == currentUserID {
			thread[i].Read = true
		}
	}
	s.mu.Unlock()

	s.events.Emit(context.Background(), enums.EventConversationActive, map[string]any{"conversation_id": conversationID})
}

func (s *Service) ClearActiveConversation() {
	s.mu.Lock()
	s.active = ""
	s.hasActive = false
	s.mu.Unlock()

	s.events.Emit(context.Background(), enums.EventConversationActive, map[string]any{"conversation_id": nil})
}

func (s *Service) ActiveConversation() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active, s.hasActive
}

func (s *Service) Conversations() []model.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Conversation, 0, len(s.conversations))
	for _, c := range s.conversations {
		out = append(out, c.Clone())
	}
	return out
}

func (s *Service) Conversation(conversationID string) (model.Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(conversationID)
	if idx < 0 {
		return model.Conversation{}, false
	}
	return s.conversations[idx].Clone(), true
}

// Messages returns the loaded thread of conversationID, oldest first.
func (s *Service) Messages(conversationID string) []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	thread := s.messages[conversationID]
	out := make([]model.Message, len(thread))
	copy(out, thread)
	return out
}

// Loaded reports whether FetchMessages has completed for conversationID.
// A thread holding only sent messages is not loaded.
func (s *Service) Loaded(conversationID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded[conversationID]
}

func (s *Service) UnreadTotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, c := range s.conversations {
		total += c.UnreadCount
	}
	return total
}

// indexOf must be called with s.mu held.
func (s *Service) indexOf(conversationID string) int {
	for i, c := range s.conversations {
		if c.ID == conversationID {
			return i
		}
	}
	return -1
}
