package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ivankudzin/heartlink/internal/domain/enums"
	"github.com/ivankudzin/heartlink/internal/domain/model"
	"github.com/ivankudzin/heartlink/internal/pkg/latency"
	"github.com/ivankudzin/heartlink/internal/services/events"
)

const defaultLoginDelay = 500 * time.Millisecond

type Directory interface {
	CurrentUser() model.User
}

type Config struct {
	LoginDelay time.Duration
}

type Dependencies struct {
	Directory Directory
	Delay     latency.Func
	Now       func() time.Time
	Notifier  events.Notifier
	Logger    *zap.Logger
}

type Service struct {
	directory Directory
	delay     latency.Func
	events    events.Emitter
	logger    *zap.Logger
	cfg       Config

	mu            sync.Mutex
	currentUser   *model.User
	authenticated bool
}

func NewService(deps Dependencies, cfg Config) *Service {
	if cfg.LoginDelay <= 0 {
		cfg.LoginDelay = defaultLoginDelay
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		directory: deps.Directory,
		delay:     latency.OrDefault(deps.Delay),
		events:    events.NewEmitter(deps.Notifier, logger, deps.Now),
		logger:    logger,
		cfg:       cfg,
	}
}

// Login is a presence check: any non-empty email and password sign in the
// directory's current user. It does not verify credentials.
func (s *Service) Login(ctx context.Context, email, password string) (bool, error) {
	if s.directory == nil {
		return false, fmt.Errorf("session directory is nil")
	}
	if err := s.delay(ctx, s.cfg.LoginDelay); err != nil {
		return false, fmt.Errorf("login: %w", err)
	}

	if email == "" || password == "" {
		s.logger.Debug("login rejected: empty credentials")
		return false, nil
	}

	user := s.directory.CurrentUser()

	s.mu.Lock()
	s.currentUser = &user
	s.authenticated = true
	s.mu.Unlock()

	s.logger.Debug("login succeeded", zap.String("user_id", user.ID))
	s.events.Emit(ctx, enums.EventSessionLoggedIn, map[string]any{"user_id": user.ID})
	return true, nil
}

func (s *Service) Logout() {
	s.mu.Lock()
	s.currentUser = nil
	s.authenticated = false
	s.mu.Unlock()

	s.events.Emit(context.Background(), enums.EventSessionLoggedOut, nil)
}

// UpdateProfile replaces the current user wholesale. Field validation is the
// caller's job.
func (s *Service) UpdateProfile(user model.User) {
	updated := user.Clone()

	s.mu.Lock()
	s.currentUser = &updated
	s.mu.Unlock()

	s.events.Emit(context.Background(), enums.EventSessionProfileSaved, map[string]any{"user_id": updated.ID})
}

func (s *Service) CurrentUser() (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUser == nil {
		return model.User{}, false
	}
	return s.currentUser.Clone(), true
}

func (s *Service) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}
