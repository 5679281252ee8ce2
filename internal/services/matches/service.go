package matches

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ivankudzin/heartlink/internal/domain/enums"
	"github.com/ivankudzin/heartlink/internal/domain/model"
	"github.com/ivankudzin/heartlink/internal/pkg/latency"
	"github.com/ivankudzin/heartlink/internal/services/events"
)

const (
	defaultFetchDelay       = 800 * time.Millisecond
	defaultQueueDelay       = 500 * time.Millisecond
	defaultLikeDelay        = 500 * time.Millisecond
	defaultPassDelay        = 500 * time.Millisecond
	defaultMatchThreshold   = 0.3
	defaultCompatibilityMin = 70
	defaultCompatibilityMax = 99
)

var ErrValidation = errors.New("validation error")

type Directory interface {
	CurrentUserID() string
	Candidates() []model.User
}

// RandSource drives the like outcome and the compatibility score.
type RandSource interface {
	Float64() float64
	IntN(n int) int
}

type Config struct {
	FetchDelay time.Duration
	QueueDelay time.Duration
	LikeDelay  time.Duration
	PassDelay  time.Duration
	// A like becomes a match when the random draw exceeds MatchThreshold.
	MatchThreshold   float64
	CompatibilityMin int
	CompatibilityMax int
}

type Dependencies struct {
	Directory Directory
	Seed      func(now time.Time) []model.Match
	Delay     latency.Func
	Rand      RandSource
	NewID     func() string
	Now       func() time.Time
	Notifier  events.Notifier
	Logger    *zap.Logger
}

type Service struct {
	directory Directory
	seed      func(now time.Time) []model.Match
	delay     latency.Func
	rand      RandSource
	newID     func() string
	events    events.Emitter
	logger    *zap.Logger
	cfg       Config
	now       func() time.Time

	mu      sync.Mutex
	matches []model.Match
	queue   []string
}

func NewService(deps Dependencies, cfg Config) *Service {
	if cfg.FetchDelay <= 0 {
		cfg.FetchDelay = defaultFetchDelay
	}
	if cfg.QueueDelay <= 0 {
		cfg.QueueDelay = defaultQueueDelay
	}
	if cfg.LikeDelay <= 0 {
		cfg.LikeDelay = defaultLikeDelay
	}
	if cfg.PassDelay <= 0 {
		cfg.PassDelay = defaultPassDelay
	}
	if cfg.MatchThreshold <= 0 || cfg.MatchThreshold >= 1 {
		cfg.MatchThreshold = defaultMatchThreshold
	}
	if cfg.CompatibilityMin <= 0 && cfg.CompatibilityMax <= 0 {
		cfg.CompatibilityMin = defaultCompatibilityMin
		cfg.CompatibilityMax = defaultCompatibilityMax
	}
	cfg.CompatibilityMin = clamp(cfg.CompatibilityMin, model.CompatibilityMin, model.CompatibilityMax)
	cfg.CompatibilityMax = clamp(cfg.CompatibilityMax, cfg.CompatibilityMin, model.CompatibilityMax)

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	random := deps.Rand
	if random == nil {
		random = globalRand{}
	}
	newID := deps.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	seed := deps.Seed
	if seed == nil {
		seed = func(time.Time) []model.Match { return nil }
	}

	return &Service{
		directory: deps.Directory,
		seed:      seed,
		delay:     latency.OrDefault(deps.Delay),
		rand:      random,
		newID:     newID,
		events:    events.NewEmitter(deps.Notifier, logger, now),
		logger:    logger,
		cfg:       cfg,
		now:       now,
		matches:   []model.Match{},
		queue:     []string{},
	}
}

// FetchMatches resets the match list to the seed set. Matches created by
// earlier likes are discarded.
func (s *Service) FetchMatches(ctx context.Context) error {
	if err := s.delay(ctx, s.cfg.FetchDelay); err != nil {
		return fmt.Errorf("fetch matches: %w", err)
	}

	seeded := s.seed(s.now().UTC())
	items := make([]model.Match, len(seeded))
	copy(items, seeded)

	s.mu.Lock()
	s.matches = items
	s.mu.Unlock()

	s.logger.Debug("matches fetched", zap.Int("count", len(items)))
	s.events.Emit(ctx, enums.EventMatchesFetched, map[string]any{"count": len(items)})
	return nil
}

// FetchPotentialMatches rebuilds the discovery queue from the directory in
// catalog order, skipping users already matched.
func (s *Service) FetchPotentialMatches(ctx context.Context) error {
	if s.directory == nil {
		return fmt.Errorf("matches directory is nil")
	}
	if err := s.delay(ctx, s.cfg.QueueDelay); err != nil {
		return fmt.Errorf("fetch potential matches: %w", err)
	}

	candidates := s.directory.Candidates()

	s.mu.Lock()
	matched := make(map[string]struct{}, len(s.matches))
	for _, m := range s.matches {
		matched[m.MatchedUserID] = struct{}{}
	}
	queue := make([]string, 0, len(candidates))
	for _, u := range candidates {
		if _, ok := matched[u.ID]; ok {
			continue
		}
		queue = append(queue, u.ID)
	}
	s.queue = queue
	s.mu.Unlock()

	s.logger.Debug("discovery queue fetched", zap.Int("count", len(queue)))
	s.events.Emit(ctx, enums.EventQueueFetched, map[string]any{"count": len(queue)})
	return nil
}

// LikeUser removes userID from the queue and, when the draw succeeds, records
// and returns a new match. A nil match means no match.
func (s *Service) LikeUser(ctx context.Context, userID string) (*model.Match, error) {
	if err := s.validateTarget(userID); err != nil {
		return nil, err
	}
	if err := s.delay(ctx, s.cfg.LikeDelay); err != nil {
		return nil, fmt.Errorf("like user: %w", err)
	}

	var created *model.Match
	if s.rand.Float64() > s.cfg.MatchThreshold {
		now := s.now().UTC()
		created = &model.Match{
			ID:              s.newID(),
			UserID:          s.directory.CurrentUserID(),
			MatchedUserID:   userID,
			Compatibility:   s.cfg.CompatibilityMin + s.rand.IntN(s.cfg.CompatibilityMax-s.cfg.CompatibilityMin+1),
			CreatedAt:       now,
			LastInteraction: now,
		}
	}

	s.mu.Lock()
	if created != nil {
		s.matches = append(s.matches, *created)
	}
	s.queue = without(s.queue, userID)
	s.mu.Unlock()

	s.events.Emit(ctx, enums.EventCandidateLiked, map[string]any{"user_id": userID, "matched": created != nil})
	if created != nil {
		s.logger.Debug("like produced match", zap.String("user_id", userID), zap.Int("compatibility", created.Compatibility))
		s.events.Emit(ctx, enums.EventMatchCreated, map[string]any{
			"match_id":        created.ID,
			"matched_user_id": userID,
			"compatibility":   created.Compatibility,
		})
		out := *created
		return &out, nil
	}

	s.logger.Debug("like without match", zap.String("user_id", userID))
	return nil, nil
}

func (s *Service) PassUser(ctx context.Context, userID string) error {
	if err := s.validateTarget(userID); err != nil {
		return err
	}
	if err := s.delay(ctx, s.cfg.PassDelay); err != nil {
		return fmt.Errorf("pass user: %w", err)
	}

	s.mu.Lock()
	s.queue = without(s.queue, userID)
	s.mu.Unlock()

	s.logger.Debug("user passed", zap.String("user_id", userID))
	s.events.Emit(ctx, enums.EventCandidatePassed, map[string]any{"user_id": userID})
	return nil
}

func (s *Service) Matches() []model.Match {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Match, len(s.matches))
	copy(out, s.matches)
	return out
}

// Queue returns the pending discovery ids in order.
func (s *Service) Queue() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.queue))
	copy(out, s.queue)
	return out
}

func (s *Service) validateTarget(userID string) error {
	if s.directory == nil {
		return fmt.Errorf("matches directory is nil")
	}
	if strings.TrimSpace(userID) == "" || userID == s.directory.CurrentUserID() {
		return ErrValidation
	}
	return nil
}

func without(ids []string, target string) []string {
	out := ids[:0:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

func (globalRand) IntN(n int) int { return rand.Intn(n) }
