// Package heartlink assembles the stores that make up one running app.
package heartlink

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ivankudzin/heartlink/internal/config"
	"github.com/ivankudzin/heartlink/internal/pkg/latency"
	"github.com/ivankudzin/heartlink/internal/repo/memory"
	redrepo "github.com/ivankudzin/heartlink/internal/repo/redis"
	"github.com/ivankudzin/heartlink/internal/services/directory"
	"github.com/ivankudzin/heartlink/internal/services/events"
	matchessvc "github.com/ivankudzin/heartlink/internal/services/matches"
	messagessvc "github.com/ivankudzin/heartlink/internal/services/messages"
	sessionsvc "github.com/ivankudzin/heartlink/internal/services/session"
)

type Container struct {
	Directory *directory.Service
	Session   *sessionsvc.Service
	Matches   *matchessvc.Service
	Messages  *messagessvc.Service
	Bus       *events.Bus
	Location  *time.Location

	redis  *goredis.Client
	logger *zap.Logger
}

// Options replaces runtime collaborators, mostly for tests.
type Options struct {
	Delay latency.Func
	Rand  matchessvc.RandSource
	Now   func() time.Time
	// Redis is used instead of dialing cfg.Redis when events.redis_enabled is set.
	Redis *goredis.Client
}

func New(cfg config.Config, log *zap.Logger, opts Options) (*Container, error) {
	if log == nil {
		log = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Mock.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load mock timezone: %w", err)
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	delay := opts.Delay
	if delay == nil {
		delay = latency.Sleep
	}
	if !cfg.Mock.LatencyEnabled {
		delay = latency.None
	}

	bus := events.NewBus()
	notifiers := []events.Notifier{bus, logNotifier(log)}

	var redisClient *goredis.Client
	if cfg.Events.RedisEnabled {
		redisClient = opts.Redis
		if redisClient == nil {
			redisClient = redrepo.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		}
		repo := redrepo.NewEventRepo(redisClient, cfg.Events.Channel)
		notifiers = append(notifiers, repo)
		log.Info("redis change events enabled", zap.String("channel", repo.Channel()))
	}
	notifier := events.Fanout(notifiers...)

	seededAt := now()
	dir := directory.NewService(memory.CurrentUser(seededAt), memory.Users(seededAt))

	session := sessionsvc.NewService(sessionsvc.Dependencies{
		Directory: dir,
		Delay:     delay,
		Now:       now,
		Notifier:  notifier,
		Logger:    log.Named("session"),
	}, sessionsvc.Config{
		LoginDelay: cfg.Mock.Delays.Login,
	})

	matches := matchessvc.NewService(matchessvc.Dependencies{
		Directory: dir,
		Seed:      memory.Matches,
		Delay:     delay,
		Rand:      opts.Rand,
		Now:       now,
		Notifier:  notifier,
		Logger:    log.Named("matches"),
	}, matchessvc.Config{
		FetchDelay:       cfg.Mock.Delays.Matches,
		QueueDelay:       cfg.Mock.Delays.Discover,
		LikeDelay:        cfg.Mock.Delays.Like,
		PassDelay:        cfg.Mock.Delays.Pass,
		MatchThreshold:   cfg.Mock.MatchThreshold,
		CompatibilityMin: cfg.Mock.CompatibilityMin,
		CompatibilityMax: cfg.Mock.CompatibilityMax,
	})

	messages := messagessvc.NewService(messagessvc.Dependencies{
		Directory:         dir,
		SeedConversations: memory.Conversations,
		SeedMessages:      memory.Messages,
		Delay:             delay,
		Now:               now,
		Notifier:          notifier,
		Logger:            log.Named("messages"),
	}, messagessvc.Config{
		ConversationsDelay: cfg.Mock.Delays.Conversations,
		MessagesDelay:      cfg.Mock.Delays.Messages,
		SendDelay:          cfg.Mock.Delays.Send,
	})

	return &Container{
		Directory: dir,
		Session:   session,
		Matches:   matches,
		Messages:  messages,
		Bus:       bus,
		Location:  loc,
		redis:     redisClient,
		logger:    log,
	}, nil
}

func (c *Container) Close() error {
	if c.redis == nil {
		return nil
	}
	if err := c.redis.Close(); err != nil {
		return fmt.Errorf("close redis: %w", err)
	}
	return nil
}

func logNotifier(log *zap.Logger) events.Notifier {
	return events.NotifierFunc(func(_ context.Context, event events.Event) error {
		log.Debug("store_event", zap.String("kind", string(event.Kind)), zap.Any("props", event.Props))
		return nil
	})
}
