package apiapp

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ivankudzin/heartlink/internal/app/heartlink"
	"github.com/ivankudzin/heartlink/internal/config"
	"github.com/ivankudzin/heartlink/internal/transport/http/handlers"
)

const requestTimeout = 60 * time.Second

type Dependencies struct {
	Container *heartlink.Container
	Logger    *zap.Logger
	Config    config.Config
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	c := deps.Container

	healthHandler := handlers.NewHealthHandler()
	sessionHandler := handlers.NewSessionHandler(c.Session)
	usersHandler := handlers.NewUsersHandler(c.Directory)
	matchesHandler := handlers.NewMatchesHandler(c.Matches, c.Directory)
	messagesHandler := handlers.NewMessagesHandler(c.Messages, c.Directory, c.Location)
	eventsHandler := handlers.NewEventsHandler(c.Bus, deps.Config.Events.BusBuffer, deps.Logger)

	r.Get("/healthz", healthHandler.Handle)

	r.Route("/v1", func(r chi.Router) {
		// Streams outlive the request timeout.
		r.With(SessionMiddleware(c.Session)).Get("/events", eventsHandler.Stream)

		r.Group(func(r chi.Router) {
			r.Use(chimiddleware.Timeout(requestTimeout))

			r.Post("/session/login", sessionHandler.Login)
			r.Post("/session/logout", sessionHandler.Logout)
			r.Get("/session", sessionHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(SessionMiddleware(c.Session))

				r.Put("/session/profile", sessionHandler.UpdateProfile)
				r.Get("/users/{id}", usersHandler.Get)

				r.Get("/matches", matchesHandler.Handle)
				r.Get("/discover", matchesHandler.Discover)
				r.Post("/discover/{id}/like", matchesHandler.Like)
				r.Post("/discover/{id}/pass", matchesHandler.Pass)

				r.Get("/conversations", messagesHandler.List)
				r.Delete("/conversations/active", messagesHandler.ClearActive)
				r.Get("/conversations/{id}/messages", messagesHandler.Thread)
				r.Post("/conversations/{id}/messages", messagesHandler.Send)
			})
		})
	})
}
