package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ivankudzin/heartlink/internal/pkg/latency"
	"github.com/ivankudzin/heartlink/internal/repo/memory"
	"github.com/ivankudzin/heartlink/internal/services/directory"
	matchessvc "github.com/ivankudzin/heartlink/internal/services/matches"
	messagessvc "github.com/ivankudzin/heartlink/internal/services/messages"
	sessionsvc "github.com/ivankudzin/heartlink/internal/services/session"
)

var fixtureNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type stores struct {
	directory *directory.Service
	session   *sessionsvc.Service
	matches   *matchessvc.Service
	messages  *messagessvc.Service
}

type drawRand struct {
	draw float64
}

func (r drawRand) Float64() float64 { return r.draw }
func (r drawRand) IntN(n int) int   { return n - 1 }

func newStores(t *testing.T, draw float64) stores {
	t.Helper()

	dir := directory.NewService(memory.CurrentUser(fixtureNow), memory.Users(fixtureNow))
	return stores{
		directory: dir,
		session: sessionsvc.NewService(sessionsvc.Dependencies{
			Directory: dir,
			Delay:     latency.None,
		}, sessionsvc.Config{}),
		matches: matchessvc.NewService(matchessvc.Dependencies{
			Directory: dir,
			Seed:      memory.Matches,
			Delay:     latency.None,
			Rand:      drawRand{draw: draw},
			NewID:     func() string { return "match-new" },
		}, matchessvc.Config{}),
		messages: messagessvc.NewService(messagessvc.Dependencies{
			Directory:         dir,
			SeedConversations: memory.Conversations,
			SeedMessages:      memory.Messages,
			Delay:             latency.None,
			NewID:             func() string { return "msg-new" },
		}, messagessvc.Config{}),
	}
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		switch v := body.(type) {
		case string:
			reader = bytes.NewBufferString(v)
		default:
			raw, err := json.Marshal(v)
			if err != nil {
				t.Fatalf("marshal request body: %v", err)
			}
			reader = bytes.NewReader(raw)
		}
	}
	return httptest.NewRequest(method, target, reader)
}

// withURLParams attaches chi route params the way the router would.
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), target); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
}
