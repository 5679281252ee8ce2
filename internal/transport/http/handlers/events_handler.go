package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/ivankudzin/heartlink/internal/services/events"
)

type EventsHandler struct {
	bus    *events.Bus
	buffer int
	logger *zap.Logger
}

func NewEventsHandler(bus *events.Bus, buffer int, logger *zap.Logger) *EventsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventsHandler{bus: bus, buffer: buffer, logger: logger}
}

// Stream relays store change events as server-sent events until the client
// goes away.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	if h.bus == nil {
		writeInternal(w, "EVENTS_UNAVAILABLE", "event stream is unavailable")
		return
	}
	rc := http.NewResponseController(w)
	// The server write timeout would otherwise end the stream.
	_ = rc.SetWriteDeadline(time.Time{})

	ch, cancel := h.bus.Subscribe(h.buffer)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		h.logger.Warn("event stream flush unsupported", zap.Error(err))
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case ev, open := <-ch:
			if !open {
				return
			}
			payload, err := json.Marshal(ev)
			if err != nil {
				h.logger.Warn("encode event failed", zap.String("kind", string(ev.Kind)), zap.Error(err))
				continue
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Kind, payload); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}
