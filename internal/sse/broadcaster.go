package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/blockfall/blockfall/internal/model"
)

// Broadcaster forwards engine events to a session's SSE clients as JSON
// payloads
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// BroadcastEvents sends each engine event to the session's clients. A
// session without a hub has no observers; events are simply dropped.
func (b *Broadcaster) BroadcastEvents(sessionID model.SessionID, events []model.Event) {
	if len(events) == 0 {
		return
	}

	hub := b.hubManager.GetHub(sessionID)
	if hub == nil {
		return
	}

	for _, evt := range events {
		data, err := json.Marshal(evt.Payload)
		if err != nil {
			b.logger.Error("sse failed to marshal event payload",
				slog.String("session", string(sessionID)),
				slog.String("event", string(evt.Type)),
				slog.Any("error", err))
			continue
		}
		hub.BroadcastEvent(string(evt.Type), string(data))
	}
}
