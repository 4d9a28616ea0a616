package response

import (
	"time"

	"github.com/blockfall/blockfall/internal/model"
	"github.com/blockfall/blockfall/internal/services/session"
)

// ActivePiece describes the falling piece in API responses
type ActivePiece struct {
	Kind  string  `json:"kind"`
	Shape [][]int `json:"shape"`
	X     int     `json:"x"`
	Y     int     `json:"y"`
}

// NextPiece describes the lookahead piece
type NextPiece struct {
	Kind  string  `json:"kind"`
	Shape [][]int `json:"shape"`
}

// Event represents a game event in API responses
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// EventsFromModel converts model events to response events
func EventsFromModel(events []model.Event) []Event {
	out := make([]Event, len(events))
	for i, evt := range events {
		out[i] = Event{Type: string(evt.Type), Payload: evt.Payload}
	}
	return out
}

// Session represents a game session in API responses.
// Board holds the settled cells only; the active piece is reported
// separately so clients can render it over the board.
type Session struct {
	ID          string      `json:"id"`
	Board       [][]int     `json:"board"`
	HiddenRows  int         `json:"hidden_rows"`
	ActivePiece ActivePiece `json:"active_piece"`
	NextPiece   NextPiece   `json:"next_piece"`
	Score       int         `json:"score"`
	GameOver    bool        `json:"game_over"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Events      []Event     `json:"events,omitempty"`
}

// SessionFromResult converts a controller result to a response Session.
// The top hiddenRows board rows are spawn buffer; clients should not
// draw them.
func SessionFromResult(r *session.Result, hiddenRows int) Session {
	snap := r.Snapshot
	return Session{
		ID:         string(snap.ID),
		Board:      snap.Background,
		HiddenRows: hiddenRows,
		ActivePiece: ActivePiece{
			Kind:  string(snap.Kind),
			Shape: r.View.ActiveShape,
			X:     snap.Offset.X,
			Y:     snap.Offset.Y,
		},
		NextPiece: NextPiece{
			Kind:  string(snap.NextKind),
			Shape: r.View.NextShape,
		},
		Score:     snap.Score,
		GameOver:  snap.GameOver,
		CreatedAt: snap.CreatedAt,
		UpdatedAt: snap.UpdatedAt,
		Events:    EventsFromModel(r.Events),
	}
}

// SessionList is the response for listing sessions
type SessionList struct {
	Sessions []string `json:"sessions"`
}

// SessionListFromIDs converts session IDs to a SessionList
func SessionListFromIDs(ids []model.SessionID) SessionList {
	sessions := make([]string, len(ids))
	for i, id := range ids {
		sessions[i] = string(id)
	}
	return SessionList{Sessions: sessions}
}
