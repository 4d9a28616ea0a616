package model

// EventType identifies the type of event
type EventType string

const (
	EventNewGame      EventType = "new_game"
	EventPieceMoved   EventType = "piece_moved"
	EventPieceSpawned EventType = "piece_spawned"
	EventGridChanged  EventType = "grid_changed"
	EventRowsCleared  EventType = "rows_cleared"
	EventScoreChanged EventType = "score_changed"
	EventGameOver     EventType = "game_over"
)

// Event is published synchronously after each committed engine mutation
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload,omitempty"`
}

// GridChangedPayload carries the new background after a merge or row clear
type GridChangedPayload struct {
	Background Grid `json:"background"`
}

// PieceMovedPayload carries the active piece view after a move, rotate or spawn
type PieceMovedPayload struct {
	View ViewData `json:"view"`
}

// RowsClearedPayload carries the outcome of a row-clear pass
type RowsClearedPayload struct {
	LinesRemoved int `json:"lines_removed"`
	ScoreBonus   int `json:"score_bonus"`
}

// ScoreChangedPayload carries the new score total
type ScoreChangedPayload struct {
	Score int `json:"score"`
}

// GameOverPayload carries the final score when the spawn cell is blocked
type GameOverPayload struct {
	Score int `json:"score"`
}
