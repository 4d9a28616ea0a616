package engine

import (
	"github.com/blockfall/blockfall/internal/model"
)

// Generator supplies pieces with one-piece lookahead
type Generator interface {
	// Peek returns the upcoming piece without advancing the sequence
	Peek() model.Piece
	// Take returns the piece to spawn now and advances the sequence
	Take() model.Piece
}

// MoveSource distinguishes automatic descent from player input, which
// matters only for the manual-down score bonus
type MoveSource int

const (
	SourceAuto MoveSource = iota
	SourceUser
)

// Observer receives engine events synchronously, immediately after the
// mutation that produced them
type Observer func(model.Event)

// Engine is the falling-block game state: the background grid, the active
// piece's placement, the rotation cursor, the score and the game-over
// flag. All operations run to completion synchronously; the engine is the
// sole writer of its state and must be driven from a single goroutine.
//
// Rejected moves and rotations are ordinary outcomes signaled by a false
// return, never errors.
type Engine struct {
	cfg        Config
	background model.Grid
	offset     model.Offset
	rotator    Rotator
	generator  Generator

	kind     model.PieceKind
	spawned  bool
	score    int
	gameOver bool

	observers []Observer
}

// New creates an engine with an empty background. No piece is active until
// the first Spawn or NewGame call.
func New(cfg Config, gen Generator) *Engine {
	return &Engine{
		cfg:        cfg,
		background: model.NewGrid(cfg.Rows, cfg.Cols),
		generator:  gen,
	}
}

// Restore rebuilds an engine from a snapshot. The piece must be a fresh
// catalog copy of the snapshot's active kind, and the generator's lookahead
// must match the snapshot's next kind.
func Restore(cfg Config, snap *model.Snapshot, piece model.Piece, gen Generator) *Engine {
	e := New(cfg, gen)
	e.background = snap.Background.Clone()
	e.rotator.SetPiece(piece)
	e.rotator.Commit(snap.RotationIndex % len(piece.Rotations))
	e.offset = snap.Offset
	e.kind = piece.Kind
	e.spawned = true
	e.score = snap.Score
	e.gameOver = snap.GameOver
	return e
}

// Subscribe registers an observer for engine events. Observers run on the
// driver's goroutine, after the mutation commits and before the next
// operation can proceed.
func (e *Engine) Subscribe(fn Observer) {
	e.observers = append(e.observers, fn)
}

func (e *Engine) publish(evt model.Event) {
	for _, fn := range e.observers {
		fn(evt)
	}
}

// Config returns the engine's configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// BoardMatrix returns a copy of the background grid
func (e *Engine) BoardMatrix() model.Grid {
	return e.background.Clone()
}

// Score returns the current score
func (e *Engine) Score() int {
	return e.score
}

// GameOver returns true once a spawned piece collided immediately
func (e *Engine) GameOver() bool {
	return e.gameOver
}

// ViewData returns the active piece's shape and offset plus the upcoming
// piece's first rotation state for previews
func (e *Engine) ViewData() model.ViewData {
	if !e.spawned {
		return model.ViewData{}
	}
	next := e.generator.Peek()
	return model.ViewData{
		ActiveShape: e.rotator.CurrentShape().Clone(),
		Offset:      e.offset,
		NextShape:   next.Rotations[0].Clone(),
	}
}

// MoveLeft shifts the active piece one column left if the target placement
// is free
func (e *Engine) MoveLeft() bool {
	return e.move(-1, 0)
}

// MoveRight shifts the active piece one column right if the target
// placement is free
func (e *Engine) MoveRight() bool {
	return e.move(1, 0)
}

// MoveDown shifts the active piece one row down if the target placement is
// free. A successful player-initiated move additionally awards the
// manual-down bonus.
func (e *Engine) MoveDown(source MoveSource) bool {
	if !e.move(0, 1) {
		return false
	}
	if source == SourceUser {
		e.score += e.cfg.ManualDownBonus
		e.publish(model.Event{
			Type:    model.EventScoreChanged,
			Payload: model.ScoreChangedPayload{Score: e.score},
		})
	}
	return true
}

func (e *Engine) move(dx, dy int) bool {
	candidate := e.offset.Translate(dx, dy)
	if Intersects(e.background, e.rotator.CurrentShape(), candidate) {
		return false
	}
	e.offset = candidate
	e.publish(model.Event{
		Type:    model.EventPieceMoved,
		Payload: model.PieceMovedPayload{View: e.ViewData()},
	})
	return true
}

// Rotate advances the active piece to its next rotation state if that
// state fits at the current offset. There is no offset search: a rotation
// that does not fit in place is rejected.
func (e *Engine) Rotate() bool {
	candidate, shape := e.rotator.PeekNext()
	if Intersects(e.background, shape, e.offset) {
		return false
	}
	e.rotator.Commit(candidate)
	e.publish(model.Event{
		Type:    model.EventPieceMoved,
		Payload: model.PieceMovedPayload{View: e.ViewData()},
	})
	return true
}

// Spawn replaces the active piece with the generator's current piece at
// the spawn coordinate. If the placement collides immediately the game is
// over; this is the only transition into the game-over state. Returns the
// game-over flag.
func (e *Engine) Spawn() bool {
	piece := e.generator.Take()
	e.rotator.SetPiece(piece)
	e.kind = piece.Kind
	e.spawned = true
	e.offset = model.Offset{X: e.cfg.SpawnX, Y: e.cfg.SpawnY}

	if Intersects(e.background, e.rotator.CurrentShape(), e.offset) {
		e.gameOver = true
		e.publish(model.Event{
			Type:    model.EventGameOver,
			Payload: model.GameOverPayload{Score: e.score},
		})
		return true
	}

	e.publish(model.Event{
		Type:    model.EventPieceSpawned,
		Payload: model.PieceMovedPayload{View: e.ViewData()},
	})
	return false
}

// MergeToBackground commits the active piece's cells into the background
// grid. Row clearing and the next spawn are separate steps sequenced by
// the driver.
func (e *Engine) MergeToBackground() {
	e.background = Merge(e.background, e.rotator.CurrentShape(), e.offset)
	e.publish(model.Event{
		Type:    model.EventGridChanged,
		Payload: model.GridChangedPayload{Background: e.BoardMatrix()},
	})
}

// ClearRows removes full rows, applies the line-clear bonus to the score
// and republishes the background
func (e *Engine) ClearRows() model.ClearResult {
	result := ClearFullRows(e.background, e.cfg.ScorePerLine)
	e.background = result.Background

	if result.LinesRemoved > 0 {
		e.score += result.ScoreBonus
		e.publish(model.Event{
			Type: model.EventRowsCleared,
			Payload: model.RowsClearedPayload{
				LinesRemoved: result.LinesRemoved,
				ScoreBonus:   result.ScoreBonus,
			},
		})
		e.publish(model.Event{
			Type:    model.EventScoreChanged,
			Payload: model.ScoreChangedPayload{Score: e.score},
		})
	}

	e.publish(model.Event{
		Type:    model.EventGridChanged,
		Payload: model.GridChangedPayload{Background: e.BoardMatrix()},
	})
	return result
}

// NewGame resets the background and score, clears the game-over flag and
// spawns the first piece
func (e *Engine) NewGame() {
	e.background = model.NewGrid(e.cfg.Rows, e.cfg.Cols)
	e.score = 0
	e.gameOver = false
	e.publish(model.Event{Type: model.EventNewGame})
	e.Spawn()
}

// Snapshot captures the full engine state for persistence
func (e *Engine) Snapshot() model.Snapshot {
	return model.Snapshot{
		Background:    e.background.Clone(),
		Kind:          e.kind,
		RotationIndex: e.rotator.Index(),
		Offset:        e.offset,
		NextKind:      e.generator.Peek().Kind,
		Score:         e.score,
		GameOver:      e.gameOver,
	}
}
