package session

import (
	"context"
	"log/slog"

	"github.com/blockfall/blockfall/internal/dependencies/clock"
	"github.com/blockfall/blockfall/internal/dependencies/random"
	"github.com/blockfall/blockfall/internal/engine"
	"github.com/blockfall/blockfall/internal/model"
	"github.com/blockfall/blockfall/internal/services/catalog"
	"github.com/blockfall/blockfall/internal/services/generator"
	"github.com/blockfall/blockfall/internal/storage"
)

const sessionIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Action is a driver input applied to a session
type Action string

const (
	// ActionLeft, ActionRight and ActionRotate move the active piece
	ActionLeft   Action = "left"
	ActionRight  Action = "right"
	ActionRotate Action = "rotate"

	// ActionDown is a player-initiated descent step; it earns the
	// manual-down bonus when the piece moves
	ActionDown Action = "down"

	// ActionTick is the automatic descent step from the gravity timer
	ActionTick Action = "tick"

	// ActionRestart starts a new game in the same session
	ActionRestart Action = "restart"
)

// ParseAction validates a raw action string
func ParseAction(raw string) (Action, error) {
	switch Action(raw) {
	case ActionLeft, ActionRight, ActionRotate, ActionDown, ActionTick, ActionRestart:
		return Action(raw), nil
	default:
		return "", model.ErrInvalidAction
	}
}

// Result describes a session after an operation
type Result struct {
	Snapshot *model.Snapshot
	View     model.ViewData
	Events   []model.Event
}

// Controller manages game sessions: it rebuilds the engine from a stored
// snapshot, applies one driver input at a time and persists the outcome.
// The engine itself is single-threaded; concurrent inputs to the same
// session are serialized by the caller.
type Controller struct {
	storage   storage.Storage
	catalog   *catalog.Service
	engineCfg engine.Config
	clock     clock.Clock
	random    random.Random
	logger    *slog.Logger
}

// NewController creates a new session controller
func NewController(
	store storage.Storage,
	cat *catalog.Service,
	engineCfg engine.Config,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:   store,
		catalog:   cat,
		engineCfg: engineCfg,
		clock:     clk,
		random:    rnd,
		logger:    logger,
	}
}

// Config returns the engine configuration sessions run with
func (c *Controller) Config() engine.Config {
	return c.engineCfg
}

// Create starts a new session with a fresh board and the first piece
// spawned
func (c *Controller) Create(ctx context.Context) (*Result, error) {
	id := model.SessionID(c.random.String(12, sessionIDAlphabet))

	eng := engine.New(c.engineCfg, generator.New(c.catalog, c.random))
	events := collectEvents(eng)
	eng.Spawn()

	now := c.clock.Now()
	snap := eng.Snapshot()
	snap.ID = id
	snap.CreatedAt = now
	snap.UpdatedAt = now

	if err := c.storage.SaveSession(ctx, &snap); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("session created",
		slog.String("session_id", string(id)),
		slog.String("first_piece", string(snap.Kind)),
	)

	return &Result{Snapshot: &snap, View: eng.ViewData(), Events: *events}, nil
}

// Get retrieves a session's current state
func (c *Controller) Get(ctx context.Context, id model.SessionID) (*Result, error) {
	snap, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	eng, err := c.restore(snap)
	if err != nil {
		return nil, err
	}

	return &Result{Snapshot: snap, View: eng.ViewData()}, nil
}

// Apply performs one driver input on a session and persists the result.
// Piece inputs on a finished game return ErrGameOver; only a restart
// leaves the game-over state.
func (c *Controller) Apply(ctx context.Context, id model.SessionID, action Action) (*Result, error) {
	snap, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if snap.GameOver && action != ActionRestart {
		return nil, model.ErrGameOver
	}

	eng, err := c.restore(snap)
	if err != nil {
		return nil, err
	}
	events := collectEvents(eng)

	switch action {
	case ActionLeft:
		eng.MoveLeft()
	case ActionRight:
		eng.MoveRight()
	case ActionRotate:
		eng.Rotate()
	case ActionDown:
		c.stepDown(eng, engine.SourceUser)
	case ActionTick:
		c.stepDown(eng, engine.SourceAuto)
	case ActionRestart:
		eng.NewGame()
	default:
		return nil, model.ErrInvalidAction
	}

	updated := eng.Snapshot()
	updated.ID = snap.ID
	updated.CreatedAt = snap.CreatedAt
	updated.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, &updated); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	if updated.GameOver && !snap.GameOver {
		c.logger.Info("game over",
			slog.String("session_id", string(id)),
			slog.Int("score", updated.Score),
		)
	}

	return &Result{Snapshot: &updated, View: eng.ViewData(), Events: *events}, nil
}

// Delete removes a session
func (c *Controller) Delete(ctx context.Context, id model.SessionID) error {
	if err := c.storage.DeleteSession(ctx, id); err != nil {
		return err
	}
	c.logger.Info("session deleted", slog.String("session_id", string(id)))
	return nil
}

// List returns the ids of all stored sessions
func (c *Controller) List(ctx context.Context) ([]model.SessionID, error) {
	return c.storage.ListSessions(ctx)
}

// stepDown runs one descent step: move the piece down, and when it cannot
// move, lock it into the background, clear rows and spawn the next piece.
// This is the canonical driver sequence for both gravity ticks and the
// player's down key.
func (c *Controller) stepDown(eng *engine.Engine, source engine.MoveSource) {
	if eng.MoveDown(source) {
		return
	}
	eng.MergeToBackground()
	eng.ClearRows()
	eng.Spawn()
}

// restore rebuilds an engine from a stored snapshot
func (c *Controller) restore(snap *model.Snapshot) (*engine.Engine, error) {
	piece, err := c.catalog.Piece(snap.Kind)
	if err != nil {
		return nil, err
	}
	gen, err := generator.Restore(c.catalog, c.random, snap.NextKind)
	if err != nil {
		return nil, err
	}
	return engine.Restore(c.engineCfg, snap, piece, gen), nil
}

// collectEvents subscribes a collector to the engine and returns the slice
// the events accumulate in
func collectEvents(eng *engine.Engine) *[]model.Event {
	events := &[]model.Event{}
	eng.Subscribe(func(evt model.Event) {
		*events = append(*events, evt)
	})
	return events
}

// Interface for dependency injection
type ControllerInterface interface {
	Config() engine.Config
	Create(ctx context.Context) (*Result, error)
	Get(ctx context.Context, id model.SessionID) (*Result, error)
	Apply(ctx context.Context, id model.SessionID, action Action) (*Result, error)
	Delete(ctx context.Context, id model.SessionID) error
	List(ctx context.Context) ([]model.SessionID, error)
}

var _ ControllerInterface = (*Controller)(nil)
