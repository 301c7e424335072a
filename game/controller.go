// Package game implements the cashflow falling-block game: inflow and
// outflow blocks drop into a narrow well and either shift a balance metric
// or build a stack that must stay between the excess and overdraft lines.
//
// The package holds no presentation code. A frontend polls Snapshot each
// frame and forwards input to the Controller.
package game

import (
	"math/rand/v2"
	"time"
)

// Option configures a Controller.
type Option func(*Controller)

// WithRand sets the source used for shape, kind and column selection.
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) {
		c.rng = rng
	}
}

// WithClock sets the function used to stamp session start times.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// Controller owns one board, the falling piece and the session state, and
// drives them through Idle, Running and Ended.
//
// A Controller is not safe for concurrent use. Ticks and input must be
// delivered from a single goroutine.
type Controller struct {
	cfg   Config
	rules Rules
	rng   *rand.Rand
	now   func() time.Time

	spawner   *Spawner
	scheduler *Scheduler
	session   *Session
}

// NewController validates cfg and returns an idle controller.
func NewController(cfg Config, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:   cfg,
		rules: NewRules(cfg),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		c.rng = rand.New(rand.NewPCG(seed, seed))
	}

	c.spawner = NewSpawner(c.rng)

	c.scheduler = NewScheduler()
	c.scheduler.Register(&ClockSystem{})
	c.scheduler.Register(&GravitySystem{
		Rules:      c.rules,
		NormalDrop: cfg.normalDrop(),
		FastDrop:   cfg.fastDrop(),
		Spawner:    c.spawner,
	})
	c.scheduler.Register(&RulesSystem{Rules: c.rules})

	c.session = c.newSession()
	return c, nil
}

func (c *Controller) newSession() *Session {
	return &Session{
		Board: NewBoard(c.cfg.BoardCols, c.cfg.BoardRows, c.cfg.CellSize),
		State: Idle,
	}
}

// Start begins a new session, discarding any previous one, and spawns the
// first piece.
func (c *Controller) Start() {
	c.session = c.newSession()
	c.session.State = Running
	c.session.StartedAt = c.now()
	c.rules.Begin(c.session)

	c.scheduler.Direct(c.session, c.spawner.Spawn)
}

// Reset discards the session and returns to Idle.
func (c *Controller) Reset() {
	c.session = c.newSession()
}

// Tick advances the game by delta. Ticks outside Running are ignored.
func (c *Controller) Tick(delta time.Duration) {
	if c.session.State != Running {
		return
	}
	c.scheduler.Once(delta, c.session)
}

// TickMillis is Tick with a delta in milliseconds, as delivered by frame callbacks.
func (c *Controller) TickMillis(ms float64) {
	c.Tick(time.Duration(ms * float64(time.Millisecond)))
}

func (c *Controller) active() *Piece {
	if c.session.State != Running {
		return nil
	}
	return c.session.Piece
}

// Move shifts the active piece dx columns and reports whether it moved.
func (c *Controller) Move(dx int) bool {
	piece := c.active()
	if piece == nil {
		return false
	}
	return piece.Move(c.session.Board, dx)
}

// Rotate turns the active piece clockwise and reports whether it turned.
func (c *Controller) Rotate() bool {
	piece := c.active()
	if piece == nil {
		return false
	}
	return piece.Rotate(c.session.Board)
}

// SetSoftDrop records whether the soft drop input is held. The fast
// interval is only used when the rules allow it.
func (c *Controller) SetSoftDrop(held bool) {
	if c.session.State != Running {
		return
	}
	c.session.SoftDrop = held
}

// HardDrop moves the active piece straight down to where it would land and
// returns the number of rows travelled. The piece is placed by the next drop
// interval like any other landed piece.
func (c *Controller) HardDrop() int {
	piece := c.active()
	if piece == nil {
		return 0
	}

	rows := 0
	for piece.Fall(c.session.Board) {
		rows++
	}
	return rows
}

// Subscribe registers a listener for events raised by ticks and Start.
func (c *Controller) Subscribe(listener func(Event)) {
	c.scheduler.Subscribe(listener)
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.session.State
}

// Session exposes the live session. Callers must treat it as read-only.
func (c *Controller) Session() *Session {
	return c.session
}

// Config returns the configuration the controller was built with.
func (c *Controller) Config() Config {
	return c.cfg
}

// Rules returns the active rule set.
func (c *Controller) Rules() Rules {
	return c.rules
}

// Stats returns per-system timing for the tick pipeline.
func (c *Controller) Stats() *SchedulerStats {
	return c.scheduler.GetStats()
}
