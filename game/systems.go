package game

import (
	"math/rand/v2"
	"time"
)

// ClockSystem advances the session clock by the frame delta.
type ClockSystem struct{}

func (s *ClockSystem) Execute(frame *Frame) {
	frame.Session.Elapsed += frame.DeltaTime
}

// GravitySystem drops the active piece one row per drop interval, and when
// the piece has landed places it, applies the rules and spawns the next one.
// At most one placement happens per interval.
type GravitySystem struct {
	Rules      Rules
	NormalDrop time.Duration
	FastDrop   time.Duration
	Spawner    *Spawner
}

func (s *GravitySystem) Execute(frame *Frame) {
	session := frame.Session
	if session.State != Running {
		return
	}

	session.dropTimer += frame.DeltaTime
	if session.dropTimer < s.interval(session) {
		return
	}
	session.dropTimer = 0

	if session.Piece == nil {
		s.Spawner.Spawn(frame)
		return
	}

	if !session.Board.IsLanded(session.Piece) {
		session.Piece.Fall(session.Board)
		return
	}

	s.lock(frame)
}

func (s *GravitySystem) interval(session *Session) time.Duration {
	if session.SoftDrop && s.Rules.AllowsSoftDrop() {
		return s.FastDrop
	}
	return s.NormalDrop
}

func (s *GravitySystem) lock(frame *Frame) {
	session := frame.Session
	piece := session.Piece

	placement := session.Board.Place(piece, s.Rules.Zone(session))
	session.Piece = nil
	session.LastPlacement = &placement
	frame.Events.Emit(Event{Type: EventPlaced, At: session.Elapsed, Piece: piece, Placement: placement})

	s.Rules.Placed(frame, placement)
	if session.State != Running {
		return
	}

	s.Spawner.Spawn(frame)
}

// RulesSystem runs the per-tick end-condition checks.
type RulesSystem struct {
	Rules Rules
}

func (s *RulesSystem) Execute(frame *Frame) {
	if frame.Session.State != Running {
		return
	}
	s.Rules.Evaluate(frame)
}

// Spawner creates new pieces from the shape catalog.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// Next picks a shape and kind uniformly and a column uniformly among the
// columns where the shape fits. It returns false if no column fits.
func (sp *Spawner) Next(cols int) (*Piece, bool) {
	shape := Shapes[sp.rng.IntN(len(Shapes))]

	kind := Inflow
	if sp.rng.IntN(2) == 1 {
		kind = Outflow
	}

	positions := cols - shape.Cols() + 1
	if positions <= 0 {
		return nil, false
	}

	return &Piece{
		Shape: shape,
		Kind:  kind,
		Col:   sp.rng.IntN(positions),
		Row:   0,
	}, true
}

// Spawn installs a fresh piece as the session's active piece. A piece that
// collides where it appears ends the session.
func (sp *Spawner) Spawn(frame *Frame) {
	session := frame.Session

	piece, ok := sp.Next(session.Board.Cols())
	if !ok {
		session.end(CauseStackTooHigh, frame.Events)
		return
	}

	session.Piece = piece
	if piece.Collides(session.Board, 0, 0) {
		session.end(CauseStackTooHigh, frame.Events)
		return
	}

	frame.Events.Emit(Event{Type: EventSpawned, At: session.Elapsed, Piece: piece})
}
