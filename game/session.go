package game

import "time"

// Session is the mutable state of one game from Start until the next Start
// or Reset. It is owned by a single Controller.
type Session struct {
	Board *Board
	Piece *Piece

	State State
	Cause EndCause

	StartedAt time.Time
	Elapsed   time.Duration

	Balance      float64
	BlocksPlaced int
	RowsCleared  int

	HasSafeLayer    bool
	WarningDeadline *time.Time

	LastPlacement *Placement
	SoftDrop      bool

	dropTimer time.Duration
}

// Now is the session clock: the start time advanced by every tick delta.
func (s *Session) Now() time.Time {
	return s.StartedAt.Add(s.Elapsed)
}

// WarningRemaining returns the time left before an armed warning expires.
func (s *Session) WarningRemaining() (time.Duration, bool) {
	if s.WarningDeadline == nil {
		return 0, false
	}
	return max(s.WarningDeadline.Sub(s.Now()), 0), true
}

func (s *Session) end(cause EndCause, events *Events) {
	if s.State == Ended {
		return
	}
	s.State = Ended
	s.Cause = cause
	s.SoftDrop = false
	events.Emit(Event{Type: EventEnded, At: s.Elapsed, Cause: cause})
}
