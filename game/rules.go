package game

import "time"

// Rules decides the side effects of a placement and when a session ends.
// The falling, collision and rotation mechanics are shared; only the rules
// differ between the balance and zone variants.
type Rules interface {
	// Name identifies the rule set.
	Name() string
	// AllowsSoftDrop reports whether the fast drop interval may be used.
	AllowsSoftDrop() bool
	// Zone returns the bands placements are classified against, or nil.
	Zone(s *Session) *Zone
	// Begin initializes the rule-specific session fields.
	Begin(s *Session)
	// Placed applies the consequences of a placement.
	Placed(frame *Frame, p Placement)
	// Evaluate runs the per-tick end-condition checks.
	Evaluate(frame *Frame)
}

// NewRules returns the rule set selected by the configuration.
func NewRules(cfg Config) Rules {
	if cfg.BalanceBand != nil {
		return &BalanceRules{
			Band:    *cfg.BalanceBand,
			Start:   cfg.StartingBalance,
			PerCell: cfg.BalancePerCell,
		}
	}
	return &ZoneRules{
		ExcessLine:        cfg.ExcessLine(),
		OverdraftLine:     cfg.OverdraftLine(),
		OverdraftRow:      cfg.OverdraftRow(),
		GracePeriodBlocks: cfg.GracePeriodBlocks,
		Warning:           cfg.warningDuration(),
	}
}

// BalanceRules ends the game the moment the balance leaves Band. Rows are
// never cleared.
type BalanceRules struct {
	Band    Band
	Start   float64
	PerCell float64
}

func (r *BalanceRules) Name() string { return "balance" }

func (r *BalanceRules) AllowsSoftDrop() bool { return false }

func (r *BalanceRules) Zone(*Session) *Zone { return nil }

func (r *BalanceRules) Begin(s *Session) {
	s.Balance = r.Start
}

func (r *BalanceRules) Placed(frame *Frame, p Placement) {
	s := frame.Session
	s.BlocksPlaced++

	delta := float64(p.CellCount) * r.PerCell
	switch p.Kind {
	case Inflow:
		s.Balance += delta
	case Outflow:
		s.Balance -= delta
	}
	s.Balance = min(max(s.Balance, 0), 100)

	if !r.Band.Contains(s.Balance) {
		s.end(CauseBalanceOutOfRange, frame.Events)
	}
}

// Evaluate is a no-op: the balance only changes on placement.
func (r *BalanceRules) Evaluate(*Frame) {}

// ZoneRules keeps the top of the stack between the excess and overdraft
// lines. Leaving the band arms a warning deadline, but only once a solid
// layer has existed above the overdraft row.
type ZoneRules struct {
	ExcessLine        int
	OverdraftLine     int
	OverdraftRow      int
	GracePeriodBlocks int
	Warning           time.Duration
}

func (r *ZoneRules) Name() string { return "zone" }

func (r *ZoneRules) AllowsSoftDrop() bool { return true }

func (r *ZoneRules) Zone(s *Session) *Zone {
	return &Zone{
		ExcessLine:        r.ExcessLine,
		OverdraftLine:     r.OverdraftLine,
		GracePeriodBlocks: r.GracePeriodBlocks,
		BlocksPlaced:      s.BlocksPlaced,
	}
}

func (r *ZoneRules) Begin(s *Session) {
	s.HasSafeLayer = false
	s.WarningDeadline = nil
}

func (r *ZoneRules) Placed(frame *Frame, p Placement) {
	s := frame.Session
	s.BlocksPlaced++

	// Solid rows are cleared right away, so the layer is observed here.
	r.observeSafeLayer(s)

	if n := s.Board.ClearSolidRows(); n > 0 {
		s.RowsCleared += n
		frame.Events.Emit(Event{Type: EventRowsCleared, At: s.Elapsed, Rows: n})
	}
}

func (r *ZoneRules) Evaluate(frame *Frame) {
	s := frame.Session
	r.observeSafeLayer(s)
	if !s.HasSafeLayer {
		return
	}

	top, ok := s.Board.TopOccupiedRowPixelY()
	if !ok {
		return
	}

	now := s.Now()
	switch {
	case r.InBand(top):
		if s.WarningDeadline != nil {
			s.WarningDeadline = nil
			frame.Events.Emit(Event{Type: EventWarningCleared, At: s.Elapsed})
		}
	case s.WarningDeadline == nil:
		deadline := now.Add(r.Warning)
		s.WarningDeadline = &deadline
		frame.Events.Emit(Event{Type: EventWarningArmed, At: s.Elapsed, Deadline: deadline})
	case !now.Before(*s.WarningDeadline):
		s.end(CauseTimeLimitExceeded, frame.Events)
	}
}

// InBand reports whether a stack top at pixel offset y is inside the safe band.
func (r *ZoneRules) InBand(y int) bool {
	return y >= r.ExcessLine && y <= r.OverdraftLine
}

// observeSafeLayer latches HasSafeLayer once a solid row exists above the
// overdraft row.
func (r *ZoneRules) observeSafeLayer(s *Session) {
	if !s.HasSafeLayer && s.Board.HasSolidRowAbove(r.OverdraftRow) {
		s.HasSafeLayer = true
	}
}
