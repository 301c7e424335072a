package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plusPlacement is a five cell placement of the given kind.
func plusPlacement(kind Kind) Placement {
	return Placement{Kind: kind, CellCount: 5}
}

func TestBalanceRulesDelta(t *testing.T) {
	cfg := BalanceConfig()
	cfg.BalanceBand = &Band{Lo: 0, Hi: 100}
	rules := NewRules(cfg)

	s := newTestSession(cfg)
	rules.Begin(s)
	frame := newFrame(0, s, newEvents())
	assert.Equal(t, 50.0, s.Balance)

	rules.Placed(frame, plusPlacement(Inflow))
	assert.Equal(t, 60.0, s.Balance)

	rules.Placed(frame, plusPlacement(Outflow))
	assert.Equal(t, 50.0, s.Balance)
	assert.Equal(t, 2, s.BlocksPlaced)

	t.Run("clamped at 100", func(t *testing.T) {
		s.Balance = 95
		rules.Placed(frame, plusPlacement(Inflow))
		assert.Equal(t, 100.0, s.Balance)
	})

	t.Run("clamped at 0", func(t *testing.T) {
		s.Balance = 4
		rules.Placed(frame, plusPlacement(Outflow))
		assert.Equal(t, 0.0, s.Balance)
	})

	assert.Equal(t, Running, s.State)
}

func TestBalanceRulesEndsOutsideBand(t *testing.T) {
	t.Run("third outflow ends the game", func(t *testing.T) {
		cfg := BalanceConfig()
		cfg.BalanceBand = &Band{Lo: 25, Hi: 60}
		rules := NewRules(cfg)

		s := newTestSession(cfg)
		rules.Begin(s)
		events := newEvents()
		frame := newFrame(0, s, events)

		rules.Placed(frame, plusPlacement(Outflow))
		rules.Placed(frame, plusPlacement(Outflow))
		assert.Equal(t, 30.0, s.Balance)
		assert.Equal(t, Running, s.State)

		rules.Placed(frame, plusPlacement(Outflow))
		assert.Equal(t, 20.0, s.Balance)
		assert.Equal(t, Ended, s.State)
		assert.Equal(t, CauseBalanceOutOfRange, s.Cause)
		assert.Equal(t, 1, events.Len())
	})

	t.Run("default band", func(t *testing.T) {
		cfg := BalanceConfig()
		rules := NewRules(cfg)

		s := newTestSession(cfg)
		rules.Begin(s)
		frame := newFrame(0, s, newEvents())

		rules.Placed(frame, plusPlacement(Outflow))
		assert.Equal(t, 40.0, s.Balance)
		assert.Equal(t, Running, s.State, "40 is inside [40, 60]")

		rules.Placed(frame, plusPlacement(Outflow))
		assert.Equal(t, Ended, s.State)
	})

	t.Run("inflow above band", func(t *testing.T) {
		cfg := BalanceConfig()
		rules := NewRules(cfg)

		s := newTestSession(cfg)
		rules.Begin(s)
		frame := newFrame(0, s, newEvents())

		rules.Placed(frame, Placement{Kind: Inflow, CellCount: 6})
		assert.Equal(t, 62.0, s.Balance)
		assert.Equal(t, CauseBalanceOutOfRange, s.Cause)
	})
}

func TestBalanceRulesKeepSolidRows(t *testing.T) {
	cfg := BalanceConfig()
	rules := NewRules(cfg)
	s := newTestSession(cfg)
	rules.Begin(s)
	fillRow(s.Board, 19)

	rules.Placed(newFrame(0, s, newEvents()), Placement{Kind: Inflow, CellCount: 1})
	assert.True(t, s.Board.IsSolid(19))
	assert.False(t, rules.AllowsSoftDrop())
}

func zoneSetup(t *testing.T) (*ZoneRules, *Session, *Events) {
	t.Helper()
	cfg := DefaultConfig()
	rules, ok := NewRules(cfg).(*ZoneRules)
	require.True(t, ok)

	s := newTestSession(cfg)
	rules.Begin(s)
	return rules, s, newEvents()
}

// latchSafeLayer makes a solid row above the overdraft row visible to the
// rules, then clears it away again.
func latchSafeLayer(t *testing.T, rules *ZoneRules, s *Session, events *Events) {
	t.Helper()
	fillRow(s.Board, 10)
	rules.Evaluate(newFrame(0, s, events))
	require.True(t, s.HasSafeLayer)
	require.Equal(t, 1, s.Board.ClearSolidRows())
}

func TestZoneRulesNoSafeLayer(t *testing.T) {
	rules, s, events := zoneSetup(t)

	fill(s.Board, Inflow, Coord{Row: 19, Col: 0})
	fillRow(s.Board, 17)
	for range 100 {
		s.Elapsed += time.Second
		rules.Evaluate(newFrame(time.Second, s, events))
	}

	assert.False(t, s.HasSafeLayer, "row 17 is below the overdraft row")
	assert.Nil(t, s.WarningDeadline)
	assert.Equal(t, Running, s.State)
	assert.Equal(t, 0, events.Len())
}

func TestZoneRulesWarningClearsWhenBackInBand(t *testing.T) {
	rules, s, events := zoneSetup(t)
	latchSafeLayer(t, rules, s, events)

	fill(s.Board, Outflow, Coord{Row: 19, Col: 4})
	rules.Evaluate(newFrame(0, s, events))
	require.NotNil(t, s.WarningDeadline)
	assert.Equal(t, epoch.Add(20*time.Second), *s.WarningDeadline)

	s.Elapsed += 5 * time.Second
	rules.Evaluate(newFrame(5*time.Second, s, events))
	assert.Equal(t, epoch.Add(20*time.Second), *s.WarningDeadline, "deadline is not re-armed")

	fill(s.Board, Inflow, Coord{Row: 12, Col: 4})
	rules.Evaluate(newFrame(0, s, events))
	assert.Nil(t, s.WarningDeadline)

	s.Elapsed += 30 * time.Second
	rules.Evaluate(newFrame(30*time.Second, s, events))
	assert.Nil(t, s.WarningDeadline)
	assert.Equal(t, Running, s.State)

	types := make([]EventType, 0, events.Len())
	for _, ev := range events.queued {
		types = append(types, ev.Type)
	}
	assert.Equal(t, []EventType{EventWarningArmed, EventWarningCleared}, types)
}

func TestZoneRulesWarningExpires(t *testing.T) {
	rules, s, events := zoneSetup(t)
	latchSafeLayer(t, rules, s, events)

	fill(s.Board, Inflow, Coord{Row: 2, Col: 0})
	rules.Evaluate(newFrame(0, s, events))
	require.NotNil(t, s.WarningDeadline, "stack top above the excess line")

	s.Elapsed += 20*time.Second - time.Millisecond
	rules.Evaluate(newFrame(0, s, events))
	assert.Equal(t, Running, s.State)

	s.Elapsed += time.Millisecond
	rules.Evaluate(newFrame(0, s, events))
	assert.Equal(t, Ended, s.State)
	assert.Equal(t, CauseTimeLimitExceeded, s.Cause)
}

func TestZoneRulesEmptyBoard(t *testing.T) {
	rules, s, events := zoneSetup(t)
	latchSafeLayer(t, rules, s, events)

	s.Elapsed += time.Minute
	rules.Evaluate(newFrame(0, s, events))
	assert.Nil(t, s.WarningDeadline)
	assert.Equal(t, Running, s.State)
}

func TestZoneRulesPlacedLatchesBeforeClearing(t *testing.T) {
	rules, s, events := zoneSetup(t)
	fillRow(s.Board, 10, 9)

	placement := s.Board.Place(unitAt(Inflow, 10, 9), rules.Zone(s))
	rules.Placed(newFrame(0, s, events), placement)

	assert.True(t, s.HasSafeLayer)
	assert.Equal(t, 1, s.RowsCleared)
	assert.Equal(t, 1, s.BlocksPlaced)
	assert.Equal(t, 0, s.Board.FilledCells())
	require.Equal(t, 1, events.Len())
	assert.Equal(t, EventRowsCleared, events.queued[0].Type)
	assert.Equal(t, 1, events.queued[0].Rows)
}

func TestZoneRulesGracePeriod(t *testing.T) {
	rules, s, _ := zoneSetup(t)

	s.BlocksPlaced = rules.GracePeriodBlocks - 1
	placement := s.Board.Place(unitAt(Inflow, 19, 0), rules.Zone(s))
	assert.False(t, placement.TouchedBelowOverdraftLine)

	s.BlocksPlaced = rules.GracePeriodBlocks
	placement = s.Board.Place(unitAt(Inflow, 19, 1), rules.Zone(s))
	assert.True(t, placement.TouchedBelowOverdraftLine)
}
