package game

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func unitAt(kind Kind, row, col int) *Piece {
	return &Piece{Shape: Shapes[0], Kind: kind, Row: row, Col: col}
}

func fill(b *Board, kind Kind, cells ...Coord) {
	for _, c := range cells {
		b.Place(unitAt(kind, c.Row, c.Col), nil)
	}
}

// fillRow occupies every column of row except the ones listed in skip.
func fillRow(b *Board, row int, skip ...int) {
	skipped := make(map[int]bool, len(skip))
	for _, col := range skip {
		skipped[col] = true
	}
	for col := range b.Cols() {
		if !skipped[col] {
			fill(b, Inflow, Coord{Row: row, Col: col})
		}
	}
}

func newTestController(t *testing.T, cfg Config) *Controller {
	t.Helper()
	c, err := NewController(cfg,
		WithRand(rand.New(rand.NewPCG(7, 11))),
		WithClock(func() time.Time { return epoch }),
	)
	require.NoError(t, err)
	return c
}

func newTestSession(cfg Config) *Session {
	return &Session{
		Board:     NewBoard(cfg.BoardCols, cfg.BoardRows, cfg.CellSize),
		State:     Running,
		StartedAt: epoch,
	}
}

func record(c *Controller) *[]Event {
	var events []Event
	c.Subscribe(func(ev Event) {
		events = append(events, ev)
	})
	return &events
}

func countEvents(events []Event, typ EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}
