package debugui

import (
	"testing"
	"time"

	"github.com/plus3/cashflow/game"
	"github.com/stretchr/testify/assert"
)

func TestEventLogWrapsAround(t *testing.T) {
	log := NewEventLog(3)
	assert.Empty(t, log.Lines())

	for i := 1; i <= 5; i++ {
		log.Record(game.Event{Type: game.EventRowsCleared, At: time.Duration(i) * time.Second, Rows: i})
	}

	assert.Equal(t, []string{
		"[3s] cleared 3 rows",
		"[4s] cleared 4 rows",
		"[5s] cleared 5 rows",
	}, log.Lines())
}

func TestFormatEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   game.Event
		want string
	}{
		{
			name: "spawned",
			ev:   game.Event{Type: game.EventSpawned, Piece: &game.Piece{Shape: game.Shapes[6], Kind: game.Outflow, Col: 4}},
			want: "[0s] spawned Outflow 5-cell piece at col 4",
		},
		{
			name: "placed",
			ev:   game.Event{Type: game.EventPlaced, At: 1500 * time.Millisecond, Placement: game.Placement{Kind: game.Inflow, CellCount: 4}},
			want: "[1.5s] placed Inflow, 4 cells",
		},
		{
			name: "ended",
			ev:   game.Event{Type: game.EventEnded, At: 20 * time.Second, Cause: game.CauseTimeLimitExceeded},
			want: "[20s] ended: time limit exceeded",
		},
		{
			name: "warning armed",
			ev:   game.Event{Type: game.EventWarningArmed, At: 2*time.Second + 345678*time.Microsecond},
			want: "[2.345s] WarningArmed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatEvent(tt.ev))
		})
	}
}

func TestGridLines(t *testing.T) {
	grid := [][]game.Kind{
		{0, game.Inflow, 0},
		{game.Outflow, game.Outflow, game.Inflow},
	}
	assert.Equal(t, []string{".+.", "--+"}, gridLines(grid))
}
