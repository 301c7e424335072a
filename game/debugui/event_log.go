package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/cashflow/game"
)

// EventLog keeps the most recent controller events as display lines.
type EventLog struct {
	lines    []string
	capacity int
	next     int
	total    int
}

func NewEventLog(capacity int) *EventLog {
	return &EventLog{
		lines:    make([]string, capacity),
		capacity: capacity,
	}
}

// Record formats ev and appends it, overwriting the oldest entry when full.
// It has the signature of a Controller.Subscribe listener.
func (l *EventLog) Record(ev game.Event) {
	l.lines[l.next] = FormatEvent(ev)
	l.next = (l.next + 1) % l.capacity
	l.total++
}

// Lines returns the retained entries, oldest first.
func (l *EventLog) Lines() []string {
	n := min(l.total, l.capacity)
	out := make([]string, 0, n)
	start := (l.next - n + l.capacity) % l.capacity
	for i := range n {
		out = append(out, l.lines[(start+i)%l.capacity])
	}
	return out
}

func (l *EventLog) Render() {
	if !imgui.BeginV("Events", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Total: %d", l.total))
	imgui.Separator()

	lines := l.Lines()
	for i := len(lines) - 1; i >= 0; i-- {
		imgui.Text(lines[i])
	}

	imgui.End()
}

// FormatEvent renders ev as a single log line prefixed with its session time.
func FormatEvent(ev game.Event) string {
	at := ev.At.Truncate(time.Millisecond)

	switch ev.Type {
	case game.EventSpawned:
		return fmt.Sprintf("[%s] spawned %s %d-cell piece at col %d", at, ev.Piece.Kind, ev.Piece.Shape.CellCount(), ev.Piece.Col)
	case game.EventPlaced:
		return fmt.Sprintf("[%s] placed %s, %d cells", at, ev.Placement.Kind, ev.Placement.CellCount)
	case game.EventRowsCleared:
		return fmt.Sprintf("[%s] cleared %d rows", at, ev.Rows)
	case game.EventEnded:
		return fmt.Sprintf("[%s] ended: %s", at, ev.Cause)
	default:
		return fmt.Sprintf("[%s] %s", at, ev.Type)
	}
}
