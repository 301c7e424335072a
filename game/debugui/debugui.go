// Package debugui provides Dear ImGui inspector windows for a running
// game.Controller: session state, scheduler timing and a rolling event log.
//
// The package only issues ImGui calls. The host owns the ImGui context and
// backend, and calls Overlay.Render between its backend's BeginFrame and
// EndFrame.
package debugui

import (
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/cashflow/game"
)

// InputState reports whether Dear ImGui is consuming mouse or keyboard input.
// Frontends should skip game input while WantCaptureKeyboard is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// CaptureState reads the current capture flags from the ImGui IO.
func CaptureState() InputState {
	io := imgui.CurrentIO()
	return InputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
}

// Overlay groups every inspector window for one controller.
type Overlay struct {
	controller  *game.Controller
	session     *SessionInspector
	performance *PerformanceStats
	log         *EventLog
	timer       *FrameTimer
}

// NewOverlay builds the inspector windows and subscribes the event log to c.
func NewOverlay(c *game.Controller) *Overlay {
	log := NewEventLog(64)
	c.Subscribe(log.Record)

	return &Overlay{
		controller:  c,
		session:     NewSessionInspector(),
		performance: NewPerformanceStats(120),
		log:         log,
		timer:       NewFrameTimer(),
	}
}

// Render draws all windows for the current frame.
func (o *Overlay) Render() {
	dt := o.timer.GetDeltaTime()

	o.session.Render(o.controller)
	o.performance.Render(o.controller.Stats(), dt)
	o.log.Render()
}

// FrameTimer measures wall time between successive frames.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
