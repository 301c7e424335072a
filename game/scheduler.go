package game

import (
	"reflect"
	"time"
)

// System is one stage of the tick pipeline. Systems run in registration
// order and may keep their own state between frames.
type System interface {
	Execute(frame *Frame)
}

// Frame is the per-tick context handed to every system.
type Frame struct {
	DeltaTime time.Duration
	Session   *Session
	Events    *Events
}

func newFrame(dt time.Duration, session *Session, events *Events) *Frame {
	return &Frame{
		DeltaTime: dt,
		Session:   session,
		Events:    events,
	}
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs the registered systems once per tick and flushes the
// events they raised.
type Scheduler struct {
	systems     []System
	systemStats []*systemStatsInternal
	events      *Events
	listeners   []func(Event)
	frames      int64
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		systems: make([]System, 0),
		events:  newEvents(),
	}
}

// Register appends a system to the pipeline.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Subscribe adds a listener that receives every event after each frame.
func (s *Scheduler) Subscribe(listener func(Event)) {
	s.listeners = append(s.listeners, listener)
}

// Once executes all registered systems with the given delta, then delivers
// the queued events.
func (s *Scheduler) Once(dt time.Duration, session *Session) {
	frame := newFrame(dt, session, s.events)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}
	s.frames++

	s.events.Flush(s.listeners)
}

// Direct runs fn against a frame outside the tick pipeline, for work such as
// the opening spawn, and delivers whatever events it raised.
func (s *Scheduler) Direct(session *Session, fn func(frame *Frame)) {
	fn(newFrame(0, session, s.events))
	s.events.Flush(s.listeners)
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
