package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/cashflow/game"
)

type Report struct {
	// Configuration
	Variant      string
	Sessions     int
	TickInterval time.Duration
	MaxElapsed   time.Duration

	// Results
	TotalTicks     int64
	TotalTime      time.Duration
	TickTime       Stats
	SessionLength  Stats
	Outcomes       map[string]int
	AvgBlocks      float64
	AvgRowsCleared float64
	Systems        []SystemTotal
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats

	totalBlocks  int
	totalCleared int
	systemIndex  map[string]int
}

// SystemTotal aggregates one system's timing across all sessions.
type SystemTotal struct {
	Name       string
	Executions int64
	Total      time.Duration
	Max        time.Duration
}

func (s SystemTotal) Avg() time.Duration {
	if s.Executions == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Executions)
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func NewReport(variant string, sessions int, tick, maxElapsed time.Duration) *Report {
	return &Report{
		Variant:      variant,
		Sessions:     sessions,
		TickInterval: tick,
		MaxElapsed:   maxElapsed,
		Outcomes:     make(map[string]int),
		systemIndex:  make(map[string]int),
	}
}

// Add folds one session into the report.
func (r *Report) Add(result SessionResult) {
	r.TotalTicks += result.Ticks
	r.TickTime.Samples = append(r.TickTime.Samples, result.TickTime...)
	r.SessionLength.Samples = append(r.SessionLength.Samples, result.Elapsed)
	r.Outcomes[outcome(result)]++
	r.totalBlocks += result.BlocksPlaced
	r.totalCleared += result.RowsCleared

	for _, system := range result.Systems {
		i, ok := r.systemIndex[system.Name]
		if !ok {
			i = len(r.Systems)
			r.systemIndex[system.Name] = i
			r.Systems = append(r.Systems, SystemTotal{Name: system.Name})
		}
		total := &r.Systems[i]
		total.Executions += system.ExecutionCount
		total.Total += system.TotalDuration
		total.Max = max(total.Max, system.MaxDuration)
	}
}

func outcome(result SessionResult) string {
	if result.Cause == game.CauseNone {
		return "still running at cap"
	}
	return result.Cause.String()
}

func (r *Report) Finalize() {
	r.TickTime.Finalize()
	r.SessionLength.Finalize()

	n := len(r.SessionLength.Samples)
	if n > 0 {
		r.AvgBlocks = float64(r.totalBlocks) / float64(n)
		r.AvgRowsCleared = float64(r.totalCleared) / float64(n)
	}
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Cashflow Stress Test Report

## Test Configuration
- **Rules:** {{.Variant}}
- **Sessions:** {{.Sessions}}
- **Tick Interval:** {{.TickInterval}}
- **Session Cap:** {{.MaxElapsed}}

## Performance Results
- **Total Ticks:** {{.TotalTicks}}
- **Total Test Time:** {{.TotalTime}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}

## Systems
{{range .Systems}}- {{.Name}}: {{.Executions}} runs, avg {{.Avg}}, max {{.Max}}
{{end}}
## Outcomes
{{range $cause, $count := .Outcomes}}- {{$cause}}: {{$count}}
{{end}}
- **Session Length:** avg {{.SessionLength.Avg}}, min {{.SessionLength.Min}}, max {{.SessionLength.Max}}
- **Blocks Placed (avg):** {{printf "%.1f" .AvgBlocks}}
- **Rows Cleared (avg):** {{printf "%.1f" .AvgRowsCleared}}

## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end)
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} MB (start) -> {{mb .MemStatsEnd.TotalAlloc}} MB (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc | mb}} MB
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
