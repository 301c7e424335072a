package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/cashflow/game"
)

func main() {
	sessions := flag.Int("sessions", 200, "The number of sessions to simulate.")
	seed := flag.Uint64("seed", 1, "Base seed; session i uses seed+i.")
	tick := flag.Duration("tick", 16*time.Millisecond, "Simulated frame delta passed to every tick.")
	maxElapsed := flag.Duration("max-elapsed", 30*time.Minute, "Game-time cap per session.")
	configPath := flag.String("config", "", "Path to a YAML config file. Defaults to the built-in zone rules.")
	balance := flag.Bool("balance", false, "Use the balance rules when no config file is given.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg := game.DefaultConfig()
	if *balance {
		cfg = game.BalanceConfig()
	}
	if *configPath != "" {
		loaded, err := game.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	log.Printf("Starting cashflow stress test (%s rules, %d sessions)...\n", cfg.Variant(), *sessions)

	report := NewReport(cfg.Variant(), *sessions, *tick, *maxElapsed)
	report.GCPauseMetrics = *gcPauseMetrics

	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

	for i := range *sessions {
		result, err := runSession(cfg, *seed+uint64(i), *tick, *maxElapsed)
		if err != nil {
			log.Fatalf("Session %d failed: %v", i, err)
		}
		report.Add(result)

		if (i+1)%50 == 0 {
			log.Printf("Completed %d/%d sessions\n", i+1, *sessions)
		}
	}

	report.TotalTime = time.Since(startTime)
	report.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
