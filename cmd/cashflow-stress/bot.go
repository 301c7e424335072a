package main

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/cashflow/game"
)

// Bot feeds random input to a controller, roughly like a distracted player.
type Bot struct {
	rng *rand.Rand

	// Per-tick probabilities of each action.
	MoveChance   float64
	RotateChance float64
	DropChance   float64
	SoftChance   float64
}

func NewBot(rng *rand.Rand) *Bot {
	return &Bot{
		rng:          rng,
		MoveChance:   0.10,
		RotateChance: 0.05,
		DropChance:   0.02,
		SoftChance:   0.01,
	}
}

func (b *Bot) Act(c *game.Controller) {
	if b.rng.Float64() < b.MoveChance {
		if b.rng.IntN(2) == 0 {
			c.Move(-1)
		} else {
			c.Move(1)
		}
	}
	if b.rng.Float64() < b.RotateChance {
		c.Rotate()
	}
	if b.rng.Float64() < b.SoftChance {
		c.SetSoftDrop(!c.Session().SoftDrop)
	}
	if b.rng.Float64() < b.DropChance {
		c.HardDrop()
	}
}

// SessionResult summarises one simulated session.
type SessionResult struct {
	Cause        game.EndCause
	Elapsed      time.Duration
	Ticks        int64
	BlocksPlaced int
	RowsCleared  int
	Balance      float64
	TickTime     []time.Duration
	Systems      []game.SystemStats
}

// runSession plays one session to its end or until maxElapsed of game time
// has passed. A session that hits the cap reports CauseNone.
func runSession(cfg game.Config, seed uint64, tick, maxElapsed time.Duration) (SessionResult, error) {
	controller, err := game.NewController(cfg, game.WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))))
	if err != nil {
		return SessionResult{}, err
	}
	bot := NewBot(rand.New(rand.NewPCG(seed, 1)))

	var result SessionResult
	controller.Start()
	for controller.State() == game.Running && controller.Session().Elapsed < maxElapsed {
		bot.Act(controller)

		start := time.Now()
		controller.Tick(tick)
		result.TickTime = append(result.TickTime, time.Since(start))
		result.Ticks++
	}

	s := controller.Session()
	result.Cause = s.Cause
	result.Elapsed = s.Elapsed
	result.BlocksPlaced = s.BlocksPlaced
	result.RowsCleared = s.RowsCleared
	result.Balance = s.Balance
	result.Systems = controller.Stats().Systems
	return result, nil
}
