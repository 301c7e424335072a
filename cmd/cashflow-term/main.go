package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/cashflow/game"
)

const (
	frameInterval = 16 * time.Millisecond
	// Terminals report key repeats, not releases; soft drop stays held
	// until no Down press has arrived for this long.
	softDropHold = 150 * time.Millisecond
)

type Terminal struct {
	screen     tcell.Screen
	controller *game.Controller
	sound      *SoundCues

	lastFrame time.Time
	lastDown  time.Time
}

func NewTerminal(c *game.Controller, sound *SoundCues) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	return &Terminal{
		screen:     screen,
		controller: c,
		sound:      sound,
	}, nil
}

// handleInput applies one terminal event and reports whether to keep running.
func (t *Terminal) handleInput(ev tcell.Event) bool {
	c := t.controller

	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			c.Move(-1)
		case tcell.KeyRight:
			c.Move(1)
		case tcell.KeyUp:
			c.Rotate()
		case tcell.KeyDown:
			t.lastDown = time.Now()
		case tcell.KeyEnter:
			if c.State() != game.Running {
				c.Start()
			}
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				c.HardDrop()
			case 'z':
				c.Rotate()
			case 'r':
				c.Start()
			}
		}

	case *tcell.EventResize:
		t.screen.Sync()
	}

	return true
}

func (t *Terminal) update(now time.Time) {
	delta := time.Duration(0)
	if !t.lastFrame.IsZero() {
		delta = now.Sub(t.lastFrame)
	}
	t.lastFrame = now

	t.controller.SetSoftDrop(now.Sub(t.lastDown) < softDropHold)
	t.controller.Tick(delta)
}

func (t *Terminal) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !t.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			t.update(now)
			t.draw()
		}
	}
}

func (t *Terminal) cleanup() {
	t.sound.Close()
	t.screen.Fini()
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file. Defaults to the built-in zone rules.")
	balance := flag.Bool("balance", false, "Use the balance rules when no config file is given.")
	mute := flag.Bool("mute", false, "Disable sound cues.")
	flag.Parse()

	cfg := game.DefaultConfig()
	if *balance {
		cfg = game.BalanceConfig()
	}
	if *configPath != "" {
		loaded, err := game.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	controller, err := game.NewController(cfg)
	if err != nil {
		log.Fatal(err)
	}

	sound := NewSoundCues()
	if !*mute {
		if err := sound.Initialize(); err != nil {
			// The game is playable without audio.
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	controller.Subscribe(sound.OnEvent)

	term, err := NewTerminal(controller, sound)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer term.cleanup()

	term.run()
}
