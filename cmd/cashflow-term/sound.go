package main

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/cashflow/game"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq     float64
	duration time.Duration
	volume   float64
}

// cues maps the events that make a sound to their tone.
var cues = map[game.EventType]tone{
	game.EventPlaced:       {freq: 440, duration: 30 * time.Millisecond, volume: 0.3},
	game.EventRowsCleared:  {freq: 880, duration: 120 * time.Millisecond, volume: 0.6},
	game.EventWarningArmed: {freq: 330, duration: 200 * time.Millisecond, volume: 0.6},
	game.EventEnded:        {freq: 110, duration: 400 * time.Millisecond, volume: 0.8},
}

// SoundCues plays a short sine tone for selected controller events.
type SoundCues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundCues() *SoundCues {
	return &SoundCues{
		mixer: &beep.Mixer{},
	}
}

func (sc *SoundCues) Initialize() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(sc.mixer)
	sc.initialized = true
	return nil
}

// OnEvent is a Controller listener.
func (sc *SoundCues) OnEvent(ev game.Event) {
	cue, ok := cues[ev.Type]
	if !ok {
		return
	}
	sc.play(cue)
}

func (sc *SoundCues) play(t tone) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if !sc.initialized {
		return
	}

	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return
	}

	streamer := beep.Take(sampleRate.N(t.duration), sine)
	speaker.Lock()
	sc.mixer.Add(&effects.Volume{Streamer: streamer, Base: 2, Volume: math.Log2(t.volume)})
	speaker.Unlock()
}

func (sc *SoundCues) Close() {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if !sc.initialized {
		return
	}

	speaker.Lock()
	sc.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sc.initialized = false
}
