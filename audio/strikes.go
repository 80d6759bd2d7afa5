// Package audio synthesizes the chisel strike sounds.
package audio

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// strikeFreqs are the ring pitches of the strike variants. One is picked
// uniformly at random per poke.
var strikeFreqs = [4]float64{620, 780, 930, 1100}

const strikeDuration = 120 * time.Millisecond

// Bank plays fire-and-forget chisel strikes through a shared mixer.
type Bank struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rng         *rand.Rand
	sr          beep.SampleRate
	initialized bool
}

// NewBank creates a sound bank at the given sample rate.
func NewBank(sampleRate int, rng *rand.Rand) *Bank {
	return &Bank{
		mixer: &beep.Mixer{},
		rng:   rng,
		sr:    beep.SampleRate(sampleRate),
	}
}

// Initialize opens the speaker and starts the mixer.
func (b *Bank) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(b.sr, b.sr.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// PlayStrike queues one strike, a random variant, and returns immediately.
func (b *Bank) PlayStrike() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}

	freq := strikeFreqs[b.rng.Intn(len(strikeFreqs))]
	gen := NewStrikeGenerator(b.sr, freq, b.rng.Int63())
	b.mixer.Add(beep.Take(b.sr.N(strikeDuration), gen))
}

// Cleanup silences the bank. The speaker itself stays open; beep offers
// no close, so clearing the mixer is the teardown.
func (b *Bank) Cleanup() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	b.mixer.Clear()
	b.initialized = false
}

// StrikeGenerator produces one percussive chisel tap: a fast-decaying
// noise burst over a pitched ring.
type StrikeGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
	seed int64
}

// NewStrikeGenerator creates a strike generator ringing at freq.
func NewStrikeGenerator(sr beep.SampleRate, freq float64, seed int64) *StrikeGenerator {
	return &StrikeGenerator{sr: sr, freq: freq, seed: seed}
}

func (g *StrikeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Sharp attack, exponential decay.
		envelope := math.Exp(-t * 45)

		// Crackle from a cheap LCG noise source.
		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		ring := math.Sin(2 * math.Pi * g.freq * t)
		sample := envelope * (0.35*ring + 0.2*noise)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *StrikeGenerator) Err() error {
	return nil
}
