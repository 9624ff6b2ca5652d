// Package audio plays short feedback tones for UI actions.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Feedback produces click tones on canvas actions. A failed speaker
// init leaves it silent; the app runs fine without sound.
type Feedback struct {
	ready bool
}

// New initializes the speaker. Initialization failure is non-fatal and
// reported through the error for logging only.
func New() (*Feedback, error) {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	return &Feedback{ready: err == nil}, err
}

// Muted returns a feedback that never plays
func Muted() *Feedback {
	return &Feedback{}
}

// Commit plays the stroke-committed tone
func (f *Feedback) Commit() {
	f.tone(880, 40*time.Millisecond)
}

// Undo plays the undo/redo tone
func (f *Feedback) Undo() {
	f.tone(660, 40*time.Millisecond)
}

// Save plays the saved tone
func (f *Feedback) Save() {
	f.tone(1040, 60*time.Millisecond)
}

// Error plays the rejected-action tone
func (f *Feedback) Error() {
	f.tone(220, 80*time.Millisecond)
}

func (f *Feedback) tone(freq float64, d time.Duration) {
	if !f.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Close shuts the speaker down
func (f *Feedback) Close() {
	if f.ready {
		speaker.Close()
	}
}
