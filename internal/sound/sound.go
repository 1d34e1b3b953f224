//go:build !ci

package sound

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager plays short generated chimes for game events.
// Tones are synthesized at init so the binary ships without audio assets.
type SoundManager struct {
	buffers map[string]*beep.Buffer
	enabled bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		buffers: make(map[string]*beep.Buffer),
		enabled: false,
	}
}

func (sm *SoundManager) Init() error {
	// Init speaker with smaller buffer for lower latency
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	sm.enabled = true

	// Rising chime for a new role, falling chime for round end,
	// single mid tone for the reveal
	sm.buffers["role"] = synthesize([]float64{523.25, 659.25, 783.99}, 120*time.Millisecond)
	sm.buffers["reveal"] = synthesize([]float64{659.25}, 200*time.Millisecond)
	sm.buffers["end"] = synthesize([]float64{783.99, 659.25, 523.25}, 120*time.Millisecond)

	return nil
}

// synthesize renders a sequence of sine tones into a reusable buffer
func synthesize(frequencies []float64, toneLength time.Duration) *beep.Buffer {
	format := beep.Format{
		SampleRate:  sampleRate,
		NumChannels: 2,
		Precision:   4,
	}
	buffer := beep.NewBuffer(format)

	samplesPerTone := sampleRate.N(toneLength)
	for _, freq := range frequencies {
		pos := 0
		tone := beep.Take(samplesPerTone, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
			for i := range samples {
				v := 0.2 * math.Sin(2*math.Pi*freq*float64(pos)/float64(sampleRate))
				// Fade out to avoid clicks between tones
				remaining := samplesPerTone - pos
				if remaining < 512 {
					v *= float64(remaining) / 512
				}
				samples[i][0] = v
				samples[i][1] = v
				pos++
			}
			return len(samples), true
		}))
		buffer.Append(tone)
	}

	return buffer
}

// Play plays a named chime, silently ignoring unknown names
func (sm *SoundManager) Play(name string) {
	if !sm.enabled {
		return
	}

	buffer, ok := sm.buffers[name]
	if !ok {
		return
	}

	speaker.Play(buffer.Streamer(0, buffer.Len()))
}

func (sm *SoundManager) Close() {
	sm.enabled = false
}
