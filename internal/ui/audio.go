package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/hailam/focuschess/internal/board"
	"github.com/hailam/focuschess/internal/selection"
)

// SoundType represents different sound effects.
type SoundType int

const (
	SoundPickUp SoundType = iota
	SoundDrop
	SoundCapture
	SoundEmpty
)

const sampleRate = 44100

// AudioManager plays procedural sound effects for selection transitions.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates a new audio manager.
func NewAudioManager(enabled bool) *AudioManager {
	// Only one audio context may exist per process
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	am := &AudioManager{
		context: ctx,
		sounds:  make(map[SoundType][]byte),
		enabled: enabled,
		volume:  0.5,
	}
	am.sounds[SoundPickUp] = tone(660, 0.07, 0.25)
	am.sounds[SoundDrop] = click(440, 0.08, 0.3)
	am.sounds[SoundCapture] = concat(click(330, 0.08, 0.4), silence(0.04), click(363, 0.08, 0.32))
	am.sounds[SoundEmpty] = buzz(150, 0.08, 0.2)
	return am
}

// OnResult plays the sound for a selection transition.
func (am *AudioManager) OnResult(res selection.Result) {
	switch res.Outcome {
	case selection.PickedUp:
		am.Play(SoundPickUp)
	case selection.Dropped:
		if res.Displaced != board.NoPiece {
			am.Play(SoundCapture)
			return
		}
		am.Play(SoundDrop)
	default:
		am.Play(SoundEmpty)
	}
}

// Play plays a sound effect.
func (am *AudioManager) Play(sound SoundType) {
	if !am.enabled {
		return
	}
	data, ok := am.sounds[sound]
	if !ok {
		return
	}
	// A new player per play lets sounds overlap
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled enables or disables audio.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// IsEnabled returns whether audio is enabled.
func (am *AudioManager) IsEnabled() bool {
	return am.enabled
}

// render samples a waveform into 16-bit little-endian stereo PCM.
func render(duration float64, sample func(t, progress float64) float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		val := int16(sample(t, t/duration) * 32767)
		data[i*4] = byte(val)
		data[i*4+1] = byte(val >> 8)
		data[i*4+2] = byte(val)
		data[i*4+3] = byte(val >> 8)
	}
	return data
}

// click is a short percussive knock with exponential decay.
func click(freq, duration, amplitude float64) []byte {
	return render(duration, func(t, _ float64) float64 {
		noise := (math.Sin(t*sampleRate*0.3) + math.Sin(t*sampleRate*0.7)) * 0.3
		return (math.Sin(2*math.Pi*freq*t) + noise) * math.Exp(-t*30) * amplitude
	})
}

// tone rises quickly and decays linearly.
func tone(freq, duration, amplitude float64) []byte {
	return render(duration, func(t, progress float64) float64 {
		envelope := 1.0 - (progress-0.1)/0.9
		if progress < 0.1 {
			envelope = progress / 0.1
		}
		return math.Sin(2*math.Pi*freq*t) * envelope * amplitude
	})
}

// buzz is a low square-ish wave.
func buzz(freq, duration, amplitude float64) []byte {
	return render(duration, func(t, progress float64) float64 {
		wave := math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t)
		return wave * (1.0 - progress) * amplitude * 0.5
	})
}

func silence(duration float64) []byte {
	return make([]byte, int(sampleRate*duration)*4)
}

func concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
