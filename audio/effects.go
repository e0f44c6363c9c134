package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/term-pong/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/sustain/release gain curve of the given total length
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0

		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; vol <= 0 is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreatePaddleSound generates the short square blip of a paddle strike
func CreatePaddleSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constants.PaddleSoundFrequency, constants.PaddleSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.PaddleSoundDuration, constants.PaddleSoundAttack, constants.PaddleSoundRelease, rate)

	// Square waves are loud; halve before the mix gain
	return newVolume(shaped, 0.5*cfg.volume(SoundPaddle))
}

// CreateWallSound generates a low sine tick for wall reflections
func CreateWallSound(cfg *AudioConfig) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)

	tone, err := generators.SineTone(rate, constants.WallSoundFrequency)
	if err != nil {
		return nil, fmt.Errorf("wall tone: %w", err)
	}
	clip := beep.Take(rate.N(constants.WallSoundDuration), tone)
	shaped := NewEnvelope(clip, constants.WallSoundDuration, constants.WallSoundAttack, constants.WallSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundWall)), nil
}

// CreateScoreSound generates a falling two-note chime for a point
func CreateScoreSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(constants.ScoreSoundNote1Frequency, constants.ScoreSoundNote1Duration, WaveTriangle, rate)
	n1Shaped := NewEnvelope(n1, constants.ScoreSoundNote1Duration, constants.ScoreSoundAttack, constants.ScoreSoundNote1Release, rate)

	// Second note carries a quiet octave for body
	n2 := NewOscillator(constants.ScoreSoundNote2Frequency, constants.ScoreSoundNote2Duration, WaveTriangle, rate)
	n2Shaped := NewEnvelope(n2, constants.ScoreSoundNote2Duration, constants.ScoreSoundAttack, constants.ScoreSoundNote2Release, rate)
	over := NewOscillator(2*constants.ScoreSoundNote2Frequency, constants.ScoreSoundNote2Duration, WaveSine, rate)
	overShaped := NewEnvelope(over, constants.ScoreSoundNote2Duration, constants.ScoreSoundAttack, constants.ScoreSoundNote2Release, rate)
	n2Mixed := beep.Mix(newVolume(n2Shaped, 0.75), newVolume(overShaped, 0.25))

	return newVolume(beep.Seq(n1Shaped, n2Mixed), cfg.volume(SoundScore))
}

// GetSoundEffect returns a fresh streamer for the given sound type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) (beep.Streamer, error) {
	switch soundType {
	case SoundPaddle:
		return CreatePaddleSound(cfg), nil
	case SoundWall:
		return CreateWallSound(cfg)
	case SoundScore:
		return CreateScoreSound(cfg), nil
	default:
		return nil, fmt.Errorf("sound %d: %w", soundType, ErrUnknownSound)
	}
}
