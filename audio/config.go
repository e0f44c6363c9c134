package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/term-pong/constants"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "TERM_PONG_AUDIO_ENABLED"
	EnvMasterVolume = "TERM_PONG_MASTER_VOLUME"
	EnvSFXVolumes   = "TERM_PONG_SFX_VOLUMES"
	EnvSampleRate   = "TERM_PONG_SAMPLE_RATE"
)

// AudioConfig holds mixing settings for sound effects
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the built-in mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.AudioDefaultMasterVolume,
		EffectVolumes: map[SoundType]float64{
			SoundPaddle: 0.8,
			SoundWall:   0.5,
			SoundScore:  1.0,
		},
		SampleRate: constants.AudioSampleRate,
	}
}

// LoadAudioConfig loads audio configuration from environment variables
// Malformed values are ignored and the default kept
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is given as 0-100
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clamp01(float64(val) / 100.0)
		}
	}

	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = clamp01(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

// volume returns the effective gain for a sound type
func (c *AudioConfig) volume(st SoundType) float64 {
	return c.EffectVolumes[st] * c.MasterVolume
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
