package constants

import "time"

// Audio Defaults
const (
	// AudioSampleRate is the default output sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length handed to the driver
	AudioBufferDuration = 100 * time.Millisecond

	// AudioDefaultMasterVolume is the master gain in [0, 1]
	AudioDefaultMasterVolume = 0.5
)

// Paddle Sound Timing
const (
	PaddleSoundFrequency = 440.0
	PaddleSoundDuration  = 60 * time.Millisecond
	PaddleSoundAttack    = 2 * time.Millisecond
	PaddleSoundRelease   = 30 * time.Millisecond
)

// Wall Sound Timing
const (
	WallSoundFrequency = 220.0
	WallSoundDuration  = 40 * time.Millisecond
	WallSoundAttack    = 2 * time.Millisecond
	WallSoundRelease   = 20 * time.Millisecond
)

// Score Sound Timing
const (
	ScoreSoundNote1Frequency = 659.25 // E5
	ScoreSoundNote2Frequency = 329.63 // E4
	ScoreSoundNote1Duration  = 90 * time.Millisecond
	ScoreSoundNote2Duration  = 250 * time.Millisecond
	ScoreSoundAttack         = 5 * time.Millisecond
	ScoreSoundNote1Release   = 40 * time.Millisecond
	ScoreSoundNote2Release   = 180 * time.Millisecond
)
