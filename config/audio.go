package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundCrack
	SoundBreak
	SoundJump
	SoundHurt
	SoundPickup
	SoundDoor
	SoundMenu
)

// Waveform selects the oscillator used to synthesize a sound.
type Waveform int

const (
	WaveSquare Waveform = iota
	WaveNoise
	WaveSine
)

// ToneSpec describes a procedurally generated sound effect.
type ToneSpec struct {
	Wave      Waveform
	StartFreq float64 // Hz
	EndFreq   float64 // Hz, linear sweep
	Duration  float64 // seconds
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	Tones      map[SoundID]ToneSpec
	// Per-sound gain applied on top of the master volume
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		Tones: map[SoundID]ToneSpec{
			SoundCrack:  {Wave: WaveNoise, StartFreq: 900, EndFreq: 600, Duration: 0.5},
			SoundBreak:  {Wave: WaveNoise, StartFreq: 400, EndFreq: 80, Duration: 0.4},
			SoundJump:   {Wave: WaveSquare, StartFreq: 300, EndFreq: 600, Duration: 0.12},
			SoundHurt:   {Wave: WaveSquare, StartFreq: 220, EndFreq: 110, Duration: 0.2},
			SoundPickup: {Wave: WaveSine, StartFreq: 880, EndFreq: 1320, Duration: 0.15},
			SoundDoor:   {Wave: WaveSine, StartFreq: 200, EndFreq: 400, Duration: 0.35},
			SoundMenu:   {Wave: WaveSquare, StartFreq: 660, EndFreq: 660, Duration: 0.05},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundCrack: 0.6,
			SoundBreak: 1.2,
		},
	}
}
