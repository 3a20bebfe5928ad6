package assets

import (
	"encoding/binary"
	"math"
	"math/rand"

	"github.com/ModricFX/JumpScape-sub000/config"
)

// bytesPerFrame is one 16-bit stereo sample frame.
const bytesPerFrame = 4

// Synthesize renders spec as 16-bit little-endian stereo PCM at sampleRate.
// A short linear fade on both ends avoids clicks.
func Synthesize(spec config.ToneSpec, sampleRate int) []byte {
	n := int(spec.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	out := make([]byte, n*bytesPerFrame)
	fade := sampleRate / 200
	if fade > n/2 {
		fade = n / 2
	}

	// Fixed seed keeps generated noise identical between runs.
	rng := rand.New(rand.NewSource(int64(spec.StartFreq*1000 + spec.EndFreq)))
	phase := 0.0
	hold := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := spec.StartFreq + (spec.EndFreq-spec.StartFreq)*t
		phase += freq / float64(sampleRate)
		if phase >= 1 {
			phase -= math.Floor(phase)
		}

		var v float64
		switch spec.Wave {
		case config.WaveSquare:
			if phase < 0.5 {
				v = 0.5
			} else {
				v = -0.5
			}
		case config.WaveNoise:
			// Sample and hold at the sweep frequency gives pitched noise.
			if phase < freq/float64(sampleRate) {
				hold = rng.Float64()*2 - 1
			}
			v = hold * 0.6
		default:
			v = math.Sin(2*math.Pi*phase) * 0.7
		}

		env := 1 - t // decay
		if fade > 0 {
			if i < fade {
				env *= float64(i) / float64(fade)
			} else if i >= n-fade {
				env *= float64(n-1-i) / float64(fade)
			}
		}

		s := int16(v * env * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame+2:], uint16(s))
	}
	return out
}

// PanGains returns left and right channel gains for pan in [-1, 1] using a
// constant-power law.
func PanGains(pan float64) (left, right float64) {
	if pan < -1 {
		pan = -1
	} else if pan > 1 {
		pan = 1
	}
	angle := (pan + 1) * math.Pi / 4
	return math.Cos(angle), math.Sin(angle)
}

// ApplyPan scales the channels of stereo PCM in place.
func ApplyPan(pcm []byte, pan float64) {
	left, right := PanGains(pan)
	// Centre maps to cos(pi/4) on both channels; normalise so centre is unity.
	left *= math.Sqrt2
	right *= math.Sqrt2
	for i := 0; i+bytesPerFrame <= len(pcm); i += bytesPerFrame {
		scaleSample(pcm[i:], left)
		scaleSample(pcm[i+2:], right)
	}
}

func scaleSample(b []byte, gain float64) {
	s := float64(int16(binary.LittleEndian.Uint16(b))) * gain
	if s > math.MaxInt16 {
		s = math.MaxInt16
	} else if s < math.MinInt16 {
		s = math.MinInt16
	}
	binary.LittleEndian.PutUint16(b, uint16(int16(s)))
}
