package assets

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/ModricFX/JumpScape-sub000/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeLength(t *testing.T) {
	for id, spec := range config.Audio.Tones {
		pcm := Synthesize(spec, 44100)
		want := int(spec.Duration*44100) * bytesPerFrame
		assert.Len(t, pcm, want, "sound %d", id)
	}
	assert.Nil(t, Synthesize(config.ToneSpec{}, 44100))
}

func TestSynthesizeIsDeterministic(t *testing.T) {
	spec := config.Audio.Tones[config.SoundBreak]
	assert.Equal(t, Synthesize(spec, 22050), Synthesize(spec, 22050))
}

func TestPanGains(t *testing.T) {
	l, r := PanGains(-1)
	assert.InDelta(t, 1, l, 1e-9)
	assert.InDelta(t, 0, r, 1e-9)

	l, r = PanGains(0)
	assert.InDelta(t, l, r, 1e-9)
}

func frame(l, r int16) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint16(b, uint16(l))
	binary.LittleEndian.PutUint16(b[2:], uint16(r))
	return b
}

func TestApplyPan(t *testing.T) {
	pcm := frame(1000, 1000)
	ApplyPan(pcm, 0)
	assert.Equal(t, frame(1000, 1000), pcm, "centre is unity")

	pcm = frame(1000, 1000)
	ApplyPan(pcm, 1)
	assert.Equal(t, int16(0), int16(binary.LittleEndian.Uint16(pcm)))
	assert.Greater(t, int16(binary.LittleEndian.Uint16(pcm[2:])), int16(1000))
}

func TestPanStreamReadsWholeFrames(t *testing.T) {
	src := bytes.NewReader(append(frame(100, 100), frame(200, 200)...))
	ps := NewPanStream(src)
	ps.SetPan(-1)

	buf := make([]byte, 7)
	n, err := ps.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, int16(0), int16(binary.LittleEndian.Uint16(buf[2:])))

	_, err = ps.Seek(0, io.SeekStart)
	require.NoError(t, err)
	all, err := io.ReadAll(ps)
	require.NoError(t, err)
	assert.Len(t, all, 8)
}
