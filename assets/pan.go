package assets

import (
	"io"
	"sync"
)

// PanStream wraps a stereo PCM stream and applies a pan that can change while
// the audio thread is reading.
type PanStream struct {
	src io.ReadSeeker

	mu  sync.Mutex
	pan float64
}

func NewPanStream(src io.ReadSeeker) *PanStream {
	return &PanStream{src: src}
}

func (p *PanStream) SetPan(pan float64) {
	p.mu.Lock()
	p.pan = pan
	p.mu.Unlock()
}

func (p *PanStream) Pan() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pan
}

func (p *PanStream) Read(b []byte) (int, error) {
	// Only whole frames so channel alignment survives short reads.
	if len(b) >= bytesPerFrame {
		b = b[:len(b)-len(b)%bytesPerFrame]
	}
	n, err := p.src.Read(b)
	if n > 0 {
		ApplyPan(b[:n-n%bytesPerFrame], p.Pan())
	}
	return n, err
}

func (p *PanStream) Seek(offset int64, whence int) (int64, error) {
	return p.src.Seek(offset, whence)
}
