package assets

import (
	"bytes"

	"github.com/ModricFX/JumpScape-sub000/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundBank plays synthesized effects through an audio context. One-shot
// effects are rendered once and cached; looping effects get one player per
// source key.
type SoundBank struct {
	context *audio.Context
	cache   map[config.SoundID][]byte
	loops   map[int]*loopPlayer
}

type loopPlayer struct {
	id     config.SoundID
	player *audio.Player
	stream *PanStream
}

// NewSoundBank renders every configured effect up front so the first play
// does not stall a tick.
func NewSoundBank(ctx *audio.Context) *SoundBank {
	b := &SoundBank{
		context: ctx,
		cache:   make(map[config.SoundID][]byte, len(config.Audio.Tones)),
		loops:   make(map[int]*loopPlayer),
	}
	for id, spec := range config.Audio.Tones {
		b.cache[id] = Synthesize(spec, ctx.SampleRate())
	}
	return b
}

func (b *SoundBank) pcm(id config.SoundID) []byte {
	if data, ok := b.cache[id]; ok {
		return data
	}
	spec, ok := config.Audio.Tones[id]
	if !ok {
		return nil
	}
	data := Synthesize(spec, b.context.SampleRate())
	b.cache[id] = data
	return data
}

// Play starts a one-shot effect.
func (b *SoundBank) Play(id config.SoundID, volume, pan float64) {
	if volume <= 0 {
		return
	}
	src := b.pcm(id)
	if len(src) == 0 {
		log.Debug("no sound for id", "id", id)
		return
	}
	data := make([]byte, len(src))
	copy(data, src)
	ApplyPan(data, pan)

	player := b.context.NewPlayerFromBytes(data)
	player.SetVolume(volume)
	player.Play()
}

// SetLoop starts or updates the looping effect for key.
func (b *SoundBank) SetLoop(key int, id config.SoundID, volume, pan float64) {
	lp, ok := b.loops[key]
	if ok && lp.id != id {
		b.StopLoop(key)
		ok = false
	}
	if !ok {
		src := b.pcm(id)
		if len(src) == 0 {
			return
		}
		stream := NewPanStream(audio.NewInfiniteLoop(bytes.NewReader(src), int64(len(src))))
		player, err := b.context.NewPlayer(stream)
		if err != nil {
			log.Warn("failed to create loop player", "id", id, "err", err)
			return
		}
		lp = &loopPlayer{id: id, player: player, stream: stream}
		b.loops[key] = lp
		player.Play()
	}
	lp.stream.SetPan(pan)
	lp.player.SetVolume(volume)
}

// StopLoop stops and releases the looping effect for key.
func (b *SoundBank) StopLoop(key int) {
	lp, ok := b.loops[key]
	if !ok {
		return
	}
	delete(b.loops, key)
	if err := lp.player.Close(); err != nil {
		log.Debug("failed to close loop player", "key", key, "err", err)
	}
}

// StopAll stops every looping effect, used when a level is torn down.
func (b *SoundBank) StopAll() {
	for key := range b.loops {
		b.StopLoop(key)
	}
}
