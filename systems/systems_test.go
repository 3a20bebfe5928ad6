package systems

import (
	"math/rand"
	"testing"

	"github.com/ModricFX/JumpScape-sub000/components"
	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/ModricFX/JumpScape-sub000/shared/leveldata"
	"github.com/ModricFX/JumpScape-sub000/systems/factory"
	"github.com/ModricFX/JumpScape-sub000/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testStep = 1.0 / 60

type fakeInput struct {
	held [cfg.ActionCount]bool
}

func (f *fakeInput) Poll() [cfg.ActionCount]bool { return f.held }

type fakeSink struct {
	played  []cfg.SoundID
	volumes map[cfg.SoundID]float64
	loops   map[int]cfg.SoundID
	stopped []int
}

func newFakeSink() *fakeSink {
	return &fakeSink{
		volumes: make(map[cfg.SoundID]float64),
		loops:   make(map[int]cfg.SoundID),
	}
}

func (s *fakeSink) Play(id cfg.SoundID, volume, pan float64) {
	s.played = append(s.played, id)
	s.volumes[id] = volume
}

func (s *fakeSink) SetLoop(key int, id cfg.SoundID, volume, pan float64) {
	s.loops[key] = id
}

func (s *fakeSink) StopLoop(key int) {
	delete(s.loops, key)
	s.stopped = append(s.stopped, key)
}

type testWorld struct {
	ecs   *ecs.ECS
	input *fakeInput
	sink  *fakeSink
	audio *AudioSystem
}

func newTestWorld(t *testing.T, lvl *leveldata.Level) *testWorld {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	w := &testWorld{ecs: e, input: &fakeInput{}, sink: newFakeSink()}
	w.audio = NewAudioSystem(w.sink)
	Pipeline{
		Input: w.input,
		Audio: w.audio,
		Rand:  rand.New(rand.NewSource(1)),
		Step:  testStep,
	}.Register(e)
	factory.BuildLevel(e, lvl, 0, cfg.DefaultSettings())
	return w
}

func (w *testWorld) tick(n int) {
	for i := 0; i < n; i++ {
		w.ecs.Update()
	}
}

func (w *testWorld) player(t *testing.T) *components.PlayerData {
	t.Helper()
	_, p, ok := GetPlayer(w.ecs)
	require.True(t, ok)
	return p
}

func ground() leveldata.PlatformSpec {
	return leveldata.PlatformSpec{X: 0, Y: 680, Length: 1280}
}

func firstPlatform(t *testing.T, e *ecs.ECS, index int) *components.PlatformData {
	t.Helper()
	var found *components.PlatformData
	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		if p := components.Platform.Get(entry); p.Index == index {
			found = p
		}
	})
	require.NotNil(t, found)
	return found
}

func TestPlayerFallsAndRestsOnGround(t *testing.T) {
	w := newTestWorld(t, &leveldata.Level{
		Name:        "fall",
		PlayerSpawn: leveldata.Point{X: 100, Y: 500},
		Platforms:   []leveldata.PlatformSpec{ground()},
	})

	w.tick(120)
	p := w.player(t)
	assert.True(t, p.OnPlatform)
	assert.Equal(t, 620.0, p.Position.Y)
	assert.Equal(t, 0.0, p.Velocity.Y)

	w.tick(10)
	assert.Equal(t, 620.0, p.Position.Y, "resting is stable")
}

func TestPlayerWalksAndJumps(t *testing.T) {
	w := newTestWorld(t, &leveldata.Level{
		Name:        "walk",
		PlayerSpawn: leveldata.Point{X: 100, Y: 620},
		Platforms:   []leveldata.PlatformSpec{ground()},
	})
	w.tick(1)
	p := w.player(t)
	require.True(t, p.OnPlatform)

	w.input.held[cfg.ActionMoveRight] = true
	w.tick(10)
	assert.Equal(t, 130.0, p.Position.X)

	w.input.held[cfg.ActionMoveRight] = false
	w.input.held[cfg.ActionJump] = true
	w.tick(1)
	assert.False(t, p.OnPlatform)
	assert.Less(t, p.Position.Y, 620.0)
	assert.Contains(t, w.sink.played, cfg.SoundJump)
}

func TestDisappearingPlatformCycle(t *testing.T) {
	w := newTestWorld(t, &leveldata.Level{
		Name:        "crumble",
		PlayerSpawn: leveldata.Point{X: 100, Y: 300},
		Platforms: []leveldata.PlatformSpec{
			{X: 50, Y: 400, Length: 200, Disappearing: true},
			ground(),
		},
	})
	platform := firstPlatform(t, w.ecs, 0)

	landed := false
	for i := 0; i < 200 && !landed; i++ {
		w.tick(1)
		landed = platform.State.Phase == components.PlatformCountingDown
	}
	require.True(t, landed)
	assert.Equal(t, cfg.SoundCrack, w.sink.loops[0], "crack loops while counting down")

	ticks := 0
	for platform.State.Phase == components.PlatformCountingDown && ticks < 400 {
		w.tick(1)
		ticks++
	}
	assert.InDelta(t, 180, ticks, 2)
	require.Equal(t, components.PlatformReappearing, platform.State.Phase)
	assert.False(t, platform.Collidable())
	assert.Len(t, platform.Particles, 8)
	assert.Contains(t, w.sink.played, cfg.SoundBreak)
	assert.Greater(t, w.sink.volumes[cfg.SoundBreak], 0.0)
	assert.NotContains(t, w.sink.loops, 0, "crack loop stops once broken")

	ticks = 0
	for platform.State.Phase == components.PlatformReappearing && ticks < 600 {
		w.tick(1)
		ticks++
	}
	assert.InDelta(t, 300, ticks, 2)
	assert.Equal(t, components.PlatformStable, platform.State.Phase)
	assert.Equal(t, 3.0, platform.State.Remaining)
	assert.True(t, platform.Collidable())

	p := w.player(t)
	assert.Equal(t, 620.0, p.Position.Y, "player dropped to the ground")
	assert.False(t, p.IsDead())
}

func TestMonsterContactHurtsPlayer(t *testing.T) {
	w := newTestWorld(t, &leveldata.Level{
		Name:        "monster",
		PlayerSpawn: leveldata.Point{X: 600, Y: 620},
		Platforms: []leveldata.PlatformSpec{
			{X: 0, Y: 680, Length: 1280, HasMonster: true},
		},
	})

	w.tick(1)
	p := w.player(t)
	assert.Equal(t, 1, p.Health, "bumped from behind deals half damage")
	assert.True(t, p.IsInvincible())
	assert.Equal(t, -6.0, p.Velocity.X)
	assert.Contains(t, w.sink.played, cfg.SoundHurt)

	cam, ok := components.Camera.First(w.ecs.World)
	require.True(t, ok)
	assert.Greater(t, components.ScreenShake.Get(cam).Remaining, 0.0)

	w.tick(5)
	assert.Equal(t, 1, p.Health, "no damage while invincible")
}

func TestKeyUnlocksAndOpensDoor(t *testing.T) {
	w := newTestWorld(t, &leveldata.Level{
		Name:        "door",
		PlayerSpawn: leveldata.Point{X: 190, Y: 620},
		Platforms:   []leveldata.PlatformSpec{ground()},
		Key:         &leveldata.Point{X: 200, Y: 630},
		Door:        &leveldata.DoorSpec{X: 300, Y: 590, Locked: true},
	})

	w.tick(1)
	p := w.player(t)
	require.True(t, p.HasKey)
	assert.Equal(t, components.ItemKey, p.Inventory.Get(0))
	assert.Contains(t, w.sink.played, cfg.SoundPickup)

	p.Position.X = 310
	w.input.held[cfg.ActionInteract] = true
	w.tick(1)
	assert.False(t, p.HasKey, "unlocking consumes the key")

	w.input.held[cfg.ActionInteract] = false
	w.tick(1)
	lvl := GetLevel(w.ecs)
	assert.Equal(t, components.LevelPlaying, lvl.Outcome)

	w.input.held[cfg.ActionInteract] = true
	w.tick(1)
	assert.Equal(t, components.LevelComplete, lvl.Outcome)

	x := p.Position.X
	w.input.held[cfg.ActionMoveRight] = true
	w.tick(5)
	assert.Equal(t, x, p.Position.X, "gameplay stops after the level ends")
}

func TestFallingOutOfTheWorldFailsLevel(t *testing.T) {
	w := newTestWorld(t, &leveldata.Level{
		Name:        "pit",
		PlayerSpawn: leveldata.Point{X: 100, Y: 600},
	})

	w.tick(120)
	p := w.player(t)
	assert.True(t, p.IsDead())
	assert.Equal(t, components.LevelFailed, GetLevel(w.ecs).Outcome)
}

func TestSnapCameraClampsToBounds(t *testing.T) {
	w := newTestWorld(t, &leveldata.Level{
		Name:        "cam",
		PlayerSpawn: leveldata.Point{X: 10, Y: 620},
		Platforms:   []leveldata.PlatformSpec{ground()},
	})
	SnapCamera(w.ecs)

	cam, ok := components.Camera.First(w.ecs.World)
	require.True(t, ok)
	pos := components.Camera.Get(cam).Position
	assert.Equal(t, 640.0, pos.X)
	assert.Equal(t, 360.0, pos.Y)

	ox, oy := CameraOffset(w.ecs)
	assert.Equal(t, 0.0, ox)
	assert.Equal(t, 0.0, oy)
}

func TestResolvePlatform(t *testing.T) {
	platform := components.NewPlatformData(0, 100, 100, 100, true, false, 1)

	t.Run("side hit pushes horizontally", func(t *testing.T) {
		p := components.NewPlayerData(70, 90)
		require.True(t, resolvePlatform(&p, &platform))
		assert.Equal(t, 60.0, p.Position.X)
		assert.False(t, p.OnPlatform)
	})

	t.Run("landing starts the countdown", func(t *testing.T) {
		pl := components.NewPlatformData(0, 100, 100, 100, true, false, 1)
		p := components.NewPlayerData(120, 45)
		p.Velocity.Y = 5
		require.True(t, resolvePlatform(&p, &pl))
		assert.Equal(t, 40.0, p.Position.Y)
		assert.True(t, p.OnPlatform)
		assert.Equal(t, components.PlatformCountingDown, pl.State.Phase)
	})

	t.Run("square overlap resolves vertically", func(t *testing.T) {
		pl := components.NewPlatformData(0, 100, 100, 100, false, false, 1)
		p := components.NewPlayerData(180, 60)
		// Overlap is 20x20.
		require.True(t, resolvePlatform(&p, &pl))
		assert.Equal(t, 40.0, p.Position.Y)
		assert.Equal(t, 180.0, p.Position.X)
	})

	t.Run("underside pushes down", func(t *testing.T) {
		pl := components.NewPlatformData(0, 100, 100, 100, false, false, 1)
		p := components.NewPlayerData(120, 110)
		p.Velocity.Y = -10
		require.True(t, resolvePlatform(&p, &pl))
		assert.Equal(t, 120.0, p.Position.Y)
		assert.Equal(t, 0.0, p.Velocity.Y)
	})

	t.Run("no overlap", func(t *testing.T) {
		p := components.NewPlayerData(0, 0)
		assert.False(t, resolvePlatform(&p, &platform))
	})
}

func TestAudioSystemStopsStaleLoops(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	sink := newFakeSink()
	sys := NewAudioSystem(sink)

	audio := getAudio(e)
	audio.Queue(cfg.SoundBreak, 0.9, 0)
	audio.Queue(cfg.SoundJump, 0, 0)
	audio.Loop(3, cfg.SoundCrack, 0.5, -0.2)
	sys.Update(e)

	assert.Equal(t, []cfg.SoundID{cfg.SoundBreak}, sink.played, "silent sounds are dropped")
	assert.Equal(t, 1.0, sink.volumes[cfg.SoundBreak], "multiplied volume is clamped")
	assert.Equal(t, cfg.SoundCrack, sink.loops[3])
	assert.Empty(t, audio.PendingSFX)

	audio.Loop(3, cfg.SoundCrack, 0.4, 0)
	sys.Update(e)
	assert.Empty(t, sink.stopped)

	sys.Update(e)
	assert.Equal(t, []int{3}, sink.stopped)

	audio.Loop(4, cfg.SoundCrack, 0.4, 0)
	sys.Update(e)
	sys.StopAll()
	assert.Equal(t, []int{3, 4}, sink.stopped)
}
