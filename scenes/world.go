package scenes

import (
	"image/color"
	"math/rand"
	"slices"
	"sync"

	"github.com/ModricFX/JumpScape-sub000/components"
	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/ModricFX/JumpScape-sub000/shared/leveldata"
	"github.com/ModricFX/JumpScape-sub000/storage"
	"github.com/ModricFX/JumpScape-sub000/systems"
	"github.com/ModricFX/JumpScape-sub000/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene plays one level. Restarting or reloading the level replaces
// the whole world.
type PlatformerScene struct {
	session      *Session
	sceneChanger SceneChanger
	path         string

	ecs      *ecs.ECS
	recorded bool
	once     sync.Once
}

// NewPlatformerScene creates a scene for the level at index in the session's
// level list.
func NewPlatformerScene(s *Session, sc SceneChanger, index int) *PlatformerScene {
	ps := &PlatformerScene{session: s, sceneChanger: sc}
	if index >= 0 && index < len(s.Paths) {
		ps.path = s.Paths[index]
	}
	return ps
}

// index is the level's current position in the list, or -1 once its file
// has disappeared.
func (ps *PlatformerScene) index() int {
	return slices.Index(ps.session.Paths, ps.path)
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)

	if ps.session.pollChanges(ps.path) && ps.ecs != nil {
		log.Info("level changed on disk, reloading", "path", ps.path)
		ps.rebuild()
	}
	if ps.ecs == nil {
		return
	}

	ps.ecs.Update()
	ps.checkOutcome()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	if !ps.rebuild() {
		ps.leave(NewMenuScene(ps.session, ps.sceneChanger, 0))
	}
}

// rebuild loads the level file and replaces the world. On failure the
// current world, if any, keeps running.
func (ps *PlatformerScene) rebuild() bool {
	s := ps.session
	lvl, err := leveldata.Load(s.Levels, ps.path, s.Window)
	if err != nil {
		log.Error("could not load level", "path", ps.path, "err", err)
		return false
	}

	s.stopAudio()

	world := ecs.NewECS(donburi.NewWorld())
	systems.Pipeline{
		Input: s.Input,
		Audio: s.Audio,
		Rand:  rand.New(rand.NewSource(s.Seed)),
		Step:  s.Step(),
		Debug: s.Debug,
	}.Register(world)
	factory.BuildLevel(world, lvl, ps.index(), s.Settings)
	systems.SnapCamera(world)
	primeInput(world, s)

	ps.ecs = world
	ps.recorded = false
	log.Debug("level built", "level", lvl.Name, "platforms", len(lvl.Platforms), "ghosts", len(lvl.Ghosts))
	return true
}

func (ps *PlatformerScene) checkOutcome() {
	lvl := systems.GetLevel(ps.ecs)
	input := systems.GetInput(ps.ecs)

	if input.JustPressed(cfg.ActionBack) {
		ps.leave(NewMenuScene(ps.session, ps.sceneChanger, max(ps.index(), 0)))
		return
	}

	switch lvl.Outcome {
	case components.LevelComplete:
		ps.record(lvl, storage.OutcomeComplete)
		if input.JustPressed(cfg.ActionConfirm) {
			ps.advance()
		}
	case components.LevelFailed:
		ps.record(lvl, storage.OutcomeDied)
		if input.JustPressed(cfg.ActionRestart) {
			ps.rebuild()
		}
	default:
		if input.JustPressed(cfg.ActionRestart) {
			ps.rebuild()
		}
	}
}

// record stores the outcome once per attempt.
func (ps *PlatformerScene) record(lvl *components.LevelData, outcome string) {
	if ps.recorded {
		return
	}
	ps.recorded = true
	log.Info("level finished", "level", lvl.Name, "outcome", outcome, "seconds", lvl.Elapsed)

	if ps.session.Records == nil {
		return
	}
	if _, err := ps.session.Records.Add(lvl.Name, outcome, lvl.Elapsed); err != nil {
		log.Warn("could not save run", "level", lvl.Name, "err", err)
	}
}

func (ps *PlatformerScene) advance() {
	next := ps.index() + 1
	if next <= 0 || next >= len(ps.session.Paths) {
		ps.leave(NewFinishedScene(ps.session, ps.sceneChanger))
		return
	}
	ps.leave(NewPlatformerScene(ps.session, ps.sceneChanger, next))
}

func (ps *PlatformerScene) leave(next Scene) {
	ps.session.stopAudio()
	ps.sceneChanger.ChangeScene(next)
}
