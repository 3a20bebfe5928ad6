package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/ModricFX/JumpScape-sub000/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FinishedScene is shown after the last level and lists the run records.
type FinishedScene struct {
	session      *Session
	sceneChanger SceneChanger

	ecs  *ecs.ECS
	once sync.Once
}

func NewFinishedScene(s *Session, sc SceneChanger) *FinishedScene {
	return &FinishedScene{session: s, sceneChanger: sc}
}

func (fin *FinishedScene) Update() {
	fin.once.Do(fin.configure)
	fin.ecs.Update()
}

func (fin *FinishedScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if fin.ecs == nil {
		return
	}
	fin.ecs.Draw(screen)
}

func (fin *FinishedScene) configure() {
	world := ecs.NewECS(donburi.NewWorld())
	primeInput(world, fin.session)

	if fin.session.Input != nil {
		world.AddSystem(systems.NewInputSystem(fin.session.Input))
	}
	world.AddSystem(func(e *ecs.ECS) {
		input := systems.GetInput(e)
		if input.JustPressed(cfg.ActionConfirm) || input.JustPressed(cfg.ActionBack) {
			fin.sceneChanger.ChangeScene(NewMenuScene(fin.session, fin.sceneChanger, 0))
		}
	})
	world.AddRenderer(cfg.Default, systems.DrawSummary("All levels cleared", fin.summaryLines()))

	fin.ecs = world
}

func (fin *FinishedScene) summaryLines() []string {
	if fin.session.Records == nil {
		return nil
	}
	sums, err := fin.session.Records.Summaries()
	if err != nil {
		log.Warn("could not read run records", "err", err)
		return nil
	}
	lines := make([]string, 0, len(sums))
	for _, s := range sums {
		lines = append(lines, s.String())
	}
	return lines
}
