package scenes

import (
	"image/color"
	"sync"

	"github.com/ModricFX/JumpScape-sub000/components"
	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/ModricFX/JumpScape-sub000/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the title menu with the settings rows.
type MenuScene struct {
	session      *Session
	sceneChanger SceneChanger
	level        int

	ecs  *ecs.ECS
	once sync.Once
}

// NewMenuScene creates a menu with level preselected.
func NewMenuScene(s *Session, sc SceneChanger, level int) *MenuScene {
	return &MenuScene{session: s, sceneChanger: sc, level: level}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.session.pollChanges("")
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	world := ecs.NewECS(donburi.NewWorld())

	menu := systems.GetMenu(world)
	menu.LevelIndex = ms.level

	audio := world.World.Entry(world.World.Create(components.Audio))
	components.Audio.Get(audio).MasterVolume = ms.session.Settings.VolumeScale()
	primeInput(world, ms.session)

	if ms.session.Input != nil {
		world.AddSystem(systems.NewInputSystem(ms.session.Input))
	}
	world.AddSystem(systems.NewUpdateMenu(ms))
	if ms.session.Audio != nil {
		world.AddSystem(ms.session.Audio.Update)
	}
	world.AddRenderer(cfg.Default, systems.DrawMenu(ms))

	ms.ecs = world
}

func (ms *MenuScene) Settings() cfg.Settings {
	return ms.session.Settings
}

func (ms *MenuScene) ApplySettings(s cfg.Settings) {
	ms.session.ApplySettings(s)
}

func (ms *MenuScene) LevelNames() []string {
	return ms.session.LevelNames()
}

func (ms *MenuScene) Play(levelIndex int) {
	ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.session, ms.sceneChanger, levelIndex))
}

func (ms *MenuScene) Quit() {
	ms.sceneChanger.Quit()
}
