package scenes

import (
	"github.com/ModricFX/JumpScape-sub000/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Scene is one screen of the game: the title menu, a level, or the summary.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene Scene)
	Quit()
}

// primeInput loads the actions that are down right now into the world's
// input buffers, so a key held across a scene change is not reported as
// freshly pressed. Call it once the world's entities exist.
func primeInput(world *ecs.ECS, s *Session) {
	if s.Input == nil {
		return
	}
	systems.GetInput(world).Current = s.Input.Poll()
}
