package components

import (
	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/ModricFX/JumpScape-sub000/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type DoorState int

const (
	DoorLocked DoorState = iota
	DoorUnlocked
	DoorOpened
)

func (s DoorState) String() string {
	switch s {
	case DoorLocked:
		return "locked"
	case DoorUnlocked:
		return "unlocked"
	case DoorOpened:
		return "opened"
	}
	return "unknown"
}

// DoorEvent reports what an interaction did.
type DoorEvent int

const (
	DoorEventNone DoorEvent = iota
	DoorEventUnlocked
	DoorEventOpened
)

// DoorData is the level exit.
type DoorData struct {
	Position dmath.Vec2
	Width    float64
	Height   float64
	State    DoorState

	// OpenAmount runs 0..1 once opened; drawing only.
	OpenAmount float64
	openTween  *gween.Tween
}

var Door = donburi.NewComponentType[DoorData]()

func NewDoorData(x, y float64, locked bool) DoorData {
	state := DoorUnlocked
	if locked {
		state = DoorLocked
	}
	return DoorData{
		Position: dmath.NewVec2(x, y),
		Width:    cfg.Item.DoorWidth,
		Height:   cfg.Item.DoorHeight,
		State:    state,
	}
}

func (d *DoorData) Bounds() gamemath.Rect {
	return gamemath.NewRect(d.Position.X, d.Position.Y, d.Width, d.Height)
}

// Unlock consumes a key from inv. Doors that are not locked are left alone.
func (d *DoorData) Unlock(inv Inventory) bool {
	if d.State != DoorLocked {
		return false
	}
	if !inv.RemoveFirstOfKind(ItemKey) {
		return false
	}
	d.State = DoorUnlocked
	return true
}

// Open moves an unlocked door to Opened.
func (d *DoorData) Open() bool {
	if d.State != DoorUnlocked {
		return false
	}
	d.State = DoorOpened
	d.openTween = gween.New(0, 1, float32(cfg.Item.DoorOpenTime), ease.OutQuad)
	return true
}

// Interact advances the door by one step.
func (d *DoorData) Interact(inv Inventory) DoorEvent {
	switch d.State {
	case DoorLocked:
		if d.Unlock(inv) {
			return DoorEventUnlocked
		}
	case DoorUnlocked:
		if d.Open() {
			return DoorEventOpened
		}
	}
	return DoorEventNone
}

// Animate advances the opening tween.
func (d *DoorData) Animate(dt float64) {
	if d.openTween == nil {
		return
	}
	v, done := d.openTween.Update(float32(dt))
	d.OpenAmount = float64(v)
	if done {
		d.openTween = nil
	}
}
