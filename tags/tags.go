package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	Monster  = donburi.NewTag().SetName("Monster")
	Ghost    = donburi.NewTag().SetName("Ghost")
	Key      = donburi.NewTag().SetName("Key")
	Door     = donburi.NewTag().SetName("Door")
)

// Resolv tags for physics collision
const (
	ResolvPlatform = "platform"
	ResolvPlayer   = "player"
)
