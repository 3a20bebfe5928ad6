package systems

import (
	"sort"

	"github.com/ModricFX/JumpScape-sub000/components"
	"github.com/ModricFX/JumpScape-sub000/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResolvePlatformCollisions pushes the player out of every visible platform it
// overlaps, in level order. The collision space only narrows the candidate
// set; the overlap test and resolution are exact.
func ResolvePlatformCollisions(e *ecs.ECS) {
	entry, player, ok := GetPlayer(e)
	if !ok {
		return
	}
	syncObject(entry, player)

	resolved := false
	for _, p := range platformCandidates(e, entry) {
		platform := components.Platform.Get(p)
		if !platform.Collidable() {
			continue
		}
		if resolvePlatform(player, platform) {
			resolved = true
		}
	}
	if !resolved {
		player.OnPlatform = false
	}

	syncObject(entry, player)
}

// resolvePlatform separates player from one platform along the axis of least
// overlap. Equal overlap resolves vertically.
func resolvePlatform(player *components.PlayerData, platform *components.PlatformData) bool {
	pb := player.Bounds()
	b := platform.Bounds()
	overlap, ok := pb.Overlap(b)
	if !ok {
		return false
	}

	if overlap.W < overlap.H {
		if pb.CenterX() < b.CenterX() {
			player.Position.X -= overlap.W
		} else {
			player.Position.X += overlap.W
		}
		return true
	}

	if pb.CenterY() < b.CenterY() {
		player.Land(b.Y)
		platform.StartCountdown()
	} else {
		player.HitCeiling(b.Bottom())
	}
	return true
}

// platformCandidates returns platform entries that may touch the player,
// sorted by level index. Outside the space every platform is a candidate.
func platformCandidates(e *ecs.ECS, playerEntry *donburi.Entry) []*donburi.Entry {
	var out []*donburi.Entry

	var obj *resolv.Object
	if playerEntry.HasComponent(components.Object) {
		obj = components.Object.Get(playerEntry).Object
	}

	lvl := GetLevel(e)
	inside := obj != nil && lvl != nil &&
		obj.X >= 0 && obj.Y >= 0 &&
		obj.X+obj.W <= lvl.SpaceWidth && obj.Y+obj.H <= lvl.SpaceHeight

	if inside && obj.Space != nil {
		seen := make(map[*donburi.Entry]bool)
		if c := obj.Check(0, 0, tags.ResolvPlatform); c != nil {
			for _, o := range c.Objects {
				pe, ok := o.Data.(*donburi.Entry)
				if !ok || seen[pe] || !pe.Valid() {
					continue
				}
				seen[pe] = true
				out = append(out, pe)
			}
		}
	} else {
		tags.Platform.Each(e.World, func(pe *donburi.Entry) {
			out = append(out, pe)
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return components.Platform.Get(out[i]).Index < components.Platform.Get(out[j]).Index
	})
	return out
}
