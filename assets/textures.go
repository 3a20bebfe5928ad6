package assets

import (
	"image"
	"image/color"
	"math"

	"github.com/ModricFX/JumpScape-sub000/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite names for Image.
const (
	SpritePlayer       = "player"
	SpriteMonster      = "monster"
	SpriteMonsterAlert = "monster_alert"
	SpriteGhost        = "ghost"
	SpriteDoorLocked   = "door_locked"
	SpriteDoorOpen     = "door_open"
	SpriteHeartFull    = "heart_full"
	SpriteHeartHalf    = "heart_half"
	SpriteHeartEmpty   = "heart_empty"
)

var imageCache = make(map[string]*ebiten.Image)

// Image returns the cached ebiten image for a sprite name, building it on
// first use.
func Image(name string) *ebiten.Image {
	if img, ok := imageCache[name]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(Pixels(name))
	imageCache[name] = img
	return img
}

// KeyFrame returns one frame of the spinning key.
func KeyFrame(frame int) *ebiten.Image {
	n := config.Item.KeyFrameCount
	if n <= 0 {
		n = 1
	}
	frame = ((frame % n) + n) % n
	name := "key_" + string(rune('0'+frame))
	if img, ok := imageCache[name]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(keyPixels(frame, n))
	imageCache[name] = img
	return img
}

// Pixels draws the sprite on the CPU. Unknown names give a magenta square.
func Pixels(name string) *image.RGBA {
	switch name {
	case SpritePlayer:
		return characterPixels(int(config.Player.Width), int(config.Player.Height), config.LightBlue, config.DarkBlue)
	case SpriteMonster:
		return characterPixels(int(config.Monster.Width), int(config.Monster.Height), config.BrightGreen, color.RGBA{0, 120, 30, 255})
	case SpriteMonsterAlert:
		return characterPixels(int(config.Monster.Width), int(config.Monster.Height), config.LightRed, color.RGBA{140, 0, 0, 255})
	case SpriteGhost:
		return ghostPixels(int(config.Ghost.Width), int(config.Ghost.Height))
	case SpriteDoorLocked:
		return doorPixels(int(config.Item.DoorWidth), int(config.Item.DoorHeight), true)
	case SpriteDoorOpen:
		return doorPixels(int(config.Item.DoorWidth), int(config.Item.DoorHeight), false)
	case SpriteHeartFull:
		return heartPixels(int(config.HUD.HeartSize), 1)
	case SpriteHeartHalf:
		return heartPixels(int(config.HUD.HeartSize), 0.5)
	case SpriteHeartEmpty:
		return heartPixels(int(config.HUD.HeartSize), 0)
	}
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	fill(img, img.Bounds(), color.RGBA{255, 0, 255, 255})
	return img
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func characterPixels(w, h int, body, outline color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(img, img.Bounds(), outline)
	fill(img, image.Rect(2, 2, w-2, h-2), body)
	// Eyes sit on the right; renderers flip for left-facing.
	eye := max(w/8, 2)
	fill(img, image.Rect(w/2, h/5, w/2+eye, h/5+eye), config.White)
	fill(img, image.Rect(w*3/4, h/5, w*3/4+eye, h/5+eye), config.White)
	return img
}

func ghostPixels(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cx, cy, r := float64(w)/2, float64(h)/2, float64(min(w, h))/2
	body := color.RGBA{230, 230, 255, 200}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			// Round head, square skirt.
			if fy > cy || math.Hypot(fx-cx, fy-cy) <= r {
				img.SetRGBA(x, y, body)
			}
		}
	}
	eye := max(w/8, 2)
	fill(img, image.Rect(w/3-eye/2, h/3, w/3+eye/2+1, h/3+eye), color.RGBA{20, 20, 40, 255})
	fill(img, image.Rect(2*w/3-eye/2, h/3, 2*w/3+eye/2+1, h/3+eye), color.RGBA{20, 20, 40, 255})
	return img
}

func doorPixels(w, h int, locked bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	frame := color.RGBA{90, 60, 30, 255}
	fill(img, img.Bounds(), frame)
	if locked {
		fill(img, image.Rect(4, 4, w-4, h), color.RGBA{150, 100, 50, 255})
		fill(img, image.Rect(w-16, h/2-4, w-8, h/2+4), config.Yellow)
	} else {
		fill(img, image.Rect(4, 4, w-4, h), color.RGBA{10, 10, 20, 255})
	}
	return img
}

func heartPixels(size int, filled float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)
	cut := int(s * filled)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			// Implicit heart curve scaled to the unit square.
			u := (float64(x)+0.5)/s*2.4 - 1.2
			v := 1.1 - (float64(y)+0.5)/s*2.4
			a := u*u + v*v - 1
			if a*a*a-u*u*v*v*v > 0 {
				continue
			}
			c := color.RGBA{70, 20, 20, 255}
			if x < cut {
				c = config.Red
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// keyPixels fakes a spin by narrowing the key horizontally.
func keyPixels(frame, frames int) *image.RGBA {
	w, h := int(config.Item.KeyWidth), int(config.Item.KeyHeight)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scale := math.Abs(math.Cos(float64(frame) / float64(frames) * math.Pi))
	half := max(int(float64(w)/2*scale), 1)
	cx := w / 2
	fill(img, image.Rect(cx-half, 0, cx+half, h/2), config.Yellow)
	fill(img, image.Rect(cx-max(half/3, 1), h/2, cx+max(half/3, 1), h), config.Yellow)
	fill(img, image.Rect(cx, h*3/4, cx+max(half/2, 1), h*3/4+3), config.Yellow)
	return img
}
