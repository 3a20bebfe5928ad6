package components

import "github.com/yohamta/donburi"

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Remaining float64 // seconds
	Elapsed   float64 // seconds, drives the oscillation
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
