package gamemath

// Attenuate maps a listener distance to a volume in [0, master]. Distances are
// clamped to [minDist, maxDist]; minDist plays at full volume and maxDist is
// silent.
func Attenuate(dist, minDist, maxDist, master float64) float64 {
	if maxDist <= minDist {
		return master
	}
	d := Clamp(dist, minDist, maxDist)
	return (1 - (d-minDist)/(maxDist-minDist)) * master
}

// Pan returns a stereo pan in [-1, 1] for a source at sourceX heard by a
// listener at listenerX. Negative values are left of the listener.
func Pan(sourceX, listenerX, maxDist float64) float64 {
	if maxDist <= 0 {
		return 0
	}
	return Clamp((sourceX-listenerX)/maxDist, -1, 1)
}
