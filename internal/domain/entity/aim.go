package entity

import "math"

// Force is a launch speed per axis (pixels per frame)
type Force struct {
	Horizontal float64
	Vertical   float64
}

// Target is something to aim at. It always carries its previous position;
// a static target has the previous position equal to the current one.
type Target struct {
	X, Y       float64
	OldX, OldY float64
}

// StaticTarget returns a target that did not move
func StaticTarget(x, y float64) Target {
	return Target{X: x, Y: y, OldX: x, OldY: y}
}

// ComputeVector returns the launch vector from (sx, sy) toward the target,
// leading it by its last movement scaled with the distance. The dominant axis
// gets the full force, the other one is proportional.
func ComputeVector(sx, sy float64, target Target, force Force) Force {
	ray := math.Hypot(target.X-sx, target.Y-sy)

	dx := target.X + lead(target.X-target.OldX, force.Horizontal, ray)
	dy := target.Y + lead(target.Y-target.OldY, force.Vertical, ray)

	dist := math.Max(math.Abs(sx-dx), math.Abs(sy-dy))
	if dist == 0 {
		return Force{}
	}
	return Force{
		Horizontal: (dx - sx) / dist * force.Horizontal,
		Vertical:   (dy - sy) / dist * force.Vertical,
	}
}

// lead is the number of pixels the target travels while the projectile covers ray
func lead(moved, speed, ray float64) float64 {
	if speed == 0 {
		return 0
	}
	return math.Trunc(moved / speed * ray)
}
