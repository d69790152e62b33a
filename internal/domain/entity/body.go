package entity

import "github.com/younwookim/tilekit/internal/domain/collision"

// Body represents the physical body of a moving entity.
// Positions are world pixels, velocity is pixels per second.
type Body struct {
	X, Y       float64
	OldX, OldY float64 // position before the last move
	VX, VY     float64

	OnGround    bool
	OnCeiling   bool
	OnWallLeft  bool
	OnWallRight bool
	FacingRight bool
	WasOnGround bool
}

// NewBody creates a body resting at the given position
func NewBody(x, y float64) *Body {
	return &Body{X: x, Y: y, OldX: x, OldY: y, FacingRight: true}
}

// Position returns the current position
func (b *Body) Position() collision.Point {
	return collision.Point{X: b.X, Y: b.Y}
}

// OldPosition returns the position before the last move
func (b *Body) OldPosition() collision.Point {
	return collision.Point{X: b.OldX, Y: b.OldY}
}

// ApplyVelocity returns the displacement for dt seconds
func (b *Body) ApplyVelocity(dt float64) (dx, dy float64) {
	return b.VX * dt, b.VY * dt
}

// MoveBy records the current position as old position and moves the body
func (b *Body) MoveBy(dx, dy float64) {
	b.OldX, b.OldY = b.X, b.Y
	b.X += dx
	b.Y += dy
}

// ResetContacts clears the collision flags before a new frame
func (b *Body) ResetContacts() {
	b.WasOnGround = b.OnGround
	b.OnGround = false
	b.OnCeiling = false
	b.OnWallLeft = false
	b.OnWallRight = false
}

// AsTarget exposes the body as a moving aim target
func (b *Body) AsTarget() Target {
	return Target{X: b.X, Y: b.Y, OldX: b.OldX, OldY: b.OldY}
}
