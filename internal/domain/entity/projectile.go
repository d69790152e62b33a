package entity

// Projectile represents a launched projectile (arrows, etc.)
type Projectile struct {
	Body
	Active bool

	GravityAccel float64
	MaxFallSpeed float64

	// Stuck state (when hitting a tile)
	Stuck         bool
	StuckTimer    float64
	StuckDuration float64
}

// NewProjectile launches a projectile from (x, y) toward the target.
// Velocity is the aim vector scaled to pixels per second at the given framerate.
func NewProjectile(x, y float64, target Target, force Force, framerate, gravityAccel, maxFallSpeed float64) *Projectile {
	vec := ComputeVector(x, y, target, force)
	p := &Projectile{
		Body:         *NewBody(x, y),
		Active:       true,
		GravityAccel: gravityAccel,
		MaxFallSpeed: maxFallSpeed,
	}
	p.VX = vec.Horizontal * framerate
	p.VY = vec.Vertical * framerate
	p.FacingRight = p.VX >= 0
	return p
}

// Update applies gravity, or advances the stuck timer
func (p *Projectile) Update(dt float64) {
	if !p.Active {
		return
	}

	if p.Stuck {
		p.StuckTimer += dt
		if p.StuckTimer >= p.StuckDuration {
			p.Active = false
		}
		return
	}

	p.VY += p.GravityAccel * dt
	if p.VY > p.MaxFallSpeed {
		p.VY = p.MaxFallSpeed
	}
}

// StickTo pins the projectile at the collision point for duration seconds
func (p *Projectile) StickTo(x, y, duration float64) {
	p.X, p.Y = x, y
	p.Stuck = true
	p.StuckTimer = 0
	p.StuckDuration = duration
	p.VX = 0
	p.VY = 0
}
