package system

import (
	"fmt"
	"math"

	"github.com/younwookim/tilekit/internal/domain/collision"
	"github.com/younwookim/tilekit/internal/domain/entity"
	"github.com/younwookim/tilekit/internal/infrastructure/config"
)

// MovementSystem moves bodies through a stage and resolves tile collisions
type MovementSystem struct {
	physics  config.PhysicsSettings
	resolver *collision.Resolver

	ground     []*collision.Category
	ceiling    []*collision.Category
	walls      []*collision.Category
	projectile []*collision.Category

	stuckDuration float64
}

// NewMovementSystem resolves the configured category names against the registry
func NewMovementSystem(cfg *config.PhysicsConfig, resolver *collision.Resolver, registry *collision.Registry) (*MovementSystem, error) {
	s := &MovementSystem{
		physics:       cfg.Physics,
		resolver:      resolver,
		stuckDuration: cfg.Projectile.StuckDuration,
	}

	var err error
	if s.ground, err = lookupCategories(registry, cfg.Collision.Ground); err != nil {
		return nil, err
	}
	if s.ceiling, err = lookupCategories(registry, cfg.Collision.Ceiling); err != nil {
		return nil, err
	}
	if s.walls, err = lookupCategories(registry, cfg.Collision.Walls); err != nil {
		return nil, err
	}
	if s.projectile, err = lookupCategories(registry, cfg.Projectile.Categories); err != nil {
		return nil, err
	}
	return s, nil
}

func lookupCategories(registry *collision.Registry, names []string) ([]*collision.Category, error) {
	out := make([]*collision.Category, 0, len(names))
	for _, name := range names {
		c, ok := registry.Category(name)
		if !ok {
			return nil, fmt.Errorf("physics config: unknown collision category %q", name)
		}
		out = append(out, c)
	}
	return out, nil
}

// Update applies gravity then moves the body, X first, then Y
func (s *MovementSystem) Update(body *entity.Body, dt float64) {
	body.ResetContacts()

	body.VY += s.physics.Gravity * dt
	if body.VY > s.physics.MaxFallSpeed {
		body.VY = s.physics.MaxFallSpeed
	}

	dx, dy := body.ApplyVelocity(dt)
	body.OldX, body.OldY = body.X, body.Y

	s.moveX(body, dx)
	s.moveY(body, dx, dy)

	if body.VX > 0 {
		body.FacingRight = true
	} else if body.VX < 0 {
		body.FacingRight = false
	}
}

func (s *MovementSystem) moveX(body *entity.Body, dx float64) {
	if dx == 0 {
		return
	}

	from := body.Position()
	to := collision.Point{X: from.X + dx, Y: from.Y}
	if x, ok := nearest(s.resolver.ComputeCollisions(from, to, s.walls...), dx, xOf); ok {
		body.X = x
		body.VX = 0
		if dx > 0 {
			body.OnWallRight = true
		} else {
			body.OnWallLeft = true
		}
		return
	}
	body.X = to.X
}

func (s *MovementSystem) moveY(body *entity.Body, dx, dy float64) {
	switch {
	case dy < 0:
		from := body.Position()
		to := collision.Point{X: from.X, Y: from.Y + dy}
		if y, ok := nearest(s.resolver.ComputeCollisions(from, to, s.ceiling...), dy, yOf); ok {
			body.Y = y
			body.VY = 0
			body.OnCeiling = true
			return
		}
		body.Y = to.Y

	case dy > 0:
		// Grounded bodies probe above and below the feet so they follow slopes.
		lift := 0.0
		down := dy
		if body.WasOnGround {
			lift = math.Max(s.physics.StepHeight, math.Abs(dx))
			down = math.Max(dy, lift)
		}
		from := collision.Point{X: body.X, Y: body.Y - lift}
		to := collision.Point{X: body.X, Y: body.Y + down}
		if y, ok := nearest(s.resolver.ComputeCollisions(from, to, s.ground...), 1, yOf); ok {
			body.Y = y
			body.VY = 0
			body.OnGround = true
			return
		}
		body.Y += dy
	}
}

// UpdateProjectile advances a projectile and sticks it into the first tile it hits
func (s *MovementSystem) UpdateProjectile(p *entity.Projectile, dt float64) {
	if !p.Active {
		return
	}
	p.Update(dt)
	if p.Stuck || !p.Active {
		return
	}

	dx, dy := p.ApplyVelocity(dt)
	from := p.Position()
	to := collision.Point{X: from.X + dx, Y: from.Y + dy}
	for _, res := range s.resolver.ComputeCollisions(from, to, s.projectile...) {
		if !res.Collided() {
			continue
		}
		x, y := to.X, to.Y
		if res.X != nil {
			x = *res.X
		}
		if res.Y != nil {
			y = *res.Y
		}
		p.OldX, p.OldY = p.X, p.Y
		p.StickTo(x, y, s.stuckDuration)
		return
	}
	p.MoveBy(dx, dy)
}

func xOf(r collision.Result) *float64 { return r.X }
func yOf(r collision.Result) *float64 { return r.Y }

// nearest picks the first coordinate met when travelling in direction dir
func nearest(results []collision.Result, dir float64, coord func(collision.Result) *float64) (float64, bool) {
	var best float64
	found := false
	for _, r := range results {
		v := coord(r)
		if v == nil {
			continue
		}
		if !found || (dir > 0 && *v < best) || (dir < 0 && *v > best) {
			best = *v
			found = true
		}
	}
	return best, found
}
