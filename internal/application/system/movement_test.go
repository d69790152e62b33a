package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tilekit/internal/domain/collision"
	"github.com/younwookim/tilekit/internal/domain/entity"
	"github.com/younwookim/tilekit/internal/domain/tile"
	"github.com/younwookim/tilekit/internal/infrastructure/config"
)

const frame = 1.0 / 60.0

func testRegistry(t *testing.T) *collision.Registry {
	t.Helper()
	block := []string{"block"}
	registry, err := collision.NewRegistry(
		[]collision.Formula{
			{Name: "ground", Input: collision.AxisX, Output: collision.AxisY, Min: 0, Max: 16,
				Constraint: collision.Constraint{collision.Top: block}},
			{Name: "ceiling", Input: collision.AxisX, Output: collision.AxisY, Min: 0, Max: 16, Offset: 16,
				Constraint: collision.Constraint{collision.Bottom: block}},
			{Name: "slope_up", Input: collision.AxisX, Output: collision.AxisY, Min: 0, Max: 16, Coefficient: -1, Offset: 16},
			{Name: "wall_left", Input: collision.AxisY, Output: collision.AxisX, Min: 0, Max: 16,
				Constraint: collision.Constraint{collision.Left: block}},
			{Name: "wall_right", Input: collision.AxisY, Output: collision.AxisX, Min: 0, Max: 16, Offset: 16,
				Constraint: collision.Constraint{collision.Right: block}},
		},
		[]collision.Group{
			{Name: "block", Formulas: []string{"ground", "ceiling", "wall_left", "wall_right"}},
			{Name: "slope", Formulas: []string{"slope_up"}},
		},
		[]collision.Category{
			{Name: "feet", Axis: collision.AxisY, OffsetY: 8, Formulas: []string{"ground", "slope_up"}},
			{Name: "head", Axis: collision.AxisY, OffsetY: -8, Formulas: []string{"ceiling"}},
			{Name: "wall", Axis: collision.AxisX, Formulas: []string{"wall_left", "wall_right"}},
			{Name: "point", Axis: collision.AxisY, Formulas: []string{"ground"}},
		},
	)
	require.NoError(t, err)
	return registry
}

func testPhysics() *config.PhysicsConfig {
	return &config.PhysicsConfig{
		Physics: config.PhysicsSettings{Framerate: 60, Gravity: 800, MaxFallSpeed: 400, StepHeight: 4},
		Collision: config.CollisionCategories{
			Ground:  []string{"feet"},
			Ceiling: []string{"head"},
			Walls:   []string{"wall"},
		},
		Projectile: config.ProjectileBehaviorConfig{
			GravityAccel:  500,
			MaxFallSpeed:  350,
			StuckDuration: 0.5,
			Categories:    []string{"point"},
		},
	}
}

// room is 10x6 tiles: a ceiling row, a floor row at ty=4, a wall column at tx=8
// and a slope at (3,3) climbing onto a block at (4,3)
func room() *tile.Stage {
	s := tile.NewStage(10, 6, 16, 16)
	for x := 0; x < 10; x++ {
		s.Set(x, 0, 0, 1, "block")
		s.Set(x, 4, 0, 1, "block")
		s.Set(x, 5, 0, 1, "block")
	}
	for y := 1; y < 4; y++ {
		s.Set(8, y, 0, 1, "block")
	}
	s.Set(3, 3, 0, 2, "slope")
	s.Set(4, 3, 0, 1, "block")
	return s
}

func newTestSystem(t *testing.T) *MovementSystem {
	t.Helper()
	registry := testRegistry(t)
	sys, err := NewMovementSystem(testPhysics(), collision.NewResolver(room(), registry), registry)
	require.NoError(t, err)
	return sys
}

func TestNewMovementSystem_UnknownCategory(t *testing.T) {
	registry := testRegistry(t)
	cfg := testPhysics()
	cfg.Collision.Walls = []string{"missing"}

	_, err := NewMovementSystem(cfg, collision.NewResolver(room(), registry), registry)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestMovementSystem_LandsOnGround(t *testing.T) {
	sys := newTestSystem(t)
	body := entity.NewBody(24, 30)

	for i := 0; i < 120 && !body.OnGround; i++ {
		sys.Update(body, frame)
	}

	require.True(t, body.OnGround)
	assert.Equal(t, 56.0, body.Y, "feet rest on the floor top")
	assert.Equal(t, 0.0, body.VY)

	for i := 0; i < 10; i++ {
		sys.Update(body, frame)
		assert.True(t, body.OnGround, "stays grounded")
		assert.Equal(t, 56.0, body.Y)
	}
}

func TestMovementSystem_HitsWall(t *testing.T) {
	sys := newTestSystem(t)
	body := entity.NewBody(100, 56)
	body.OnGround = true
	body.VX = 120

	for i := 0; i < 60 && !body.OnWallRight; i++ {
		sys.Update(body, frame)
	}

	require.True(t, body.OnWallRight)
	assert.Equal(t, 128.0, body.X)
	assert.Equal(t, 0.0, body.VX)
	assert.True(t, body.FacingRight)
}

func TestMovementSystem_WallFromTheRight(t *testing.T) {
	sys := newTestSystem(t)
	body := entity.NewBody(150, 56)
	body.OnGround = true
	body.VX = -120

	for i := 0; i < 60 && !body.OnWallLeft; i++ {
		sys.Update(body, frame)
	}

	require.True(t, body.OnWallLeft)
	assert.Equal(t, 144.0, body.X)
	assert.False(t, body.FacingRight)
}

func TestMovementSystem_HitsCeiling(t *testing.T) {
	sys := newTestSystem(t)
	body := entity.NewBody(100, 40)
	body.VY = -300

	for i := 0; i < 30 && !body.OnCeiling; i++ {
		sys.Update(body, frame)
	}

	require.True(t, body.OnCeiling)
	assert.Equal(t, 24.0, body.Y, "head stops under the ceiling row")
	assert.Equal(t, 0.0, body.VY)
}

func TestMovementSystem_ClimbsSlope(t *testing.T) {
	sys := newTestSystem(t)
	body := entity.NewBody(40, 56)
	body.OnGround = true
	body.VX = 60

	for i := 0; i < 16; i++ {
		sys.Update(body, frame)
		require.True(t, body.OnGround, "frame %d at x=%v", i, body.X)
	}

	require.Greater(t, body.X, 48.0)
	require.Less(t, body.X, 64.0)
	surface := 48 + (16 - (body.X - 48))
	assert.InDelta(t, surface-8, body.Y, 1e-6)
}

func TestMovementSystem_MaxFallSpeed(t *testing.T) {
	registry := testRegistry(t)
	sys, err := NewMovementSystem(testPhysics(), collision.NewResolver(tile.NewStage(4, 400, 16, 16), registry), registry)
	require.NoError(t, err)

	body := entity.NewBody(8, 0)
	for i := 0; i < 120; i++ {
		sys.Update(body, frame)
	}

	assert.Equal(t, 400.0, body.VY)
	assert.False(t, body.OnGround)
}

func TestMovementSystem_Projectile(t *testing.T) {
	sys := newTestSystem(t)
	p := entity.NewProjectile(24, 40, entity.StaticTarget(100, 40), entity.Force{Horizontal: 1, Vertical: 1}, 60, 500, 350)

	for i := 0; i < 120 && !p.Stuck; i++ {
		sys.UpdateProjectile(p, frame)
	}

	require.True(t, p.Stuck)
	assert.Equal(t, 64.0, p.Y, "sticks on the floor surface")
	assert.Equal(t, 0.0, p.VX)
	assert.True(t, p.Active)

	for i := 0; i < 40; i++ {
		sys.UpdateProjectile(p, frame)
	}
	assert.False(t, p.Active, "expires after the stuck duration")
}
