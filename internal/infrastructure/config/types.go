package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Physics    PhysicsSettings          `json:"physics"`
	Collision  CollisionCategories      `json:"collision"`
	Projectile ProjectileBehaviorConfig `json:"projectile"`
}

type PhysicsSettings struct {
	Framerate    int     `json:"framerate"`
	Gravity      float64 `json:"gravity"`
	MaxFallSpeed float64 `json:"maxFallSpeed"`
	StepHeight   float64 `json:"stepHeight"` // pixels a grounded body climbs or drops per frame
}

// CollisionCategories names the categories the movement system resolves.
// Ground is tested when falling, Ceiling when rising, Walls on horizontal moves.
type CollisionCategories struct {
	Ground  []string `json:"ground"`
	Ceiling []string `json:"ceiling"`
	Walls   []string `json:"walls"`
}

// ProjectileBehaviorConfig configures projectile physics behavior
type ProjectileBehaviorConfig struct {
	GravityAccel  float64  `json:"gravityAccel"`
	MaxFallSpeed  float64  `json:"maxFallSpeed"`
	StuckDuration float64  `json:"stuckDuration"` // seconds a projectile stays in a tile
	Categories    []string `json:"categories"`
}
