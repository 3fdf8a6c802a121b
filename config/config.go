package config

import "image/color"

// Default is the ECS layer every entity and renderer lives on.
const Default = 0

// PhysicsConfig holds the body defaults applied when a sprite document
// leaves a value unset.
type PhysicsConfig struct {
	Mass       float64
	Friction   float64 // per-tick velocity multiplier
	Gravity    float64
	Elasticity float64
}

// AnimationConfig contains animation-related defaults
type AnimationConfig struct {
	DefaultState string // fallback when a state has no animation
	Scale        float64

	// State forced on an entity struck by a hitbox
	HurtState string

	// State entered when a death sequence starts
	DeathState string

	// Frames a dying entity lingers before removal
	DeathFrames int
}

// CollisionConfig tunes the collision responses.
type CollisionConfig struct {
	// Minimum push applied when two sprites overlap with zero displacement
	MinSeparation float64
}

// DebugConfig contains debug overlay options
type DebugConfig struct {
	Overlay bool // Draw bodies, hitboxes and walls
	Verbose bool // Debug-level logging

	BodyColor    color.RGBA
	HitboxColor  color.RGBA
	HurtboxColor color.RGBA
	WallColor    color.RGBA
	NormalColor  color.RGBA
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Animation AnimationConfig
var Collision CollisionConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		Mass:       1,
		Friction:   0.75,
		Gravity:    0,
		Elasticity: 1,
	}

	Animation = AnimationConfig{
		DefaultState: "idle",
		Scale:        1,
		HurtState:    "hurt",
		DeathState:   "die",
		DeathFrames:  30,
	}

	Collision = CollisionConfig{
		MinSeparation: 1,
	}

	Debug = DebugConfig{
		BodyColor:    color.RGBA{R: 0, G: 255, B: 255, A: 255},
		HitboxColor:  color.RGBA{R: 255, G: 0, B: 0, A: 255},
		HurtboxColor: color.RGBA{R: 0, G: 255, B: 0, A: 255},
		WallColor:    color.RGBA{R: 200, G: 200, B: 200, A: 255},
		NormalColor:  color.RGBA{R: 255, G: 140, B: 0, A: 255},
	}
}
