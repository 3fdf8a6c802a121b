package components

import "github.com/yohamta/donburi"

// MovementData gates directional movement on the animation state. States
// maps a state to its speed multiplier; a state missing from it does not
// move. Facing lists the states in which held directions turn the sprite.
type MovementData struct {
	Speed  float64
	States map[string]float64
	Facing map[string]bool
}

var Movement = donburi.NewComponentType[MovementData]()
