package components

import (
	"github.com/automoto/zsengine/shared/animation"
	"github.com/yohamta/donburi"
)

// StateData holds an entity's animation state machine.
type StateData struct {
	*animation.Machine
}

var State = donburi.NewComponentType[StateData]()
