package components

import (
	"github.com/automoto/zsengine/shared/physics"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	*physics.Body
}

var Physics = donburi.NewComponentType[PhysicsData]()
