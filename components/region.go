package components

import (
	"github.com/automoto/zsengine/shared/gamemath"
	"github.com/automoto/zsengine/shared/leveldata"
	"github.com/yohamta/donburi"
)

// RegionData is static world geometry sprites collide against.
type RegionData struct {
	Name  string
	Walls []*gamemath.Wall

	// Level is set when the walls came from a Tiled map.
	Level *leveldata.LevelData
}

var Region = donburi.NewComponentType[RegionData]()
