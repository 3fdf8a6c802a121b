// Package leveldata turns Tiled TMX maps into region walls and spawn points.
// It has no dependencies on ebitengine or donburi.
package leveldata

import "github.com/automoto/zsengine/shared/gamemath"

// Layer and object group names read from a map.
const (
	SolidLayer  = "solid"
	WallsGroup  = "Walls"
	SpawnsGroup = "Spawns"

	// InsideProperty marks a closed Walls object as an enclosure.
	InsideProperty = "inside"
)

// LevelData holds the collision geometry parsed from a TMX file.
type LevelData struct {
	Walls     []*gamemath.Wall
	Spawns    []SpawnPoint
	MapWidth  int
	MapHeight int
}

// SpawnPoint is a named entity placement.
type SpawnPoint struct {
	Name string
	X, Y float64
}

// Spawn looks up a spawn point by name.
func (d *LevelData) Spawn(name string) (SpawnPoint, bool) {
	for _, s := range d.Spawns {
		if s.Name == name {
			return s, true
		}
	}
	return SpawnPoint{}, false
}
