package factory

import (
	"fmt"
	"io/fs"

	"github.com/automoto/zsengine/archetypes"
	"github.com/automoto/zsengine/components"
	cfg "github.com/automoto/zsengine/config"
	"github.com/automoto/zsengine/shared/gamemath"
	"github.com/automoto/zsengine/shared/leveldata"
	"github.com/automoto/zsengine/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRegion builds a wall region from its document. Inline walls come
// first, followed by the walls of the region's Tiled map when it names one.
func CreateRegion(ecs *ecs.ECS, fsys fs.FS, doc cfg.RegionDoc) (*donburi.Entry, error) {
	data := components.RegionData{Name: doc.Name}

	for _, wd := range doc.Walls {
		w, err := wd.Wall()
		if err != nil {
			return nil, fmt.Errorf("region %q: %w", doc.Name, err)
		}
		data.Walls = append(data.Walls, w)
	}

	if doc.Map != "" {
		level, err := leveldata.LoadLevel(fsys, doc.Map)
		if err != nil {
			return nil, fmt.Errorf("region %q: %w", doc.Name, err)
		}
		data.Level = level
		data.Walls = append(data.Walls, level.Walls...)
	}

	region := archetypes.Region.Spawn(ecs)
	components.Region.SetValue(region, data)
	tags.Join(region, doc.Groups...)
	return region, nil
}

// CreateWalls builds an anonymous region from walls, mostly for tests and
// tools that assemble geometry in code.
func CreateWalls(ecs *ecs.ECS, name string, walls []*gamemath.Wall, groups ...string) *donburi.Entry {
	region := archetypes.Region.Spawn(ecs)
	components.Region.SetValue(region, components.RegionData{Name: name, Walls: walls})
	tags.Join(region, groups...)
	return region
}
