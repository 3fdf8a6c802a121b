package factory

import (
	"fmt"
	"io/fs"

	"github.com/automoto/zsengine/components"
	cfg "github.com/automoto/zsengine/config"
	"github.com/automoto/zsengine/shared/logger"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// LoadScene populates ecs from a validated scene document. Animation sets and
// Tiled maps are read from fsys. Regions are built before sprites so sprites
// can be placed on map spawn points.
func LoadScene(ecs *ecs.ECS, fsys fs.FS, scene *cfg.Scene) error {
	if err := scene.Validate(); err != nil {
		return err
	}

	sets, err := scene.LoadAnimationSets(fsys)
	if err != nil {
		return fmt.Errorf("scene %q: %w", scene.Name, err)
	}

	var regions []*components.RegionData
	width, height := cfg.C.Width, cfg.C.Height
	for _, doc := range scene.Regions {
		e, err := CreateRegion(ecs, fsys, doc)
		if err != nil {
			return fmt.Errorf("scene %q: %w", scene.Name, err)
		}
		region := components.Region.Get(e)
		regions = append(regions, region)

		if region.Level != nil {
			width = max(width, region.Level.MapWidth)
			height = max(height, region.Level.MapHeight)
		}
	}

	// Now create the space using the largest map's dimensions.
	CreateSpace(ecs, width, height, spaceCellSize, spaceCellSize)

	for _, doc := range scene.Sprites {
		x, y, err := placement(doc, regions)
		if err != nil {
			return fmt.Errorf("scene %q: %w", scene.Name, err)
		}
		if _, err := CreateSprite(ecs, sets[doc.Animation], doc, x, y); err != nil {
			return fmt.Errorf("scene %q: %w", scene.Name, err)
		}
	}

	if _, err := CreateCollisionLayer(ecs, scene.Collisions); err != nil {
		return fmt.Errorf("scene %q: %w", scene.Name, err)
	}

	logger.L().Info("scene loaded",
		zap.String("scene", scene.Name),
		zap.Int("regions", len(scene.Regions)),
		zap.Int("sprites", len(scene.Sprites)),
		zap.Int("collisions", len(scene.Collisions)),
	)
	return nil
}

// placement resolves a sprite's start position: an explicit position wins,
// otherwise the named spawn point of the first map that has it.
func placement(doc cfg.SpriteDoc, regions []*components.RegionData) (float64, float64, error) {
	if len(doc.Position) == 2 {
		return doc.Position[0], doc.Position[1], nil
	}

	if doc.Spawn != "" {
		for _, r := range regions {
			if r.Level == nil {
				continue
			}
			if sp, ok := r.Level.Spawn(doc.Spawn); ok {
				return sp.X, sp.Y, nil
			}
		}
		return 0, 0, fmt.Errorf("sprite %q: spawn point %q not found", doc.Name, doc.Spawn)
	}

	return 0, 0, fmt.Errorf("sprite %q: needs a position or a spawn point", doc.Name)
}
