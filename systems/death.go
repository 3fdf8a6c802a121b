package systems

import (
	"github.com/automoto/zsengine/components"
	cfg "github.com/automoto/zsengine/config"
	"github.com/automoto/zsengine/events"
	"github.com/automoto/zsengine/shared/logger"
	"github.com/automoto/zsengine/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Kill starts e's death sequence. After frames ticks it leaves every group
// and the world. Entities with a death state are switched into it. Killing
// a dying entity does nothing.
func Kill(e *donburi.Entry, frames int) {
	if e.HasComponent(components.Death) {
		return
	}
	donburi.Add(e, components.Death, &components.DeathData{Timer: frames})

	if e.HasComponent(components.State) {
		m := components.State.Get(e)
		if m.HasState(cfg.Animation.DeathState) {
			m.SetState(cfg.Animation.DeathState)
		}
	}
}

// UpdateDeaths counts down dying entities. Removal happens after the scan
// so membership never changes mid-iteration.
func UpdateDeaths(ecs *ecs.ECS) {
	var expired []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer--
		if death.Timer <= 0 {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		remove(ecs.World, e)
	}
}

func remove(w donburi.World, e *donburi.Entry) {
	name := spriteName(e)
	tags.LeaveAll(e)

	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}

	events.Died.Publish(w, events.DeathData{Entity: e.Entity(), Name: name})
	logger.L().Debug("entity removed", zap.String("sprite", name))

	w.Remove(e.Entity())
}
