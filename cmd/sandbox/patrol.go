package main

import (
	"github.com/automoto/zsengine/components"
	"github.com/automoto/zsengine/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

const (
	patrolDistance = 120
	patrolSeconds  = 3
	patrolSlack    = 4
)

// patrol walks a sprite back and forth by chasing a tweened target x with its
// left/right controls.
type patrol struct {
	route *gween.Sequence
}

func newPatrol(fromX float64) *patrol {
	x := float32(fromX)
	return &patrol{
		route: gween.NewSequence(
			gween.New(x, x-patrolDistance, patrolSeconds, ease.InOutQuad),
			gween.New(x-patrolDistance, x, patrolSeconds, ease.InOutQuad),
		),
	}
}

func (p *patrol) steer(e *donburi.Entry) {
	target, _, done := p.route.Update(1 / float32(config.C.TPS))
	if done {
		p.route.Reset()
	}

	x := components.Object.Get(e).X
	ctrl := components.Controller.Get(e)
	ctrl.Set("left", x > float64(target)+patrolSlack)
	ctrl.Set("right", x < float64(target)-patrolSlack)
}
