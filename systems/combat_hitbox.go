package systems

import (
	"github.com/automoto/zsengine/components"
	"github.com/automoto/zsengine/events"
	"github.com/automoto/zsengine/shared/animation"
	"github.com/automoto/zsengine/shared/logger"
	"github.com/automoto/zsengine/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// ResolveHitboxes returns e's world-space hitboxes for its current frame. A
// non-empty key keeps only hitboxes tagged with it.
func ResolveHitboxes(e *donburi.Entry, key string) []animation.Hitbox {
	if !e.HasComponent(components.State) || !e.HasComponent(components.Object) {
		return nil
	}
	obj := components.Object.Get(e)
	return components.State.Get(e).ResolveHitboxes(spriteScale(e), obj.Position(), key)
}

// HitboxPairTest returns the hitboxes of a that touch any of b's hurtboxes
// or b's body rectangle.
func HitboxPairTest(a, b *donburi.Entry) []animation.Hitbox {
	attacks := ResolveHitboxes(a, "")
	if len(attacks) == 0 {
		return nil
	}

	targets := append(
		[]animation.Hitbox{animation.RectHitbox("body", BodyRect(b))},
		ResolveHitboxes(b, animation.HurtboxKey)...,
	)

	var hits []animation.Hitbox
	for _, h := range attacks {
		for _, t := range targets {
			if h.Overlaps(t) {
				hits = append(hits, h)
				break
			}
		}
	}
	return hits
}

// ReactState returns a hit response that forces the struck entity into
// state. Entities already in it, or without it, are left alone.
func ReactState(state string) components.HitResponse {
	return reactState(state, false)
}

// RestartState is ReactState, except that an entity already in state is
// put back to its first frame, so every hit renews the reaction.
func RestartState(state string) components.HitResponse {
	return reactState(state, true)
}

func reactState(state string, restart bool) components.HitResponse {
	return func(w donburi.World, struck *donburi.Entry, hits []animation.Hitbox) {
		if !struck.HasComponent(components.State) {
			return
		}
		m := components.State.Get(struck)
		if !m.HasState(state) || (m.State() == state && !restart) {
			return
		}

		logger.L().Debug("hit reaction",
			zap.String("sprite", spriteName(struck)),
			zap.String("from", m.State()),
			zap.String("to", state),
			zap.Int("hitboxes", len(hits)),
		)
		m.SetState(state)
	}
}

// spriteVsHitbox tests every unordered pair both ways before responding, so
// mutual hits on the same tick are both seen from pre-response state.
func spriteVsHitbox(w donburi.World, s components.CollisionSystem) {
	respond := s.HitResponse
	if respond == nil {
		respond = ReactState(defaultHurtState())
	}

	members := tags.Members(w, s.GroupA)
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			a, b := members[i], members[j]
			if !a.Valid() || !b.Valid() {
				continue
			}

			guard(s, func() {
				aHits := HitboxPairTest(a, b)
				bHits := HitboxPairTest(b, a)

				if len(aHits) > 0 {
					landHit(w, s, a, b, aHits, respond)
				}
				if len(bHits) > 0 {
					landHit(w, s, b, a, bHits, respond)
				}
			})
		}
	}
}

func landHit(w donburi.World, s components.CollisionSystem, attacker, struck *donburi.Entry, hits []animation.Hitbox, respond components.HitResponse) {
	events.HitLanded.Publish(w, events.HitData{
		System:   s.Name,
		Attacker: attacker.Entity(),
		Struck:   struck.Entity(),
		Hitboxes: hits,
	})
	respond(w, struck, hits)
}
