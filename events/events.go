// Package events publishes simulation happenings to listeners outside the
// core. Events are queued during a tick and delivered by
// ProcessAll at the end of it.
package events

import (
	"github.com/automoto/zsengine/shared/animation"
	"github.com/automoto/zsengine/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type StateChangeData struct {
	Entity   donburi.Entity
	Machine  string
	From, To string
}

// HitData reports that Attacker's hitboxes struck Struck.
type HitData struct {
	System   string
	Attacker donburi.Entity
	Struck   donburi.Entity
	Hitboxes []animation.Hitbox
}

type WallContactData struct {
	System string
	Entity donburi.Entity
	Wall   string
	Point  gamemath.Point
}

type SpriteContactData struct {
	System string
	A, B   donburi.Entity
}

// SoundCueData marks the tick a sprite's animation reaches its sound frame.
type SoundCueData struct {
	Entity donburi.Entity
	Sprite string
	State  string
}

type DeathData struct {
	Entity donburi.Entity
	Name   string
}

var (
	StateChanged  = events.NewEventType[StateChangeData]()
	HitLanded     = events.NewEventType[HitData]()
	WallContact   = events.NewEventType[WallContactData]()
	SpriteContact = events.NewEventType[SpriteContactData]()
	SoundCue      = events.NewEventType[SoundCueData]()
	Died          = events.NewEventType[DeathData]()
)

// ProcessAll delivers every queued event to its subscribers.
func ProcessAll(w donburi.World) {
	events.ProcessAllEvents(w)
}
