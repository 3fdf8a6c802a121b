package components

import (
	"github.com/automoto/zsengine/shared/fsm"
	"github.com/yohamta/donburi"
)

// PressedSuffix names the "freshly pressed" variant of a control predicate.
const PressedSuffix = "_pressed"

// Direction controls read by the movement system.
const (
	ControlUp    = "up"
	ControlDown  = "down"
	ControlLeft  = "left"
	ControlRight = "right"
)

// ControllerData stores the current and previous tick's state of named
// boolean controls. Whatever drives the entity (keyboard, AI, tests) writes
// Current; the state machine reads it through Predicates.
type ControllerData struct {
	Current  map[string]bool
	Previous map[string]bool
}

func NewController(controls ...string) *ControllerData {
	c := &ControllerData{
		Current:  make(map[string]bool, len(controls)),
		Previous: make(map[string]bool, len(controls)),
	}
	for _, name := range controls {
		c.Current[name] = false
	}
	return c
}

func (c *ControllerData) Set(name string, held bool) {
	c.Current[name] = held
}

func (c *ControllerData) Held(name string) bool {
	return c.Current[name]
}

// JustPressed reports a control that is held now but was not last tick.
func (c *ControllerData) JustPressed(name string) bool {
	return c.Current[name] && !c.Previous[name]
}

// Advance rolls the current state into the previous one.
func (c *ControllerData) Advance() {
	for name, held := range c.Current {
		c.Previous[name] = held
	}
}

// Direction returns the held direction as unit steps on each axis. Opposite
// directions cancel.
func (c *ControllerData) Direction() (x, y float64) {
	if c.Held(ControlLeft) {
		x--
	}
	if c.Held(ControlRight) {
		x++
	}
	if c.Held(ControlUp) {
		y--
	}
	if c.Held(ControlDown) {
		y++
	}
	return x, y
}

// Predicates exposes every declared control as "name" (held) and
// "name_pressed" (freshly pressed).
func (c *ControllerData) Predicates() fsm.Predicates {
	preds := make(fsm.Predicates, len(c.Current)*2)
	for name := range c.Current {
		name := name
		preds[name] = func() bool { return c.Held(name) }
		preds[name+PressedSuffix] = func() bool { return c.JustPressed(name) }
	}
	return preds
}

var Controller = donburi.NewComponentType[ControllerData]()
