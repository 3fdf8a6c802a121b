package main

import (
	"math"

	"github.com/automoto/zsengine/components"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding represents the keys and buttons that hold one control
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton

	// Left stick direction that also holds the control (-1, 1), 0 for none
	StickX float64
}

// InputConfig maps controller flags to bindings
type InputConfig struct {
	Bindings map[string]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the keyboard/gamepad layout driving the player sprite
var Input = InputConfig{
	AnalogDeadzone: 0.25,
	Bindings: map[string]InputBinding{
		"left": {
			Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			// D-pad Left
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftLeft,
			},
			StickX: -1,
		},
		"right": {
			Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			// D-pad Right
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftRight,
			},
			StickX: 1,
		},
		"jump": {
			Keys: []ebiten.Key{ebiten.KeyX, ebiten.KeyW, ebiten.KeyUp},
			// A / Cross button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightBottom,
			},
		},
		"attack": {
			Keys: []ebiten.Key{ebiten.KeyZ},
			// X / Square button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightLeft,
			},
		},
		"guard": {
			Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			// B / Circle button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightRight,
			},
		},
	},
}

// pollControls writes the held state of every bound control into ctrl.
// Controls the sprite never declared are ignored.
func pollControls(ctrl *components.ControllerData) {
	pads := ebiten.AppendGamepadIDs(nil)
	for name := range ctrl.Current {
		b, ok := Input.Bindings[name]
		if !ok {
			continue
		}
		ctrl.Set(name, held(b, pads))
	}
}

func held(b InputBinding, pads []ebiten.GamepadID) bool {
	for _, k := range b.Keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}

	for _, id := range pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, btn := range b.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return true
			}
		}
		if b.StickX != 0 {
			x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
			if math.Abs(x) > Input.AnalogDeadzone && math.Signbit(x) == math.Signbit(b.StickX) {
				return true
			}
		}
	}
	return false
}
