package animation

import (
	"fmt"

	"github.com/automoto/zsengine/shared/gamemath"
)

// NoSound is the SoundFrame of an animation that never cues a sound.
const NoSound = -1

// Animation is the per-state timing and hit geometry metadata.
type Animation struct {
	Name        string
	FrameLength int // ticks per animation frame
	FrameCount  int
	W, H        float64 // frame size in unscaled pixels

	// Body is the local collision rectangle. A zero-size body means the whole
	// frame.
	Body gamemath.Rect

	Hitboxes      []string         // active on every frame of the state
	FrameHitboxes map[int][]string // active only on the keyed frame
	SoundFrame    int              // frame that cues the state's sound, or NoSound
}

// Length returns the number of ticks one loop of the animation lasts.
func (a *Animation) Length() int {
	return a.FrameLength * a.FrameCount
}

// BodyRect returns the local collision rectangle.
func (a *Animation) BodyRect() gamemath.Rect {
	if a.Body.W <= 0 || a.Body.H <= 0 {
		return gamemath.NewRect(0, 0, a.W, a.H)
	}
	return a.Body
}

func (a *Animation) validate(catalog Catalog) error {
	if a.FrameLength <= 0 {
		return fmt.Errorf("animation %q: %w: frame_length %d", a.Name, ErrBadAnimation, a.FrameLength)
	}
	if a.FrameCount <= 0 {
		return fmt.Errorf("animation %q: %w: frame_count %d", a.Name, ErrBadAnimation, a.FrameCount)
	}

	for _, name := range a.Hitboxes {
		if _, ok := catalog[name]; !ok {
			return fmt.Errorf("animation %q: %w %q", a.Name, ErrUnknownHitbox, name)
		}
	}
	for frame, names := range a.FrameHitboxes {
		if frame < 0 || frame >= a.FrameCount {
			return fmt.Errorf("animation %q: %w: hitbox frame %d outside [0, %d)", a.Name, ErrBadAnimation, frame, a.FrameCount)
		}
		for _, name := range names {
			if _, ok := catalog[name]; !ok {
				return fmt.Errorf("animation %q frame %d: %w %q", a.Name, frame, ErrUnknownHitbox, name)
			}
		}
	}
	return nil
}
