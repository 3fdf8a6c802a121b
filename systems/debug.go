package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/zsengine/components"
	cfg "github.com/automoto/zsengine/config"
	"github.com/automoto/zsengine/shared/animation"
	"github.com/automoto/zsengine/shared/gamemath"
	"github.com/automoto/zsengine/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const normalLength = 8

// DrawDebug outlines walls (with normals), sprite bodies and active
// hitboxes.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	components.Region.Each(ecs.World, func(e *donburi.Entry) {
		for _, w := range components.Region.Get(e).Walls {
			drawWall(screen, w)
		}
	})

	tags.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		view := View(e)
		strokeRect(screen, view.Rect, cfg.Debug.BodyColor)

		for _, h := range view.Hitboxes {
			c := cfg.Debug.HitboxColor
			if h.Key == animation.HurtboxKey {
				c = cfg.Debug.HurtboxColor
			}
			if h.Shape == animation.ShapeCircle {
				vector.StrokeCircle(screen, float32(h.Position.X), float32(h.Position.Y), float32(h.Radius), 1, c, false)
				continue
			}
			strokeRect(screen, h.Rect(), c)
		}

		label := fmt.Sprintf("%s %s %s:%d", spriteName(e), view.State, view.Facing, view.Frame)
		ebitenutil.DebugPrintAt(screen, label, int(view.Rect.Left()), int(view.Rect.Top())-16)
	})
}

func drawWall(screen *ebiten.Image, w *gamemath.Wall) {
	end := w.EndPoint()
	vector.StrokeLine(screen, float32(w.Origin.X), float32(w.Origin.Y), float32(end.X), float32(end.Y), 1, cfg.Debug.WallColor, false)

	mid := gamemath.Point{X: (w.Origin.X + end.X) / 2, Y: (w.Origin.Y + end.Y) / 2}
	tip := w.Normal().Scale(normalLength).ApplyToPoint(mid)
	vector.StrokeLine(screen, float32(mid.X), float32(mid.Y), float32(tip.X), float32(tip.Y), 1, cfg.Debug.NormalColor, false)
}

func strokeRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.StrokeRect(screen, float32(r.Left()), float32(r.Top()), float32(r.W), float32(r.H), 1, c, false)
}
