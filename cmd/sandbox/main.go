// Command sandbox opens a window running a scene with the debug overlay, so
// collision geometry and hitboxes can be inspected while playing.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/automoto/zsengine/assets"
	"github.com/automoto/zsengine/components"
	"github.com/automoto/zsengine/config"
	"github.com/automoto/zsengine/events"
	"github.com/automoto/zsengine/scenes"
	"github.com/automoto/zsengine/shared/logger"
	"github.com/automoto/zsengine/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

const (
	jumpForce    = 9
	dummyAttacks = 90 // ticks between the dummy's jabs
)

type Game struct {
	sim      *scenes.Simulation
	settings *settingsStore
	player   string
	dummy    string
	patrol   *patrol
}

func NewGame(sim *scenes.Simulation, settings *settingsStore, player, dummy string) *Game {
	g := &Game{sim: sim, settings: settings, player: player, dummy: dummy}
	if e, ok := sim.Sprite(dummy); ok {
		g.patrol = newPatrol(components.Object.Get(e).X)
	}

	w := sim.World()
	events.HitLanded.Subscribe(w, func(w donburi.World, hit events.HitData) {
		logger.L().Info("hit",
			zap.String("system", hit.System),
			zap.String("attacker", nameOf(w, hit.Attacker)),
			zap.String("struck", nameOf(w, hit.Struck)),
			zap.Int("hitboxes", len(hit.Hitboxes)),
		)
	})
	events.StateChanged.Subscribe(w, func(_ donburi.World, c events.StateChangeData) {
		logger.L().Debug("state", zap.String("sprite", c.Machine), zap.String("from", c.From), zap.String("to", c.To))
	})
	events.SoundCue.Subscribe(w, func(_ donburi.World, c events.SoundCueData) {
		logger.L().Debug("sound cue", zap.String("sprite", c.Sprite), zap.String("state", c.State))
	})
	events.Died.Subscribe(w, func(_ donburi.World, d events.DeathData) {
		logger.L().Info("died", zap.String("sprite", d.Name))
	})

	return g
}

func nameOf(w donburi.World, e donburi.Entity) string {
	if !w.Valid(e) {
		return "?"
	}
	entry := w.Entry(e)
	if !entry.HasComponent(components.Sprite) {
		return "?"
	}
	return components.Sprite.Get(entry).Name
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		config.Debug.Overlay = !config.Debug.Overlay
		g.settings.Save()
	}

	ctrls := g.sim.Controllers()
	if ctrl, ok := ctrls[g.player]; ok {
		pollControls(ctrl)
		if inpututil.IsKeyJustPressed(ebiten.KeyK) {
			if e, ok := g.sim.Sprite(g.player); ok {
				systems.Kill(e, config.Animation.DeathFrames)
			}
		}
	}
	if ctrl, ok := ctrls[g.dummy]; ok {
		ctrl.Set("attack", g.sim.Ticks()%dummyAttacks == 0)
		if e, ok := g.sim.Sprite(g.dummy); ok && g.patrol != nil {
			g.patrol.steer(e)
		}
	}

	g.steer()
	g.sim.Tick()
	return nil
}

// steer kicks sprites upward on a fresh jump press. Walking is left to the
// movement system.
func (g *Game) steer() {
	components.Controller.Each(g.sim.World(), func(e *donburi.Entry) {
		if !e.HasComponent(components.Physics) || e.HasComponent(components.Death) {
			return
		}
		ctrl := components.Controller.Get(e)
		body := components.Physics.Get(e)

		if ctrl.JustPressed("jump") {
			body.ApplyForce(0, -jumpForce)
		}
	})
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.sim.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	var (
		dir     = flag.String("dir", "", "read scene files from this directory instead of the embedded scenes")
		scene   = flag.String("scene", assets.Sandbox, "scene document to run")
		player  = flag.String("player", "player", "sprite driven by keyboard and gamepad")
		dummy   = flag.String("dummy", "dummy", "sprite that patrols and jabs on a timer")
		overlay = flag.Bool("overlay", true, "draw walls, bodies and hitboxes (toggle with F1)")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	config.Debug.Verbose = *verbose

	l := logger.New(config.Debug.Verbose)
	logger.Set(l)
	defer l.Sync()

	// An explicit -overlay beats the saved preference
	config.Debug.Overlay = *overlay
	settings := openSettings()
	overlaySet := false
	flag.Visit(func(f *flag.Flag) { overlaySet = overlaySet || f.Name == "overlay" })
	if !overlaySet {
		settings.Load()
	}

	fsys := assets.Scenes()
	if *dir != "" {
		fsys = os.DirFS(*dir)
	}

	sim, err := scenes.NewSimulation(fsys, *scene)
	if err != nil {
		logger.L().Fatal("failed to load scene", zap.String("scene", *scene), zap.Error(err))
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("zsengine sandbox: " + sim.Name())
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(sim, settings, *player, *dummy)); err != nil {
		log.Fatal(err)
	}
}
