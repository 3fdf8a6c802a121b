// Package scenes runs a loaded scene as a fixed-step simulation.
package scenes

import (
	"fmt"
	"image/color"
	"io/fs"

	"github.com/automoto/zsengine/components"
	cfg "github.com/automoto/zsengine/config"
	"github.com/automoto/zsengine/events"
	"github.com/automoto/zsengine/shared/logger"
	"github.com/automoto/zsengine/systems"
	"github.com/automoto/zsengine/systems/factory"
	"github.com/automoto/zsengine/tags"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Simulation owns one world and steps it a tick at a time. It is not safe
// for concurrent use.
type Simulation struct {
	id    string
	ecs   *ecs.ECS
	scene *cfg.Scene
	ticks int
}

// NewSimulation loads the scene document at path from fsys.
func NewSimulation(fsys fs.FS, path string) (*Simulation, error) {
	scene, err := cfg.LoadScene(fsys, path)
	if err != nil {
		return nil, err
	}
	return FromScene(fsys, scene)
}

// FromScene builds a simulation from an already parsed scene.
func FromScene(fsys fs.FS, scene *cfg.Scene) (*Simulation, error) {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Tick order
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateStates)
	ecs.AddSystem(systems.UpdateMovement)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateDeaths)
	ecs.AddSystem(processEvents)

	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	if err := factory.LoadScene(ecs, fsys, scene); err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}

	sim := &Simulation{id: uuid.NewString(), ecs: ecs, scene: scene}
	logger.L().Info("simulation ready", zap.String("run", sim.id), zap.String("scene", scene.Name))
	return sim, nil
}

func processEvents(ecs *ecs.ECS) {
	events.ProcessAll(ecs.World)
}

// Tick advances the world by one fixed step.
func (s *Simulation) Tick() {
	s.ecs.Update()
	s.ticks++
}

// Update lets a Simulation stand in for an ebiten scene.
func (s *Simulation) Update() {
	s.Tick()
}

func (s *Simulation) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	s.ecs.Draw(screen)
}

// ID identifies this run in logs.
func (s *Simulation) ID() string {
	return s.id
}

// Ticks returns the number of steps taken.
func (s *Simulation) Ticks() int {
	return s.ticks
}

func (s *Simulation) Name() string {
	return s.scene.Name
}

func (s *Simulation) World() donburi.World {
	return s.ecs.World
}

func (s *Simulation) ECS() *ecs.ECS {
	return s.ecs
}

// Sprite finds a live sprite by its scene name.
func (s *Simulation) Sprite(name string) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Sprite.Each(s.ecs.World, func(e *donburi.Entry) {
		if found == nil && components.Sprite.Get(e).Name == name {
			found = e
		}
	})
	return found, found != nil
}

// Controllers returns every live sprite's controller keyed by sprite name.
func (s *Simulation) Controllers() map[string]*components.ControllerData {
	out := make(map[string]*components.ControllerData)
	components.Controller.Each(s.ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Sprite) {
			out[components.Sprite.Get(e).Name] = components.Controller.Get(e)
		}
	})
	return out
}
