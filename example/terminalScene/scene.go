package main

import (
	"github.com/akmonengine/feather2d"
	"github.com/akmonengine/feather2d/actor"
	"github.com/akmonengine/feather2d/force"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// sceneConfig is the YAML description of a world and its initial bodies
type sceneConfig struct {
	Dt         float64           `yaml:"dt"`
	Iterations int               `yaml:"iterations"`
	Workers    int               `yaml:"workers"`
	Generators []generatorConfig `yaml:"generators"`
	Bodies     []bodyConfig      `yaml:"bodies"`
}

type generatorConfig struct {
	Kind string `yaml:"kind"`
	// gravity and rotating_gravity
	Acceleration *[2]float64 `yaml:"acceleration,omitempty"`
	// rotating_gravity
	FramesPerRotation int `yaml:"frames_per_rotation,omitempty"`
	// friction
	Linear  *float64 `yaml:"linear,omitempty"`
	Angular *float64 `yaml:"angular,omitempty"`
}

type bodyConfig struct {
	Shape           string     `yaml:"shape"`
	Position        [2]float64 `yaml:"position"`
	Rotation        float64    `yaml:"rotation"`
	Velocity        [2]float64 `yaml:"velocity"`
	AngularVelocity float64    `yaml:"angular_velocity"`
	HalfExtents     [2]float64 `yaml:"half_extents"`
	Static          bool       `yaml:"static"`
	ApplyGenerators bool       `yaml:"apply_generators"`
	Mass            float64    `yaml:"mass"`
	Restitution     float64    `yaml:"restitution"`
	RepelForce      float64    `yaml:"repel_force"`
}

// UnmarshalYAML starts from the body defaults so a scene only lists overrides
func (b *bodyConfig) UnmarshalYAML(node *yaml.Node) error {
	type plain bodyConfig

	def := actor.DefaultBodyDef()
	p := plain{
		Shape:           def.Shape.String(),
		HalfExtents:     def.HalfExtents,
		ApplyGenerators: def.ApplyGenerators,
		Mass:            def.Mass,
		Restitution:     def.Restitution,
		RepelForce:      def.RepelForce,
	}
	if err := node.Decode(&p); err != nil {
		return err
	}
	*b = bodyConfig(p)

	return nil
}

func (b bodyConfig) def() (actor.BodyDef, error) {
	def := actor.DefaultBodyDef()

	switch b.Shape {
	case actor.ShapeBox.String():
		def.Shape = actor.ShapeBox
	case actor.ShapeCircle.String():
		def.Shape = actor.ShapeCircle
	default:
		return def, errors.Errorf("unknown shape %q", b.Shape)
	}

	def.Position = b.Position
	def.Rotation = b.Rotation
	def.Velocity = b.Velocity
	def.AngularVelocity = b.AngularVelocity
	def.HalfExtents = b.HalfExtents
	def.IsStatic = b.Static
	def.ApplyGenerators = b.ApplyGenerators
	def.Mass = b.Mass
	def.Restitution = b.Restitution
	def.RepelForce = b.RepelForce

	return def, nil
}

func (g generatorConfig) generator() (force.Generator, error) {
	switch g.Kind {
	case "gravity":
		gravity := force.NewGravity()
		if g.Acceleration != nil {
			gravity.Acceleration = mgl64.Vec2(*g.Acceleration)
		}
		return gravity, nil

	case "rotating_gravity":
		if g.FramesPerRotation <= 0 {
			return nil, errors.Errorf("rotating_gravity needs a positive frames_per_rotation, got %d", g.FramesPerRotation)
		}
		gravity := force.NewRotatingGravity(g.FramesPerRotation)
		if g.Acceleration != nil {
			gravity.Acceleration = mgl64.Vec2(*g.Acceleration)
		}
		return gravity, nil

	case "friction":
		friction := force.NewFriction()
		if g.Linear != nil {
			friction.Linear = *g.Linear
		}
		if g.Angular != nil {
			friction.Angular = *g.Angular
		}
		return friction, nil
	}

	return nil, errors.Errorf("unknown generator %q", g.Kind)
}

func parseScene(data []byte) (sceneConfig, error) {
	var scene sceneConfig
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return scene, errors.Wrap(err, "parse scene")
	}

	return scene, nil
}

// buildWorld creates the world described by the scene. Fields left empty in
// the scene keep the values of base.
func buildWorld(scene sceneConfig, base feather2d.Config) (*feather2d.World, error) {
	config := base
	if scene.Dt > 0 {
		config.Dt = scene.Dt
	}
	if scene.Iterations > 0 {
		config.Iterations = scene.Iterations
	}
	if scene.Workers > 0 {
		config.Workers = scene.Workers
	}

	world := feather2d.NewWorld(config)
	for i, g := range scene.Generators {
		generator, err := g.generator()
		if err != nil {
			return nil, errors.Wrapf(err, "generator %d", i)
		}
		world.AddForceGenerator(generator)
	}

	for i, b := range scene.Bodies {
		def, err := b.def()
		if err != nil {
			return nil, errors.Wrapf(err, "body %d", i)
		}
		if _, err := world.AddBody(def); err != nil {
			return nil, errors.Wrapf(err, "body %d", i)
		}
	}

	return world, nil
}
