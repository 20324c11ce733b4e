// Command terminalScene plays a feather2d scene in the terminal.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/akmonengine/feather2d"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

//go:embed scene.yaml
var defaultScene []byte

var (
	scenePath = flag.String("scene", "", "YAML scene file (default: built-in scene)")
	debugFlag = flag.Bool("debug", false, "write logs to logs/terminalScene.log")
	workers   = flag.Int("workers", 0, "goroutines for the per-body phases (0: scene value)")
)

type app struct {
	scene    sceneConfig
	config   feather2d.Config
	world    *feather2d.World
	renderer *renderer
	impacts  int
	paused   bool
}

func newApp(scene sceneConfig, config feather2d.Config, screen tcell.Screen) (*app, error) {
	a := &app{
		scene:    scene,
		config:   config,
		renderer: &renderer{screen: screen},
	}
	if err := a.reset(); err != nil {
		return nil, err
	}
	a.renderer.resize()

	return a, nil
}

// reset rebuilds the world from the scene
func (a *app) reset() error {
	world, err := buildWorld(a.scene, a.config)
	if err != nil {
		return err
	}

	world.Events.Subscribe(feather2d.COLLISION_ENTER, func(event feather2d.Event) {
		a.impacts++
		bodyA, bodyB := event.Bodies()
		log.Printf("frame %d: bodies %d and %d collide", world.Frame(), bodyA, bodyB)
	})
	a.world = world
	a.impacts = 0

	return nil
}

// handleInput returns false when the user asks to quit
func (a *app) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}

		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			a.paused = !a.paused
		case 'r':
			if err := a.reset(); err != nil {
				log.Printf("reset failed: %v", err)
			}
		}

	case *tcell.EventResize:
		a.renderer.screen.Sync()
		a.renderer.resize()
	}

	return true
}

func (a *app) run() {
	ticker := time.NewTicker(time.Duration(a.world.Config().Dt * float64(time.Second)))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.renderer.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}

		case <-ticker.C:
			if !a.paused {
				a.world.Tick()
			}
			a.renderer.draw(a.world, statusLine(a.world, a.impacts, a.paused))
		}
	}
}

func loadScene(path string) (sceneConfig, error) {
	data := defaultScene
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return sceneConfig{}, errors.Wrap(err, "read scene")
		}
	}

	return parseScene(data)
}

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	scene, err := loadScene(*scenePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load scene: %v\n", err)
		os.Exit(1)
	}

	config := feather2d.DefaultConfig()
	config.Logger = log.Default()
	if *workers > 0 {
		scene.Workers = *workers
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	a, err := newApp(scene, config, screen)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to build scene: %v\n", err)
		os.Exit(1)
	}

	a.run()
	screen.Fini()
}
