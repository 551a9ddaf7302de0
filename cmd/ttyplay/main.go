// Command ttyplay runs the game in a terminal.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/tubejump/assets"
	"github.com/younwookim/tubejump/internal/application/world"
	"github.com/younwookim/tubejump/internal/infrastructure/config"
)

func main() {
	seedFlag := flag.Int64("seed", 0, "World seed (0 picks one from the clock)")
	mute := flag.Bool("mute", false, "Disable sound")
	logPath := flag.String("log", "", "Write the game log to this file")
	flag.Parse()

	loader := config.NewFSLoader(assets.Configs(), "configs")
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	levels, err := loader.LoadLevels()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatalf("Failed to create log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()

	// The terminal belongs to the screen from here on.
	log.SetOutput(logOut)

	snd := newSound(!*mute)
	defer snd.close()

	cols, _ := screen.Size()
	opts := []world.Option{
		world.WithViewport(float64(cols) * cellW),
		world.WithEventHandler(snd.play),
	}
	if *seedFlag != 0 {
		opts = append(opts, world.WithSeed(*seedFlag))
	}
	w, err := world.New(cfg, levels, opts...)
	if err != nil {
		screen.Fini()
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to create world: %v", err)
	}

	run(screen, w, time.Second/time.Duration(cfg.Physics.Display.Framerate))
}

func run(screen tcell.Screen, w *world.World, frame time.Duration) {
	// Start input handling goroutine
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	keys := newKeyState()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				a := actionFor(ev)
				if a == actQuit {
					return
				}
				keys.press(a)
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			w.Step(keys.next())
			draw(screen, w)
		}
	}
}
