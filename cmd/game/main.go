package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/tubejump/assets"
	"github.com/younwookim/tubejump/internal/application/game"
	"github.com/younwookim/tubejump/internal/application/replay"
	"github.com/younwookim/tubejump/internal/application/scene/playing"
	"github.com/younwookim/tubejump/internal/application/world"
	"github.com/younwookim/tubejump/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recording (e.g., -replay replay.json)")
	headless := flag.Bool("headless", false, "With -replay, simulate without a window and print the result")
	seedFlag := flag.Int64("seed", 0, "World seed (0 picks one from the clock)")
	configDir := flag.String("config", "", "Load configs from this directory instead of the embedded ones")
	flag.Parse()

	loader := config.NewFSLoader(assets.Configs(), "configs")
	if *configDir != "" {
		loader = config.NewLoader(*configDir)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	levels, err := loader.LoadLevels()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	var replayer *replay.Replayer
	opts := []world.Option{}
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		replayer = replay.NewReplayer(*data)
		opts = append(opts, world.WithSeed(data.Seed))
	} else if *seedFlag != 0 {
		opts = append(opts, world.WithSeed(*seedFlag))
	}

	w, err := world.New(cfg, levels, opts...)
	if err != nil {
		log.Fatalf("Failed to create world: %v", err)
	}

	if *headless {
		if replayer == nil {
			log.Fatal("-headless needs -replay")
		}
		frames := replayer.Play(w)
		log.Printf("Replayed %d frames: level %d (%s), score %d, health %d/%d",
			frames, w.Level+1, w.LevelName(), w.Score, w.Player.Health, w.Player.MaxHealth)
		if err := replayer.Check(replay.Result{Frame: w.Frame, Level: w.Level, Score: w.Score}); err != nil {
			log.Fatal(err)
		}
		return
	}

	display := cfg.Physics.Display
	scene := playing.New(w, display.ScreenWidth, display.ScreenHeight, playing.Options{
		RecordPath: *recordFlag,
		Replayer:   replayer,
	})
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight)

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Tube Jump")
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
