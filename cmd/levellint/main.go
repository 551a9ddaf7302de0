// Command levellint parses and validates the level catalogue and prints a
// per-level report.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/term"

	"github.com/younwookim/tubejump/assets"
	"github.com/younwookim/tubejump/internal/application/world"
	"github.com/younwookim/tubejump/internal/infrastructure/config"
)

var (
	colorTitle  = color.Style{color.FgCyan, color.OpBold}
	colorOK     = color.Style{color.FgGreen}
	colorWarn   = color.Style{color.FgYellow}
	colorSubtle = color.Style{color.FgGray}
)

func main() {
	configDir := flag.String("config", "", "Lint configs in this directory instead of the embedded ones")
	strict := flag.Bool("strict", false, "Exit with status 1 when any level has warnings")
	flag.Parse()

	color.Enable = term.IsTerminal(int(os.Stdout.Fd()))

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

	reports := lint(levels, world.JumpModel(cfg.Physics), cfg.Physics.World.TileSize)
	printReports(os.Stdout, reports)

	if *strict && warningCount(reports) > 0 {
		os.Exit(1)
	}
}

func printReports(w io.Writer, reports []levelReport) {
	for _, r := range reports {
		name := r.Name
		if r.Secret {
			name += " " + colorSubtle.Sprint(gotext.Get("(secret)"))
		}
		fmt.Fprintf(w, "%s %s\n", colorTitle.Sprintf("[%d]", r.Index), name)
		fmt.Fprintf(w, "    %s\n", colorSubtle.Sprint(gotext.Get("%d solids, %d enemies, %d keys, %d doors",
			r.Solids, r.Enemies, r.Keys, r.Doors)))

		if len(r.Warnings) == 0 {
			fmt.Fprintf(w, "    %s\n", colorOK.Sprint(gotext.Get("ok")))
			continue
		}
		for _, msg := range r.Warnings {
			fmt.Fprintf(w, "    %s %s\n", colorWarn.Sprint("!"), msg)
		}
	}

	total := warningCount(reports)
	summary := gotext.Get("%d levels, %d warnings", len(reports), total)
	if total == 0 {
		fmt.Fprintln(w, colorOK.Sprint(summary))
	} else {
		fmt.Fprintln(w, colorWarn.Sprint(summary))
	}
}
