// Command vermeer renders a small built-in document to a PNG, exercising
// the full pipeline: attribute-watched style passes, a stand-in stack
// layout, geometry resolution and the paint walker over the gg canvas.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"vermeer/pkg/config"
	"vermeer/pkg/dom"
	"vermeer/pkg/layout"
	"vermeer/pkg/render"
	"vermeer/pkg/style"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a TOML config file")
		outputPath = flag.String("o", "out.png", "output PNG path")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if err := run(*configPath, *outputPath, logger); err != nil {
		logger.Error("render failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath, outputPath string, logger *log.Logger) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	tree, store, sched := buildDocument(cfg, logger)
	if err := sched.Flush(); err != nil {
		return fmt.Errorf("style passes: %w", err)
	}
	logger.Info("styles resolved", "nodes", tree.Len())

	layouts := layout.Stack(tree, store, cfg.Viewport(), cfg.DefaultFontSize)

	canvas, err := render.NewCanvas(int(cfg.ViewportWidth), int(cfg.ViewportHeight))
	if err != nil {
		return err
	}
	if err := render.Paint(tree, store, layouts, canvas, cfg); err != nil {
		return fmt.Errorf("paint: %w", err)
	}
	if err := canvas.SavePNG(outputPath); err != nil {
		return fmt.Errorf("saving %s: %w", outputPath, err)
	}
	logger.Info("rendered", "output", outputPath)
	return nil
}

// buildDocument assembles the demo tree: a header, a rounded card with
// text, and a focused button showing the double focus ring.
func buildDocument(cfg config.Config, logger *log.Logger) (*dom.Tree, *style.Store, *dom.Scheduler) {
	tree := dom.NewTree()
	store := style.NewStore(cfg)
	sched := dom.NewScheduler(tree, logger)
	style.RegisterPasses(sched, store)

	header := tree.AppendElement(tree.Root(), "header")
	header.SetAttribute("height", "80px")
	header.SetAttribute("background-color", "navy")
	header.SetAttribute("font-size", "2em")
	title := tree.AppendElement(header, "h1")
	title.SetAttribute("color", "white")
	tree.AppendText(title, "vermeer")

	card := tree.AppendElement(tree.Root(), "section")
	card.SetAttribute("width", "50vw")
	card.SetAttribute("height", "200px")
	card.SetAttribute("background-color", "#f1e740")
	card.SetAttribute("border-width", "4px")
	card.SetAttribute("border-color", "teal")
	card.SetAttribute("border-radius", "calc(8px + 2px)")
	body := tree.AppendElement(card, "p")
	body.SetAttribute("color", "#333333")
	tree.AppendText(body, "still life with style passes")
	note := tree.AppendElement(card, "ins")
	tree.AppendText(note, "freshly painted")

	button := tree.AppendElement(tree.Root(), "button")
	button.SetAttribute("width", "160px")
	button.SetAttribute("height", "48px")
	button.SetAttribute("background-color", "orange")
	button.SetAttribute("border-radius", "12px")
	store.SetFocused(button.ID, true)

	return tree, store, sched
}
