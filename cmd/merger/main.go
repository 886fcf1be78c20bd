package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"

	"github.com/voidshard/stitch"
)

const desc = `Merges folders of tiles back into whole images.

Tiles are named <basename>_<row>_<col>.<ext>. If --path holds tiles directly it's merged
as one image, otherwise each subfolder holding tiles is merged. Tiles of uneven size are
padded (centred on the fill colour) so each row & column lines up. Output is written to
--out as <basename>_merged.<ext>.`

var cli struct {
	Path string `short:"p" required:"" help:"folder containing tiles (or folders of tiles)"`
	Out  string `short:"o" required:"" help:"folder to write merged images to. Created if needed."`

	Config string `short:"c" help:"yaml config file"`

	Fill      string  `help:"padding colour (#rrggbb), overrides config"`
	Scale     float64 `help:"resize merged images by this factor, overrides config"`
	Outline   bool    `help:"also write a copy with tile bounds drawn on"`
	Catalog   string  `help:"sqlite file recording merges, tile sets already recorded are skipped"`
	Overwrite bool    `help:"overwrite existing file(s) & remerge recorded tile sets"`

	Verbose bool `short:"v" help:"debug logging"`
}

var (
	styleSuccess = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("35"))
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("167"))
)

func success(title, msg string) {
	fmt.Printf("%s: %s\n", styleSuccess.Render(title), msg)
}

func fatal(title string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", styleError.Render(title), err)
	os.Exit(1)
}

// config reads the config file (if any) then applies cli overrides
func config() (*stitch.Config, error) {
	cfg := stitch.DefaultConfig()
	if cli.Config != "" {
		fname, err := homedir.Expand(cli.Config)
		if err != nil {
			return nil, err
		}
		cfg, err = stitch.LoadConfig(fname)
		if err != nil {
			return nil, err
		}
	}

	if cli.Fill != "" {
		cfg.Fill = cli.Fill
	}
	if cli.Scale != 0 {
		cfg.Scale = cli.Scale
	}
	if cli.Catalog != "" {
		cfg.Catalog = cli.Catalog
	}
	cfg.Outline = cfg.Outline || cli.Outline
	cfg.Overwrite = cfg.Overwrite || cli.Overwrite

	return cfg, cfg.Validate()
}

func main() {
	kong.Parse(&cli, kong.Name("merger"), kong.Description(desc))

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.InfoLevel,
	})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config()
	if err != nil {
		fatal("Error", err)
	}

	root, err := homedir.Expand(cli.Path)
	if err != nil {
		fatal("Error", err)
	}
	root, err = filepath.Abs(root)
	if err != nil {
		fatal("Error", err)
	}
	out, err := homedir.Expand(cli.Out)
	if err != nil {
		fatal("Error", err)
	}

	sets, err := stitch.FindTileSets(root)
	if err != nil {
		fatal("Error", err)
	}
	success("Success", fmt.Sprintf("Found %d tiled images.", len(sets)))

	var catalog *stitch.Catalog
	if cfg.Catalog != "" {
		fname, err := homedir.Expand(cfg.Catalog)
		if err != nil {
			fatal("Error", err)
		}
		catalog, err = stitch.OpenCatalog(fname)
		if err != nil {
			fatal("Error", err)
		}
		defer catalog.Close()
	}

	merger := stitch.NewMerger(cfg, stitch.WithLogger(logger))
	for _, ts := range sets {
		if catalog != nil && !cfg.Overwrite {
			rec, err := catalog.Lookup(ts.Dir)
			if err != nil {
				fatal("Error", err)
			}
			if rec != nil {
				logger.Info("skipping, already merged", "dir", ts.Dir, "output", rec.Output)
				continue
			}
		}

		logger.Debug("merging tile set", "dir", ts.Dir, "tiles", len(ts.Paths))
		res, err := merger.Merge(ts.Paths)
		if err != nil {
			fatal("Error", fmt.Errorf("%s: %w", ts.Dir, err))
		}

		fpath, err := merger.Save(res, out)
		if err != nil {
			fatal("Error", fmt.Errorf("%s: %w", ts.Dir, err))
		}
		success("Saving", fpath)

		if catalog != nil {
			err = catalog.Record(stitch.NewRecord(ts.Dir, fpath, res))
			if err != nil {
				fatal("Error", err)
			}
		}
	}
}
