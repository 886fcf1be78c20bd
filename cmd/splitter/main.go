package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/mitchellh/go-homedir"

	"github.com/voidshard/stitch"
)

const desc = `Cuts an image into a grid of tiles named <name>_<row>_<col>.<ext>.

Tiles on the right & bottom edges hold any remainder so may be smaller than the
requested tile size. The output can be put back together with 'merger'.`

var cli struct {
	Input string `short:"i" required:"" help:"input image"`
	Out   string `short:"o" default:"." help:"folder to write tiles to"`

	// defaults to the input file name (minus extension)
	Name string `short:"n" help:"tile base name"`

	TileWidth  int `default:"256" help:"width of each tile in px"`
	TileHeight int `default:"256" help:"height of each tile in px"`

	Overwrite bool `help:"overwrite existing file(s) if found"`
	DryRun    bool `help:"print out what you're planning"`
}

func main() {
	kong.Parse(&cli, kong.Name("splitter"), kong.Description(desc))

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, TimeFormat: "15:04:05.00"})

	input, err := homedir.Expand(cli.Input)
	if err != nil {
		logger.Fatal("bad input path", "err", err)
	}
	out, err := homedir.Expand(cli.Out)
	if err != nil {
		logger.Fatal("bad output path", "err", err)
	}

	ext := filepath.Ext(input)
	if !stitch.Eligible("x_0_0" + ext) {
		logger.Fatal("unsupported image type", "ext", ext)
	}

	name := cli.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(input), ext)
	}

	in, err := imaging.Open(input)
	if err != nil {
		logger.Fatal("reading input", "path", input, "err", err)
	}

	pieces, err := stitch.Split(in, cli.TileWidth, cli.TileHeight)
	if err != nil {
		logger.Fatal("splitting", "err", err)
	}

	logger.Info(fmt.Sprintf("cutting %s into %d tiles", input, len(pieces)), "size", in.Bounds().Size())
	if cli.DryRun {
		for _, p := range pieces {
			logger.Info("would write", "path", filepath.Join(out, p.Name(name, ext[1:])), "size", p.Image.Bounds().Size())
		}
		return
	}

	written, err := stitch.WritePieces(out, name, ext[1:], pieces, cli.Overwrite)
	if err != nil {
		logger.Fatal("writing tiles", "err", err)
	}
	logger.Info("done", "tiles", len(written), "dir", out)
}
