// Package makeicons parses make-icons arguments and runs the icon pipeline.
package makeicons

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	entrypoint "github.com/hanzitab/hanzitab/internal/platform/cmd"
	"github.com/hanzitab/hanzitab/internal/tools/iconset"
)

// Config holds make-icons configuration. Positional arguments override the
// environment defaults.
type Config struct {
	Source  string `env:"HANZITAB_ICONS_SOURCE" envDefault:"ME.jpeg"`
	OutDir  string `env:"HANZITAB_ICONS_OUT_DIR" envDefault:"extension/icons"`
	Verbose bool   `env:"HANZITAB_ICONS_VERBOSE"`
}

// ParseConfig parses environment and arguments into a Config. Usage is
// make-icons [source_image_path] [output_dir]; further arguments are ignored.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if fs == nil {
		return Config{}, errors.New("flag parser is required")
	}
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [source_image_path] [output_dir]\n", fs.Name())
	}
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		cfg.Source = fs.Arg(0)
	}
	if fs.NArg() > 1 {
		cfg.OutDir = fs.Arg(1)
	}
	return cfg, nil
}

// Run generates the icon set and prints a status line to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMakeIcons, func(ctx context.Context) error {
		res, err := iconset.Generate(ctx, iconset.Options{Source: cfg.Source, OutDir: cfg.OutDir})
		if err != nil {
			return err
		}
		if cfg.Verbose {
			log.Printf("keyed %d background pixels, trimmed to %v", res.Keyed, res.Bounds)
			for _, path := range append([]string{res.MasterPath}, res.IconPaths...) {
				log.Printf("wrote %s", path)
			}
		}
		_, err = fmt.Fprintln(out, "Icons written to", cfg.OutDir)
		return err
	})
}
