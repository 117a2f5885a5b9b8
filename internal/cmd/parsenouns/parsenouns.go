// Package parsenouns parses parse-nouns arguments and runs the DBnary noun
// extraction.
package parsenouns

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	entrypoint "github.com/hanzitab/hanzitab/internal/platform/cmd"
	"github.com/hanzitab/hanzitab/internal/tools/dbnary"
	"github.com/hanzitab/hanzitab/internal/tools/dbnary/nounstore"
)

// Usage is printed to stderr when the dump path is missing.
const Usage = "Usage: parse-nouns [-db-path nouns.db] [-defer] [-v] zh_dbnary_ontolex.ttl.bz2"

// ErrUsage reports a missing dump path.
var ErrUsage = errors.New("dump path is required")

// Config holds parse-nouns configuration.
type Config struct {
	Path    string
	DBPath  string `env:"HANZITAB_NOUNS_DB_PATH"`
	Defer   bool   `env:"HANZITAB_NOUNS_DEFER"`
	Verbose bool   `env:"HANZITAB_NOUNS_VERBOSE"`
}

// ParseConfig parses environment, flags and the dump path into a Config.
// Only the first positional argument is used.
//
// Flags are bound before the environment is read so that env values become
// the defaults a flag can still override.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if fs == nil {
		return Config{}, errors.New("flag parser is required")
	}
	fs.StringVar(&cfg.DBPath, "db-path", "", "also store nouns in this SQLite database (env HANZITAB_NOUNS_DB_PATH)")
	fs.BoolVar(&cfg.Defer, "defer", false, "resolve written forms that appear before their noun entry (env HANZITAB_NOUNS_DEFER)")
	fs.BoolVar(&cfg.Verbose, "v", false, "log extraction statistics to stderr (env HANZITAB_NOUNS_VERBOSE)")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), Usage)
		fs.PrintDefaults()
	}
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	if fs.NArg() == 0 || strings.TrimSpace(fs.Arg(0)) == "" {
		return Config{}, ErrUsage
	}
	cfg.Path = fs.Arg(0)
	return cfg, nil
}

// Run extracts nouns from cfg.Path and writes them to out as a JSON array.
// Nothing is written to out unless every step succeeds.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return ErrUsage
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceParseNouns, func(ctx context.Context) error {
		nouns, stats, err := dbnary.ExtractFile(ctx, cfg.Path, dbnary.Options{DeferUnresolved: cfg.Defer})
		if err != nil {
			return err
		}
		if cfg.Verbose {
			log.Printf("%d blocks, %d noun entries, %d written forms (%d matched, %d unresolved), %d nouns",
				stats.Blocks, stats.NounEntries, stats.WrittenForms, stats.Matched, stats.Unresolved, len(nouns))
		}

		if cfg.DBPath != "" {
			if err := store(ctx, cfg.DBPath, nouns, cfg.Verbose); err != nil {
				return err
			}
		}
		return dbnary.WriteJSON(out, nouns)
	})
}

func store(ctx context.Context, path string, nouns []string, verbose bool) error {
	st, err := nounstore.Open(path)
	if err != nil {
		return fmt.Errorf("open noun store: %w", err)
	}
	defer st.Close()

	inserted, err := st.PutNouns(ctx, dbnary.Language.String(), nouns, time.Now())
	if err != nil {
		return fmt.Errorf("store nouns: %w", err)
	}
	if verbose {
		log.Printf("stored %d new nouns in %s", inserted, path)
	}
	return nil
}
