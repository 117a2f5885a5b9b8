// Package main prints the Chinese nouns of a DBnary dump as a JSON array.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hanzitab/hanzitab/internal/cmd/parsenouns"
	"github.com/hanzitab/hanzitab/internal/platform/config"
)

func main() {
	log.SetPrefix("[PARSE-NOUNS] ")
	cfg, err := parsenouns.ParseConfig(flag.CommandLine, os.Args[1:])
	if errors.Is(err, parsenouns.ErrUsage) {
		config.ExitCodef(config.ExitCodeUsage, "%s", parsenouns.Usage)
	}
	if err != nil {
		config.ExitCodef(config.ExitCodeUsage, "parse args: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = parsenouns.Run(ctx, cfg, os.Stdout)
	stop()
	if err != nil {
		config.Exitf("parse nouns: %v", err)
	}
}
