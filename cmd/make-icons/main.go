// Package main generates browser-extension icons from a single picture.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hanzitab/hanzitab/internal/cmd/makeicons"
	"github.com/hanzitab/hanzitab/internal/platform/config"
)

func main() {
	log.SetPrefix("[MAKE-ICONS] ")
	cfg, err := makeicons.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.ExitCodef(config.ExitCodeUsage, "parse args: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = makeicons.Run(ctx, cfg, os.Stdout)
	stop()
	if err != nil {
		config.Exitf("make icons: %v", err)
	}
}
