//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"percolator/internal/app"
	"percolator/internal/config"
	"percolator/internal/viewer"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := cfg.Logger(os.Stderr)
	slog.SetDefault(log)

	v, err := viewer.New(cfg, log)
	if err != nil {
		log.Error("failed to start viewer", "error", err)
		os.Exit(1)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	game := app.New(ctx, v, cfg, log)
	size := v.Grid().Size()

	ebiten.SetWindowTitle("percolator")
	ebiten.SetTPS(cfg.View.TPS)
	ebiten.SetWindowSize(size.W*cfg.View.Scale, size.H*cfg.View.Scale+cfg.View.HUDHeight)

	runErr := ebiten.RunGame(game)
	if err := v.Close(); err != nil {
		log.Warn("saving session", "error", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Error("game loop", "error", runErr)
		os.Exit(1)
	}
}
