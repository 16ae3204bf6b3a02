package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/pentago-backend/internal/config"
	"github.com/rocketscienceinc/pentago-backend/internal/pentago"
	"github.com/rocketscienceinc/pentago-backend/internal/usecase"
	"github.com/rocketscienceinc/pentago-backend/transport/console"
)

// RunApp - runs a hot-seat game on stdin/stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the game manager and the console and blocks until the console stops.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	gameManager, err := usecase.NewGameManager(logger, pentago.Options{
		Size:      conf.Game.Size,
		BoardSize: conf.Game.BoardSize,
		Players:   conf.Game.Players,
	})
	if err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}

	log.Info("Starting console", "size", conf.Game.Size, "board-size", conf.Game.BoardSize, "players", conf.Game.Players)

	if err = console.New(logger, gameManager).Start(ctx, in, out); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Console stopped, shutting down")

	return nil
}
