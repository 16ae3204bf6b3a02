package suite

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/pentago-backend/internal/pentago"
	"github.com/rocketscienceinc/pentago-backend/internal/usecase"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
	Logs   *bytes.Buffer

	Manager *usecase.GameManager
}

// New - builds a game manager with default options and a debug logger captured in Logs.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	return NewWithOptions(t, pentago.Options{})
}

func NewWithOptions(t *testing.T, opts pentago.Options) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	manager, err := usecase.NewGameManager(logger, opts)
	if err != nil {
		t.Fatalf("could not create game manager: %v", err)
	}

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Logs:    logs,
		Manager: manager,
	}
}
