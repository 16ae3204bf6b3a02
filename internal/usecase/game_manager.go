package usecase

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/pentago-backend/internal/entity"
	"github.com/rocketscienceinc/pentago-backend/internal/pentago"
)

// GameManager owns the running match and reports every command outcome to the log.
type GameManager struct {
	logger *slog.Logger
	opts   pentago.Options

	id   string
	game *pentago.Game
}

func NewGameManager(logger *slog.Logger, opts pentago.Options) (*GameManager, error) {
	manager := &GameManager{
		logger: logger.With("component", "game_manager"),
		opts:   opts,
	}

	if _, err := manager.NewGame(); err != nil {
		return nil, err
	}

	return manager, nil
}

// NewGame - replaces the running match with a fresh one.
func (that *GameManager) NewGame() (*entity.Game, error) {
	game, err := pentago.NewGame(that.opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.id = uuid.NewString()
	that.game = game
	that.subscribe(that.id, game)

	that.logger.Info("game created", "gameID", that.id, "width", game.Width(), "players", game.Players())

	return that.State(), nil
}

func (that *GameManager) subscribe(id string, game *pentago.Game) {
	log := that.logger.With("gameID", id)

	game.Listen(func() {
		log.Debug("state changed", "player", game.Player(), "phase", game.Phase())
	})

	for bx := 0; bx < game.Size(); bx++ {
		for by := 0; by < game.Size(); by++ {
			board, err := game.Board(bx, by)
			if err != nil {
				continue
			}

			board.ListenRotate(func(clockwise bool) {
				log.Debug("board rotated", "bx", bx, "by", by, "clockwise", clockwise)
			})
		}
	}
}

// Place - places the current player's marker at composite (x, y).
func (that *GameManager) Place(x, y int) (*entity.Game, error) {
	log := that.logger.With("method", "Place", "gameID", that.id)

	player := that.game.Player()
	if err := that.game.Place(x, y); err != nil {
		log.Warn("illegal placement", "player", player, "x", x, "y", y, "error", err)

		return that.State(), fmt.Errorf("failed to place: %w", err)
	}

	log.Info("marker placed", "player", player, "x", x, "y", y)
	that.logFinished(log)

	return that.State(), nil
}

// Rotate - rotates board (bx, by) and ends the current turn.
func (that *GameManager) Rotate(bx, by int, clockwise bool) (*entity.Game, error) {
	log := that.logger.With("method", "Rotate", "gameID", that.id)

	player := that.game.Player()
	if err := that.game.Rotate(bx, by, clockwise); err != nil {
		log.Warn("illegal rotation", "player", player, "bx", bx, "by", by, "error", err)

		return that.State(), fmt.Errorf("failed to rotate: %w", err)
	}

	log.Info("board rotated", "player", player, "bx", bx, "by", by, "clockwise", clockwise)
	that.logFinished(log)

	return that.State(), nil
}

// State - returns a snapshot of the running match.
func (that *GameManager) State() *entity.Game {
	return that.game.Snapshot(that.id)
}

func (that *GameManager) logFinished(log *slog.Logger) {
	if that.game.IsOver() {
		log.Info("game finished", "winner", that.game.Winner())
	}
}
