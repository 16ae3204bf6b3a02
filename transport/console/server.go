package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/pentago-backend/internal/entity"
)

const prompt = "> "

var errQuit = errors.New("quit")

type gameUseCase interface {
	NewGame() (*entity.Game, error)
	Place(x, y int) (*entity.Game, error)
	Rotate(bx, by int, clockwise bool) (*entity.Game, error)
	State() *entity.Game
}

type handler func(args []string, out io.Writer) error

// Server is a hot-seat text front end: players type commands in turn on one terminal.
type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase

	handlers map[string]handler
}

func New(logger *slog.Logger, gameUseCase gameUseCase) *Server {
	server := &Server{
		logger:      logger.With("component", "console"),
		gameUseCase: gameUseCase,
	}

	server.handlers = map[string]handler{
		"place":  server.handlePlace,
		"rotate": server.handleRotate,
		"show":   server.handleShow,
		"state":  server.handleState,
		"new":    server.handleNew,
		"help":   server.handleHelp,
		"quit":   server.handleQuit,
	}

	return server
}

// Start - reads commands from in until EOF, quit or ctx cancellation.
func (that *Server) Start(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Start")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		readErr <- scanner.Err()
	}()

	if err := render(out, that.gameUseCase.State()); err != nil {
		return err
	}

	for {
		if _, err := io.WriteString(out, prompt); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}

		select {
		case <-ctx.Done():
			log.Info("context canceled, stopping console")
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("failed to read input: %w", err)
					}
				default:
				}

				log.Info("input closed")
				return nil
			}

			err := that.handleLine(line, out)
			if errors.Is(err, errQuit) {
				log.Info("player quit")
				return nil
			}

			if err != nil {
				return err
			}
		}
	}
}

// handleLine - dispatches one command line, reporting user mistakes to out.
func (that *Server) handleLine(line string, out io.Writer) error {
	log := that.logger.With("method", "handleLine")

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	command, args := strings.ToLower(fields[0]), fields[1:]

	cmdHandler, ok := that.handlers[command]
	if !ok {
		log.Debug("unknown command", "command", command)
		return writeLine(out, fmt.Sprintf("unknown command %q, type help", command))
	}

	err := cmdHandler(args, out)

	var usage *usageError
	if errors.As(err, &usage) {
		return writeLine(out, usage.Error())
	}

	return err
}

func writeLine(out io.Writer, line string) error {
	if _, err := io.WriteString(out, line+"\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
