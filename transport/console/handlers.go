package console

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/pentago-backend/internal/apperror"
	"github.com/rocketscienceinc/pentago-backend/internal/entity"
)

const helpText = `commands:
  place X Y            place a marker at column X, row Y
  rotate BX BY cw|ccw  rotate board BX, BY clockwise or counter-clockwise
  show                 print the board
  state                print the game as json
  new                  start a new game
  help                 print this help
  quit                 leave`

type usageError struct {
	usage string
}

func (that *usageError) Error() string {
	return "usage: " + that.usage
}

func (that *Server) handlePlace(args []string, out io.Writer) error {
	coords, err := parseInts(args, 2, "place X Y")
	if err != nil {
		return err
	}

	game, err := that.gameUseCase.Place(coords[0], coords[1])

	return that.respond(out, game, err)
}

func (that *Server) handleRotate(args []string, out io.Writer) error {
	const usage = "rotate BX BY cw|ccw"

	if len(args) != 3 {
		return &usageError{usage: usage}
	}

	coords, err := parseInts(args[:2], 2, usage)
	if err != nil {
		return err
	}

	var clockwise bool
	switch strings.ToLower(args[2]) {
	case "cw":
		clockwise = true
	case "ccw":
		clockwise = false
	default:
		return &usageError{usage: usage}
	}

	game, err := that.gameUseCase.Rotate(coords[0], coords[1], clockwise)

	return that.respond(out, game, err)
}

func (that *Server) handleShow(_ []string, out io.Writer) error {
	return render(out, that.gameUseCase.State())
}

func (that *Server) handleState(_ []string, out io.Writer) error {
	data, err := json.MarshalIndent(that.gameUseCase.State(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	return writeLine(out, string(data))
}

func (that *Server) handleNew(_ []string, out io.Writer) error {
	game, err := that.gameUseCase.NewGame()
	if err != nil {
		return fmt.Errorf("failed to start new game: %w", err)
	}

	return render(out, game)
}

func (that *Server) handleHelp(_ []string, out io.Writer) error {
	return writeLine(out, helpText)
}

func (that *Server) handleQuit(_ []string, _ io.Writer) error {
	return errQuit
}

// respond - prints illegal moves as a notice and the board afterwards.
func (that *Server) respond(out io.Writer, game *entity.Game, err error) error {
	if errors.Is(err, apperror.ErrIllegalOperation) {
		if err = writeLine(out, "illegal move: "+err.Error()); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	return render(out, game)
}

func parseInts(args []string, n int, usage string) ([]int, error) {
	if len(args) != n {
		return nil, &usageError{usage: usage}
	}

	values := make([]int, n)
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, &usageError{usage: usage}
		}
		values[i] = v
	}

	return values, nil
}
