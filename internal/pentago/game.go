package pentago

import (
	"fmt"

	"github.com/rocketscienceinc/pentago-backend/internal/apperror"
	"github.com/rocketscienceinc/pentago-backend/internal/entity"
)

type Phase string

const (
	PhasePlace  Phase = entity.PhasePlace
	PhaseRotate Phase = entity.PhaseRotate
)

const (
	DefaultSize    = 2
	DefaultPlayers = 2

	Empty = entity.NoPlayer
)

// Options configures a new game. Zero values fall back to the defaults.
type Options struct {
	Size      int // boards per side
	BoardSize int // cells per board side
	Players   int
}

func (that Options) withDefaults() Options {
	if that.Size == 0 {
		that.Size = DefaultSize
	}

	if that.BoardSize == 0 {
		that.BoardSize = DefaultBoardSize
	}

	if that.Players == 0 {
		that.Players = DefaultPlayers
	}

	return that
}

func (that Options) validate() error {
	if that.Size < 1 || that.BoardSize < 1 || that.Players < 1 {
		return fmt.Errorf("%w: size %d, board size %d, players %d",
			apperror.ErrInvalidOptions, that.Size, that.BoardSize, that.Players)
	}

	return nil
}

// Game owns the composite board and drives the place/rotate turn cycle.
// It is not safe for concurrent use; listeners run synchronously on the caller's stack.
type Game struct {
	size      int
	boardSize int
	players   int
	width     int

	boards [][]*Board // boards[bx][by]

	turn   int
	phase  Phase
	over   bool
	winner int

	callbacks []func()
}

func NewGame(opts Options) (*Game, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	game := &Game{
		size:      opts.Size,
		boardSize: opts.BoardSize,
		players:   opts.Players,
		width:     opts.Size * opts.BoardSize,
		turn:      1,
		phase:     PhasePlace,
	}

	game.boards = make([][]*Board, opts.Size)
	for bx := range game.boards {
		game.boards[bx] = make([]*Board, opts.Size)
		for by := range game.boards[bx] {
			game.boards[bx][by] = newBoard(game, opts.BoardSize)
		}
	}

	return game, nil
}

// MustNewGame - same as NewGame but panics on invalid options.
func MustNewGame(opts Options) *Game {
	game, err := NewGame(opts)
	if err != nil {
		panic(err)
	}

	return game
}

// Listen - registers a callback invoked after every state change.
func (that *Game) Listen(cb func()) {
	that.callbacks = append(that.callbacks, cb)
}

func (that *Game) changed() {
	for _, cb := range that.callbacks {
		cb()
	}
}

func (that *Game) Size() int {
	return that.size
}

func (that *Game) BoardSize() int {
	return that.boardSize
}

func (that *Game) Width() int {
	return that.width
}

func (that *Game) Players() int {
	return that.players
}

func (that *Game) Player() int {
	return that.turn
}

func (that *Game) Phase() Phase {
	return that.phase
}

// Board - returns the sub-board at board coordinates (bx, by).
func (that *Game) Board(bx, by int) (*Board, error) {
	if bx < 0 || bx >= that.size || by < 0 || by >= that.size {
		return nil, fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidBoard, bx, by)
	}

	return that.boards[bx][by], nil
}

// PieceAt - returns the marker at composite (x, y), Empty when out of range.
func (that *Game) PieceAt(x, y int) int {
	if !that.contains(x, y) {
		return Empty
	}

	board := that.boards[x/that.boardSize][y/that.boardSize]

	return board.Piece(x%that.boardSize, y%that.boardSize)
}

// Place - places the current player's marker at composite (x, y).
func (that *Game) Place(x, y int) error {
	if !that.contains(x, y) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, x, y)
	}

	board := that.boards[x/that.boardSize][y/that.boardSize]

	return board.Place(x%that.boardSize, y%that.boardSize)
}

// Rotate - rotates the sub-board at (bx, by) and ends the current player's turn.
func (that *Game) Rotate(bx, by int, clockwise bool) error {
	board, err := that.Board(bx, by)
	if err != nil {
		return err
	}

	return board.Rotate(clockwise)
}

// IsOver - scans for a winner until one is found, then stays latched.
func (that *Game) IsOver() bool {
	if that.over {
		return true
	}

	if winner := that.scanWinner(); winner != Empty {
		that.over = true
		that.winner = winner
		that.changed()
	}

	return that.over
}

// Winner - returns the latched winner, Empty while the game is running.
func (that *Game) Winner() int {
	if !that.IsOver() {
		return Empty
	}

	return that.winner
}

// nextPhase toggles place and rotate.
func (that *Game) nextPhase() {
	if that.phase == PhasePlace {
		that.phase = PhaseRotate
	} else {
		that.phase = PhasePlace
	}

	that.changed()
}

func (that *Game) switchPlayer() {
	that.turn++
	if that.turn > that.players {
		that.turn = 1
	}

	that.phase = PhasePlace
	that.changed()
}

// Grid - returns a copy of the composite board indexed [y][x].
func (that *Game) Grid() [][]int {
	grid := make([][]int, that.width)
	for y := range grid {
		grid[y] = make([]int, that.width)
		for x := range grid[y] {
			grid[y][x] = that.PieceAt(x, y)
		}
	}

	return grid
}

// Snapshot - returns a read-only view of the game for presentation.
func (that *Game) Snapshot(id string) *entity.Game {
	status := entity.StatusOngoing
	if that.IsOver() {
		status = entity.StatusFinished
	}

	return &entity.Game{
		ID:        id,
		Board:     that.Grid(),
		Size:      that.size,
		BoardSize: that.boardSize,
		Turn:      that.turn,
		Phase:     string(that.phase),
		Winner:    that.winner,
		Status:    status,
	}
}

func (that *Game) contains(x, y int) bool {
	return x >= 0 && x < that.width && y >= 0 && y < that.width
}
