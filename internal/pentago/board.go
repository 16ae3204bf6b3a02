package pentago

import (
	"fmt"

	"github.com/rocketscienceinc/pentago-backend/internal/apperror"
)

const DefaultBoardSize = 3

// Board is one rotatable square quadrant of the composite board.
// Cells are indexed grid[x][y].
type Board struct {
	game *Game
	size int
	grid [][]int

	onRotate []func(clockwise bool)
}

func newBoard(game *Game, size int) *Board {
	return &Board{
		game: game,
		size: size,
		grid: newGrid(size),
	}
}

func newGrid(size int) [][]int {
	grid := make([][]int, size)
	for x := range grid {
		grid[x] = make([]int, size)
	}

	return grid
}

func (that *Board) Size() int {
	return that.size
}

// ListenRotate - registers a callback invoked with the direction after every completed rotation.
func (that *Board) ListenRotate(cb func(clockwise bool)) {
	that.onRotate = append(that.onRotate, cb)
}

func (that *Board) CanPlace() bool {
	return that.game.Phase() == PhasePlace && !that.game.IsOver()
}

func (that *Board) CanRotate() bool {
	return that.game.Phase() == PhaseRotate && !that.game.IsOver()
}

func (that *Board) IsEmpty(x, y int) bool {
	return that.Piece(x, y) == Empty
}

// Piece - returns the marker at local (x, y), Empty when out of range.
func (that *Board) Piece(x, y int) int {
	if !that.contains(x, y) {
		return Empty
	}

	return that.grid[x][y]
}

// Place - writes the current player's marker into (x, y) and hands the turn over to the rotate phase.
func (that *Board) Place(x, y int) error {
	if err := that.validatePlace(x, y); err != nil {
		return err
	}

	that.grid[x][y] = that.game.Player()
	that.game.nextPhase()
	that.game.IsOver()

	return nil
}

func (that *Board) validatePlace(x, y int) error {
	if that.game.IsOver() {
		return apperror.ErrGameFinished
	}

	if that.game.Phase() != PhasePlace {
		return fmt.Errorf("%w: place during %s", apperror.ErrWrongPhase, that.game.Phase())
	}

	if !that.contains(x, y) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, x, y)
	}

	if that.grid[x][y] != Empty {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, x, y)
	}

	return nil
}

// Rotate - turns the board by 90 degrees, notifies rotate listeners and passes the turn to the next player.
func (that *Board) Rotate(clockwise bool) error {
	if that.game.IsOver() {
		return apperror.ErrGameFinished
	}

	if that.game.Phase() != PhaseRotate {
		return fmt.Errorf("%w: rotate during %s", apperror.ErrWrongPhase, that.game.Phase())
	}

	that.grid = rotateGrid(that.grid, clockwise)

	for _, cb := range that.onRotate {
		cb(clockwise)
	}

	that.game.switchPlayer()
	that.game.IsOver()

	return nil
}

func rotateGrid(grid [][]int, clockwise bool) [][]int {
	n := len(grid)
	rotated := newGrid(n)

	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if clockwise {
				rotated[x][y] = grid[y][n-1-x]
			} else {
				rotated[x][y] = grid[n-1-y][x]
			}
		}
	}

	return rotated
}

func (that *Board) contains(x, y int) bool {
	return x >= 0 && x < that.size && y >= 0 && y < that.size
}
