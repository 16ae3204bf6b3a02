package pentago

import (
	"testing"

	"github.com/rocketscienceinc/pentago-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type listenerMock struct {
	mock.Mock
}

func (that *listenerMock) Changed() {
	that.Called()
}

func (that *listenerMock) Rotated(clockwise bool) {
	that.Called(clockwise)
}

// fromRows converts rows indexed [y][x] into a grid indexed [x][y].
func fromRows(rows [][]int) [][]int {
	grid := newGrid(len(rows))
	for y, row := range rows {
		for x, v := range row {
			grid[x][y] = v
		}
	}

	return grid
}

// toRows converts a grid indexed [x][y] into rows indexed [y][x].
func toRows(grid [][]int) [][]int {
	rows := newGrid(len(grid))
	for x, col := range grid {
		for y, v := range col {
			rows[y][x] = v
		}
	}

	return rows
}

func mustBoard(t *testing.T, game *Game, bx, by int) *Board {
	t.Helper()

	board, err := game.Board(bx, by)
	require.NoError(t, err)

	return board
}

func TestBoard_Place(t *testing.T) {
	t.Run("Place writes current player and switches to rotate phase", func(t *testing.T) {
		// Given: a new game
		game := MustNewGame(Options{})
		board := mustBoard(t, game, 0, 0)

		// When: player 1 places at local (1, 2)
		err := board.Place(1, 2)

		// Then: the cell holds player 1 and the phase is rotate
		require.NoError(t, err)
		assert.Equal(t, 1, board.Piece(1, 2))
		assert.False(t, board.IsEmpty(1, 2))
		assert.Equal(t, PhaseRotate, game.Phase())
		assert.Equal(t, 1, game.Player())
	})

	t.Run("Place on occupied cell is ignored", func(t *testing.T) {
		// Given: player 1 placed at (0, 0) and player 2 is to place
		game := MustNewGame(Options{})
		board := mustBoard(t, game, 0, 0)
		require.NoError(t, board.Place(0, 0))
		require.NoError(t, mustBoard(t, game, 1, 1).Rotate(true))

		listener := &listenerMock{}
		game.Listen(listener.Changed)

		// When: player 2 tries the same cell
		err := board.Place(0, 0)

		// Then: the marker, phase and turn are unchanged and nobody was notified
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.ErrorIs(t, err, apperror.ErrIllegalOperation)
		assert.Equal(t, 1, board.Piece(0, 0))
		assert.Equal(t, PhasePlace, game.Phase())
		assert.Equal(t, 2, game.Player())
		listener.AssertNotCalled(t, "Changed")
	})

	t.Run("Place during rotate phase is ignored", func(t *testing.T) {
		// Given: a game in the rotate phase
		game := MustNewGame(Options{})
		board := mustBoard(t, game, 0, 0)
		require.NoError(t, board.Place(0, 0))

		// When: another placement is attempted
		err := board.Place(1, 1)

		// Then: ErrWrongPhase is returned and the cell stays empty
		require.ErrorIs(t, err, apperror.ErrWrongPhase)
		assert.True(t, board.IsEmpty(1, 1))
		assert.False(t, board.CanPlace())
		assert.True(t, board.CanRotate())
	})

	t.Run("Place outside the board is ignored", func(t *testing.T) {
		// Given: a new game
		game := MustNewGame(Options{})
		board := mustBoard(t, game, 0, 0)

		// When: a placement outside the 3x3 board is attempted
		err := board.Place(3, -1)

		// Then: ErrInvalidCell is returned and the phase is unchanged
		require.ErrorIs(t, err, apperror.ErrInvalidCell)
		assert.Equal(t, PhasePlace, game.Phase())
	})
}

func TestBoard_Rotate(t *testing.T) {
	t.Run("Clockwise rotation moves top-left to top-right", func(t *testing.T) {
		// Given: a board holding a single marker at its top-left corner during the rotate phase
		game := MustNewGame(Options{})
		board := mustBoard(t, game, 0, 0)
		board.grid = fromRows([][]int{
			{1, 0, 0},
			{0, 0, 0},
			{0, 0, 0},
		})
		game.phase = PhaseRotate

		// When: the board is rotated clockwise
		err := board.Rotate(true)

		// Then: the marker ends in the top-right corner
		require.NoError(t, err)
		assert.Equal(t, [][]int{
			{0, 0, 1},
			{0, 0, 0},
			{0, 0, 0},
		}, toRows(board.grid))
	})

	t.Run("Counter-clockwise rotation moves top-left to bottom-left", func(t *testing.T) {
		// Given: a board holding a single marker at its top-left corner during the rotate phase
		game := MustNewGame(Options{})
		board := mustBoard(t, game, 0, 0)
		board.grid = fromRows([][]int{
			{1, 0, 0},
			{0, 0, 0},
			{0, 0, 0},
		})
		game.phase = PhaseRotate

		// When: the board is rotated counter-clockwise
		err := board.Rotate(false)

		// Then: the marker ends in the bottom-left corner
		require.NoError(t, err)
		assert.Equal(t, [][]int{
			{0, 0, 0},
			{0, 0, 0},
			{1, 0, 0},
		}, toRows(board.grid))
	})

	t.Run("Rotation notifies listeners then passes the turn", func(t *testing.T) {
		// Given: player 1 has placed and rotate listeners are registered
		game := MustNewGame(Options{})
		require.NoError(t, game.Place(0, 0))
		board := mustBoard(t, game, 1, 0)

		var order []string
		board.ListenRotate(func(clockwise bool) {
			assert.False(t, clockwise)
			assert.Equal(t, 1, game.Player(), "turn must switch after rotate listeners")
			order = append(order, "first")
		})
		board.ListenRotate(func(bool) {
			order = append(order, "second")
		})

		listener := &listenerMock{}
		listener.On("Rotated", false).Once()
		board.ListenRotate(listener.Rotated)

		// When: the board is rotated counter-clockwise
		err := board.Rotate(false)

		// Then: listeners ran in registration order and player 2 is to place
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, order)
		listener.AssertExpectations(t)
		assert.Equal(t, 2, game.Player())
		assert.Equal(t, PhasePlace, game.Phase())
	})

	t.Run("Rotate during place phase is ignored", func(t *testing.T) {
		// Given: a board with a marker during the place phase
		game := MustNewGame(Options{})
		require.NoError(t, game.Place(0, 0))
		require.NoError(t, game.Rotate(1, 1, true))
		board := mustBoard(t, game, 0, 0)

		listener := &listenerMock{}
		board.ListenRotate(listener.Rotated)
		game.Listen(listener.Changed)

		// When: a rotation is attempted
		err := board.Rotate(true)

		// Then: grid, phase and player are unchanged and nobody was notified
		require.ErrorIs(t, err, apperror.ErrWrongPhase)
		assert.Equal(t, 1, board.Piece(0, 0))
		assert.Equal(t, PhasePlace, game.Phase())
		assert.Equal(t, 2, game.Player())
		listener.AssertNotCalled(t, "Rotated", mock.Anything)
		listener.AssertNotCalled(t, "Changed")
	})
}

func TestRotateGrid(t *testing.T) {
	original := fromRows([][]int{
		{1, 2, 0},
		{0, 1, 2},
		{2, 0, 0},
	})

	t.Run("Four rotations in the same direction restore the grid", func(t *testing.T) {
		for _, clockwise := range []bool{true, false} {
			grid := original
			for range 4 {
				grid = rotateGrid(grid, clockwise)
			}

			assert.Equal(t, original, grid)
		}
	})

	t.Run("Opposite rotations cancel out", func(t *testing.T) {
		grid := rotateGrid(rotateGrid(original, true), false)

		assert.Equal(t, original, grid)
	})

	t.Run("Rotation keeps the source grid intact", func(t *testing.T) {
		_ = rotateGrid(original, true)

		assert.Equal(t, 1, original[0][0])
		assert.Equal(t, 2, original[1][0])
	})
}
