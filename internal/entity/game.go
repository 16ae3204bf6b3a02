package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PhasePlace  = "place"
	PhaseRotate = "rotate"

	NoPlayer = 0
)

// Game is a read-only view of a pentago match handed to presentation code.
type Game struct {
	ID        string  `json:"id"`
	Board     [][]int `json:"board"`
	Size      int     `json:"size"`
	BoardSize int     `json:"board_size"`
	Turn      int     `json:"player_turn"`
	Phase     string  `json:"phase"`
	Winner    int     `json:"winner"`
	Status    string  `json:"status"`
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// Width - returns the number of cells along one side of the composite board.
func (that *Game) Width() int {
	return that.Size * that.BoardSize
}

// PieceAt - returns the marker at composite (x, y), NoPlayer when out of range.
func (that *Game) PieceAt(x, y int) int {
	if y < 0 || y >= len(that.Board) || x < 0 || x >= len(that.Board[y]) {
		return NoPlayer
	}

	return that.Board[y][x]
}
