package pentago

// WinLength is the run length that ends the game.
const WinLength = 5

// directions in scan order: east, south, south-east, anti-diagonal.
var directions = [4][2]int{
	{1, 0},
	{0, 1},
	{1, 1},
	{-1, 1},
}

// scanWinner walks every cell row by row and returns the owner of the first run of WinLength found.
// Each run is reached from its first cell, so counting forward only is enough.
func (that *Game) scanWinner() int {
	for y := 0; y < that.width; y++ {
		for x := 0; x < that.width; x++ {
			player := that.PieceAt(x, y)
			if player == Empty {
				continue
			}

			for _, d := range directions {
				if that.countInDirection(x, y, d[0], d[1]) >= WinLength {
					return player
				}
			}
		}
	}

	return Empty
}

// countInDirection returns the length of the run starting at (x, y), the start cell included.
func (that *Game) countInDirection(x, y, dx, dy int) int {
	if dx == 0 && dy == 0 {
		return 0
	}

	player := that.PieceAt(x, y)
	count := 1

	for cx, cy := x+dx, y+dy; that.contains(cx, cy) && that.PieceAt(cx, cy) == player; cx, cy = cx+dx, cy+dy {
		count++
	}

	return count
}
