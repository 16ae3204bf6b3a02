package apperror

import (
	"errors"
	"fmt"
)

// ErrIllegalOperation is the only failure class of the engine: a command issued outside its legal phase or state.
var ErrIllegalOperation = errors.New("illegal operation")

var (
	ErrWrongPhase   = fmt.Errorf("%w: not allowed in current phase", ErrIllegalOperation)
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrIllegalOperation)
	ErrInvalidCell  = fmt.Errorf("%w: invalid cell", ErrIllegalOperation)
	ErrInvalidBoard = fmt.Errorf("%w: invalid board", ErrIllegalOperation)
	ErrGameFinished = fmt.Errorf("%w: game is already finished", ErrIllegalOperation)
)

var ErrInvalidOptions = errors.New("invalid game options")
