package board

import "errors"

var (
	// ErrInvalidMove is returned when a move names an empty origin square
	// or a destination the piece cannot legally reach.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidSetup wraps every invariant violation found in a position.
	ErrInvalidSetup = errors.New("invalid position")

	// ErrCorruptPosition signals a move application that broke the
	// king-square bookkeeping. It is raised with panic, never returned.
	ErrCorruptPosition = errors.New("corrupt position")
)
