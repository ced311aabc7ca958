// Package errors provides sentinel errors and error types for the chess engine.
// It defines the move rejection kinds and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors for move rejection. Every rejection leaves the board
// exactly as it was before the attempt.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrNoPieceAtSource indicates the source square is empty or off the board.
	ErrNoPieceAtSource = errors.New("no piece at starting position")

	// ErrWrongOwner indicates the piece on the source square belongs to the opponent.
	ErrWrongOwner = errors.New("not your piece")

	// ErrInvalidDestination indicates an off-board destination or one held by a friendly piece.
	ErrInvalidDestination = errors.New("invalid destination")

	// ErrIllegalPieceMove indicates the piece cannot move that way.
	ErrIllegalPieceMove = errors.New("illegal move for piece")

	// ErrIllegalCastle indicates castling is not permitted in the position.
	ErrIllegalCastle = errors.New("invalid castling move")

	// ErrMoveExposesCheck indicates the move would leave the mover's king in check.
	ErrMoveExposesCheck = errors.New("move puts your king in check")

	// ErrInvalidPromotionChoice indicates an unsupported promotion piece.
	ErrInvalidPromotionChoice = errors.New("invalid promotion piece")
)

// Sentinel errors for session and adapter conditions.
var (
	// ErrPromotionPending indicates a promotion choice is required before the next move.
	ErrPromotionPending = errors.New("promotion choice pending")

	// ErrNoPromotionPending indicates a promotion choice was given with no pawn to promote.
	ErrNoPromotionPending = errors.New("no promotion pending")

	// ErrGameOver indicates a move was attempted after the game ended.
	ErrGameOver = errors.New("game is over")

	// ErrNoDrawAvailable indicates a draw claim when no draw rule applies.
	ErrNoDrawAvailable = errors.New("no draw available")

	// ErrInvalidSquare indicates malformed algebraic square text.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrParseFailure indicates input that is not a recognised command or move.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejection with move context: the squares, the side
// that attempted the move and the ply it was attempted at. It implements
// the error interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	From   string // Source square in algebraic notation (if known)
	To     string // Destination square in algebraic notation (if known)
	Colour string // Side that attempted the move
	Ply    int    // 1-based ply number of the attempt (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Colour != "" {
		parts = append(parts, e.Colour)
	}

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", orDash(e.From), orDash(e.To)))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// ParseError represents an input parsing error with the offending text.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text that failed to parse
	Expected string // What was expected
}

// Error returns a formatted error message with the input and expectation.
func (e *ParseError) Error() string {
	var parts []string
	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Input))
	}
	if e.Expected != "" {
		parts = append(parts, "expected "+e.Expected)
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}
	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	return pkgerrors.WithMessage(err, context)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	return pkgerrors.WithMessagef(err, format, args...)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Kind returns the rejection sentinel at the root of err, or nil if err
// does not wrap one of the move rejection errors.
func Kind(err error) error {
	for _, sentinel := range moveKinds {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return nil
}

var moveKinds = []error{
	ErrNoPieceAtSource,
	ErrWrongOwner,
	ErrInvalidDestination,
	ErrIllegalPieceMove,
	ErrIllegalCastle,
	ErrMoveExposesCheck,
	ErrInvalidPromotionChoice,
}
