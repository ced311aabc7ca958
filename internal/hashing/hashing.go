// Package hashing provides position fingerprints for repetition detection.
package hashing

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Castling right markers appended to a fingerprint.
const (
	whiteKingsideMarker  = "WKS"
	whiteQueensideMarker = "WQS"
	blackKingsideMarker  = "BKS"
	blackQueensideMarker = "BQS"
)

// Fingerprint encodes the board occupancy, castling rights and en passant
// target. Two positions repeat iff their fingerprints are equal.
func Fingerprint(board *chess.Board) string {
	var sb strings.Builder
	sb.Grow(chess.BoardSize*chess.BoardSize + 14)

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sb.WriteByte(board.Squares[row][col].Symbol())
		}
	}

	rights := board.CastlingRights()
	if rights.WhiteKingside {
		sb.WriteString(whiteKingsideMarker)
	}
	if rights.WhiteQueenside {
		sb.WriteString(whiteQueensideMarker)
	}
	if rights.BlackKingside {
		sb.WriteString(blackKingsideMarker)
	}
	if rights.BlackQueenside {
		sb.WriteString(blackQueensideMarker)
	}

	if target, ok := board.EnPassantTarget(); ok {
		sb.WriteString(target.String())
	}
	return sb.String()
}

// RepetitionTable counts how often each fingerprint has occurred.
type RepetitionTable struct {
	// counts maps a fingerprint to its number of occurrences
	counts map[string]int
	// positions is the total number of fingerprints added
	positions int
}

// NewRepetitionTable creates an empty repetition table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{
		counts: make(map[string]int),
	}
}

// FromHistory builds a table from an ordered fingerprint history.
func FromHistory(history []string) *RepetitionTable {
	t := NewRepetitionTable()
	for _, fp := range history {
		t.Add(fp)
	}
	return t
}

// Add records one occurrence of fingerprint and returns its new count.
func (t *RepetitionTable) Add(fingerprint string) int {
	t.counts[fingerprint]++
	t.positions++
	return t.counts[fingerprint]
}

// Count returns the number of times fingerprint has occurred.
func (t *RepetitionTable) Count(fingerprint string) int {
	return t.counts[fingerprint]
}

// Positions returns the total number of fingerprints recorded.
func (t *RepetitionTable) Positions() int {
	return t.positions
}

// UniqueCount returns the number of distinct fingerprints recorded.
func (t *RepetitionTable) UniqueCount() int {
	return len(t.counts)
}

// Reset clears the table.
func (t *RepetitionTable) Reset() {
	t.counts = make(map[string]int)
	t.positions = 0
}
