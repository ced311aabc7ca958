// Package output renders the board and the session's messages for a
// console player.
package output

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

const emptyGlyph = "."

// figurines is indexed by colour, then kind.
var figurines = [2][chess.NumKinds]string{
	chess.Black: {chess.Pawn: "♟", chess.Knight: "♞", chess.Bishop: "♝", chess.Rook: "♜", chess.Queen: "♛", chess.King: "♚"},
	chess.White: {chess.Pawn: "♙", chess.Knight: "♘", chess.Bishop: "♗", chess.Rook: "♖", chess.Queen: "♕", chess.King: "♔"},
}

// Glyph returns the text drawn for p: its letter (upper case for White) or
// its figurine, and "." for an empty square.
func Glyph(p chess.Piece, symbols config.SymbolSet) string {
	if p.IsEmpty() {
		return emptyGlyph
	}
	if symbols == config.Unicode {
		return figurines[p.Colour][p.Kind]
	}
	return string(p.Symbol())
}

// RenderBoard draws the board one rank per line. With coordinates the file
// letters frame the board top and bottom and each rank line starts and
// ends with its number. A flipped board puts rank 1 at the top and the h
// file on the left.
func RenderBoard(board *chess.Board, display config.DisplayConfig) string {
	rows, cols := boardOrder(display.Flipped)

	var sb strings.Builder
	files := fileLabels(cols)
	if display.Coordinates {
		sb.WriteString(files)
	}
	for _, row := range rows {
		rank := string(rune('0' + chess.BoardSize - row))
		if display.Coordinates {
			sb.WriteString(rank)
			sb.WriteByte(' ')
		}
		for i, col := range cols {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(Glyph(board.Squares[row][col], display.Symbols))
		}
		if display.Coordinates {
			sb.WriteByte(' ')
			sb.WriteString(rank)
		}
		sb.WriteByte('\n')
	}
	if display.Coordinates {
		sb.WriteString(files)
	}
	return sb.String()
}

// boardOrder returns the rows and columns in drawing order.
func boardOrder(flipped bool) (rows, cols []int) {
	rows = make([]int, chess.BoardSize)
	cols = make([]int, chess.BoardSize)
	for i := 0; i < chess.BoardSize; i++ {
		if flipped {
			rows[i] = chess.BoardSize - 1 - i
			cols[i] = chess.BoardSize - 1 - i
		} else {
			rows[i] = i
			cols[i] = i
		}
	}
	return rows, cols
}

func fileLabels(cols []int) string {
	var sb strings.Builder
	sb.WriteString("  ")
	for i, col := range cols {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte('a' + col))
	}
	sb.WriteByte('\n')
	return sb.String()
}
