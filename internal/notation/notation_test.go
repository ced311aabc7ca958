package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		input   string
		want    chess.Square
		wantErr bool
	}{
		{"e4", chess.NewSquare(4, 4), false},
		{"a8", chess.NewSquare(0, 0), false},
		{"h1", chess.NewSquare(7, 7), false},
		{"E2", chess.NewSquare(6, 4), false},
		{" d5 ", chess.NewSquare(3, 3), false},
		{"i1", chess.NoSquare, true},
		{"a9", chess.NoSquare, true},
		{"a0", chess.NoSquare, true},
		{"e", chess.NoSquare, true},
		{"e44", chess.NoSquare, true},
		{"", chess.NoSquare, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSquare(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrInvalidSquare))
				var perr *errors.ParseError
				assert.True(t, errors.As(err, &perr))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatSquare_RoundTrip(t *testing.T) {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.NewSquare(row, col)
			got, err := ParseSquare(FormatSquare(sq))
			require.NoError(t, err)
			assert.Equal(t, sq, got)
		}
	}
	assert.Equal(t, "-", FormatSquare(chess.NoSquare))
}

func TestParsePromotion(t *testing.T) {
	tests := []struct {
		input string
		want  chess.Kind
	}{
		{"Queen", chess.Queen},
		{"queen", chess.Queen},
		{"Q", chess.Queen},
		{"r", chess.Rook},
		{"ROOK", chess.Rook},
		{"Bishop", chess.Bishop},
		{"b", chess.Bishop},
		{"knight", chess.Knight},
		{"N", chess.Knight},
		{" n ", chess.Knight},
		{"D", chess.Queen},
		{"S", chess.Knight},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePromotion(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "king", "K", "pawn", "x"} {
		t.Run("reject "+bad, func(t *testing.T) {
			got, err := ParsePromotion(bad)
			assert.True(t, errors.Is(err, errors.ErrInvalidPromotionChoice))
			assert.Equal(t, chess.Empty, got)
		})
	}
}

func TestCastleMove(t *testing.T) {
	tests := []struct {
		colour   chess.Colour
		kingside bool
		want     string
	}{
		{chess.White, true, "e1g1"},
		{chess.White, false, "e1c1"},
		{chess.Black, true, "e8g8"},
		{chess.Black, false, "e8c8"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, CastleMove(tt.colour, tt.kingside).String())
		})
	}
}

func TestFormatMove(t *testing.T) {
	m := chess.Move{From: chess.Sq('e', '2'), To: chess.Sq('e', '4')}
	assert.Equal(t, "e2 e4", FormatMove(m))
}
