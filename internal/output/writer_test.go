package output

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

var _ SessionWriter = (*ConsoleWriter)(nil)

func newTestWriter() (*ConsoleWriter, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutput(&buf).Build()
	return NewConsoleWriter(&buf, cfg), &buf
}

func TestConsoleWriter_Board(t *testing.T) {
	cw, buf := newTestWriter()
	require.NoError(t, cw.WriteBoard(chess.NewInitialBoard()))
	assert.Equal(t, initialASCII, buf.String())
}

func TestConsoleWriter_Outcome(t *testing.T) {
	tests := []struct {
		name string
		out  engine.Outcome
		want string
	}{
		{"quiet", engine.Outcome{Colour: chess.White, State: chess.Ongoing}, ""},
		{"check", engine.Outcome{Colour: chess.White, State: chess.Check, InCheck: true}, "Black is in check!\n"},
		{"check ending in a draw", engine.Outcome{Colour: chess.Black, State: chess.FiftyMoveDraw, InCheck: true}, "White is in check!\n"},
		{"promotion", engine.Outcome{Colour: chess.Black, PromotionPending: true}, PromotionPrompt},
		{"mate is left to the result", engine.Outcome{Colour: chess.Black, State: chess.CheckmateState, InCheck: true}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cw, buf := newTestWriter()
			require.NoError(t, cw.WriteOutcome(tt.out))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestConsoleWriter_FoolsMate(t *testing.T) {
	cw, buf := newTestWriter()
	game := engine.NewGame()

	for _, m := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		move := testutil.Move(t, m)
		out, err := game.Move(move.From, move.To)
		require.NoError(t, err, m)
		require.NoError(t, cw.WriteOutcome(out))
	}
	require.NoError(t, cw.WriteResult(game.Result()))

	assert.Equal(t, "Checkmate! Black wins!\n", buf.String())
}

func TestConsoleWriter_ResultInProgress(t *testing.T) {
	cw, buf := newTestWriter()
	require.NoError(t, cw.WriteResult(engine.Result{}))
	assert.Empty(t, buf.String())
}

func TestConsoleWriter_Error(t *testing.T) {
	cw, buf := newTestWriter()
	require.NoError(t, cw.WriteError(&errors.MoveError{Err: errors.ErrWrongOwner, From: "e7", To: "e5"}))
	assert.Equal(t, "Error: Not your piece\n", buf.String())
}

func TestConsoleWriter_Moves(t *testing.T) {
	cw, buf := newTestWriter()
	require.NoError(t, cw.WriteMoves(engine.NewGame().LegalMoves()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "a2a4 a2a3 "))
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), lineLength)
	}
	assert.Equal(t, 20, len(strings.Fields(buf.String())))
}

func TestConsoleWriter_Flush(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	cw := NewConsoleWriter(bw, config.NewConfig())

	require.NoError(t, cw.WritePrompt(chess.Black))
	assert.Empty(t, buf.String())
	require.NoError(t, cw.Flush())
	assert.Equal(t, Prompt(chess.Black), buf.String())
}

func TestLineWriter(t *testing.T) {
	var buf bytes.Buffer
	lw := NewLineWriter(&buf, 11)
	for _, word := range []string{"e2e4", "e7e5", "g1f3", "b8c6"} {
		lw.Write(word)
	}
	lw.NewLine()

	require.NoError(t, lw.Err())
	assert.Equal(t, "e2e4 e7e5\ng1f3 b8c6\n", buf.String())
}
