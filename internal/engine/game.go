package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// Outcome describes a move accepted by Game.Move or completed by
// Game.Promote.
type Outcome struct {
	Move   chess.Move
	Piece  chess.Kind
	Colour chess.Colour

	// Captured is the kind taken by the move, Empty if none.
	Captured  chess.Kind
	EnPassant bool
	Castle    bool

	// PromotionPending is set when the move reached the last rank and
	// Game.Promote must be called before play continues.
	PromotionPending bool
	PromotedTo       chess.Kind

	// State is the game state for the side now to move. It is not set
	// while a promotion is pending.
	State chess.GameState

	// InCheck is set when the move leaves the opponent's king attacked,
	// whatever State ranks first.
	InCheck bool
}

// Result records how a game ended.
type Result struct {
	Over     bool
	Draw     bool
	Winner   chess.Colour
	Resigned bool

	// State is the terminal state that ended the game. A resignation
	// leaves it Ongoing.
	State chess.GameState
}

// Reason describes why the game ended.
func (r Result) Reason() string {
	switch {
	case !r.Over:
		return ""
	case r.Resigned:
		return "resignation"
	}
	return r.State.String()
}

// String returns the result in the usual score notation.
func (r Result) String() string {
	switch {
	case !r.Over:
		return "*"
	case r.Draw:
		return "1/2-1/2"
	case r.Winner == chess.White:
		return "1-0"
	}
	return "0-1"
}

// Option configures a Game.
type Option func(*Game)

// WithAutoDraw sets whether the fifty-move rule and threefold repetition
// end the game as soon as they apply. When disabled they must be claimed
// with ClaimDraw, and until then State reports the game as still in play.
func WithAutoDraw(auto bool) Option {
	return func(g *Game) {
		g.autoDraw = auto
	}
}

// Game is a single game session: the board, whose turn it is, the roster
// and any promotion awaiting a choice.
type Game struct {
	board    *chess.Board
	toMove   chess.Colour
	ply      int
	roster   *Roster
	pending  *transaction
	state    chess.GameState
	result   Result
	autoDraw bool
}

// NewGame starts a game from the standard initial position with White to
// move.
func NewGame(opts ...Option) *Game {
	return NewGameFromBoard(chess.NewInitialBoard(), chess.White, opts...)
}

// NewGameFromBoard starts a game from an arbitrary position. The game takes
// ownership of the board. If the board has no history, its current
// position is recorded as the first one.
func NewGameFromBoard(board *chess.Board, toMove chess.Colour, opts ...Option) *Game {
	g := &Game{
		board:    board,
		toMove:   toMove,
		roster:   NewRoster(board),
		autoDraw: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	if len(board.History) == 0 {
		board.PushPosition(hashing.Fingerprint(board))
	}
	g.updateResult()
	return g
}

// Move attempts to move the piece on from to to for the side to move. On
// rejection the board is unchanged and the error is a *errors.MoveError
// wrapping one of the rejection sentinels.
func (g *Game) Move(from, to chess.Square) (Outcome, error) {
	switch {
	case g.result.Over:
		return Outcome{}, g.moveError(errors.ErrGameOver, from, to)
	case g.pending != nil:
		return Outcome{}, g.moveError(errors.ErrPromotionPending, from, to)
	}

	tx, err := attemptMove(g.board, g.toMove, from, to)
	if err != nil {
		return Outcome{}, g.moveError(err, from, to)
	}

	if tx.reach.NeedsPromotion {
		g.pending = tx
		out := g.outcome(tx)
		out.PromotionPending = true
		return out, nil
	}
	return g.finish(tx), nil
}

// Promote completes a pending promotion with the given piece kind. An
// unsupported kind rolls the whole move back.
func (g *Game) Promote(kind chess.Kind) (Outcome, error) {
	tx := g.pending
	if tx == nil {
		return Outcome{}, g.moveError(errors.ErrNoPromotionPending, chess.NoSquare, chess.NoSquare)
	}
	g.pending = nil

	if err := tx.promote(kind); err != nil {
		tx.rollback()
		return Outcome{}, g.moveError(err, tx.from, tx.to)
	}
	return g.finish(tx), nil
}

// CancelPromotion withdraws a pending promotion move.
func (g *Game) CancelPromotion() error {
	if g.pending == nil {
		return errors.ErrNoPromotionPending
	}
	g.pending.rollback()
	g.pending = nil
	return nil
}

// PromotionPending reports whether a promotion choice is awaited.
func (g *Game) PromotionPending() bool {
	return g.pending != nil
}

// Resign ends the game with colour's opponent winning.
func (g *Game) Resign(colour chess.Colour) error {
	if g.result.Over {
		return errors.ErrGameOver
	}
	if g.pending != nil {
		g.pending.rollback()
		g.pending = nil
	}
	g.result = Result{Over: true, Winner: colour.Opposite(), Resigned: true}
	return nil
}

// ClaimDraw ends the game as a draw if the fifty-move rule or threefold
// repetition applies.
func (g *Game) ClaimDraw() error {
	switch {
	case g.result.Over:
		return errors.ErrGameOver
	case g.pending != nil:
		return errors.ErrPromotionPending
	}

	state := ClaimableDraw(g.board)
	if state == chess.Ongoing {
		return errors.ErrNoDrawAvailable
	}
	g.state = state
	g.result = Result{Over: true, Draw: true, State: state}
	return nil
}

// DrawClaimable returns the draw ClaimDraw would record, or Ongoing.
func (g *Game) DrawClaimable() chess.GameState {
	if g.result.Over || g.pending != nil {
		return chess.Ongoing
	}
	return ClaimableDraw(g.board)
}

// State returns the game state for the side to move.
func (g *Game) State() chess.GameState {
	return g.state
}

// StateFor computes the game state as if colour were to move. While a
// promotion is pending the last committed state is returned.
func (g *Game) StateFor(colour chess.Colour) chess.GameState {
	if g.pending != nil || colour == g.toMove {
		return g.state
	}
	return g.evaluate(colour)
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.toMove
}

// Ply returns the number of completed half-moves.
func (g *Game) Ply() int {
	return g.ply
}

// MoveNumber returns the full-move number of the current turn, from 1.
func (g *Game) MoveNumber() int {
	return g.ply/2 + 1
}

// Result returns how the game ended, if it has.
func (g *Game) Result() Result {
	return g.result
}

// Roster returns the game's piece bookkeeping.
func (g *Game) Roster() *Roster {
	return g.roster
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// LegalMoves returns the legal moves of the side to move, or nil when the
// game is over or a promotion is pending.
func (g *Game) LegalMoves() []chess.Move {
	if g.result.Over || g.pending != nil {
		return nil
	}
	return LegalMoves(g.board, g.toMove)
}

// finish commits tx, hands the turn over and re-evaluates the game state.
func (g *Game) finish(tx *transaction) Outcome {
	out := g.outcome(tx)
	g.roster.record(tx)
	tx.commit()

	g.ply++
	g.toMove = g.toMove.Opposite()
	g.updateResult()

	out.State = g.state
	out.InCheck = IsInCheck(g.board, g.toMove)
	return out
}

func (g *Game) outcome(tx *transaction) Outcome {
	return Outcome{
		Move:       chess.Move{From: tx.from, To: tx.to},
		Piece:      tx.mover.Kind,
		Colour:     tx.colour,
		Captured:   tx.captured.Kind,
		EnPassant:  tx.reach.EnPassant,
		Castle:     tx.reach.Castle,
		PromotedTo: tx.promoted.Kind,
	}
}

// updateResult refreshes the cached state and ends the game when a
// terminal state applies.
func (g *Game) updateResult() {
	g.state = g.evaluate(g.toMove)

	switch g.state {
	case chess.CheckmateState:
		g.result = Result{Over: true, Winner: g.toMove.Opposite(), State: g.state}
	case chess.StalemateState, chess.InsufficientMaterial:
		g.result = Result{Over: true, Draw: true, State: g.state}
	case chess.FiftyMoveDraw, chess.ThreefoldRepetition:
		g.result = Result{Over: true, Draw: true, State: g.state}
	}
}

// evaluate is QueryState for colour, except that a draw waiting to be
// claimed leaves the game in play.
func (g *Game) evaluate(colour chess.Colour) chess.GameState {
	state := QueryState(g.board, colour)
	if g.autoDraw || (state != chess.FiftyMoveDraw && state != chess.ThreefoldRepetition) {
		return state
	}
	return playState(g.board, colour)
}

func (g *Game) moveError(err error, from, to chess.Square) error {
	e := &errors.MoveError{
		Err:    err,
		Colour: g.toMove.String(),
		Ply:    g.ply + 1,
	}
	if from.IsValid() {
		e.From = from.String()
	}
	if to.IsValid() {
		e.To = to.String()
	}
	return e
}
