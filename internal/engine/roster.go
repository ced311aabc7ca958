package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Roster tracks which pieces belong to which side over a game: the IDs
// still on the board, the kinds each side has lost and how many pawns each
// side has promoted. It is bookkeeping only; the board stays authoritative.
type Roster struct {
	live       [2][]int
	lost       [2][]chess.Kind
	promotions [2]int
}

// NewRoster creates a roster from the pieces currently on the board.
func NewRoster(board *chess.Board) *Roster {
	r := &Roster{}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range board.Pieces(colour) {
			r.live[colour] = append(r.live[colour], p.ID)
		}
	}
	return r
}

// Owns reports whether the piece with the given ID is a live piece of colour.
func (r *Roster) Owns(colour chess.Colour, id int) bool {
	return slices.Contains(r.live[colour], id)
}

// Live returns the IDs of colour's pieces still on the board.
func (r *Roster) Live(colour chess.Colour) []int {
	return slices.Clone(r.live[colour])
}

// Count returns how many pieces colour has on the board.
func (r *Roster) Count(colour chess.Colour) int {
	return len(r.live[colour])
}

// Lost returns the kinds of colour's pieces that were captured, in order.
func (r *Roster) Lost(colour chess.Colour) []chess.Kind {
	return slices.Clone(r.lost[colour])
}

// Promotions returns the number of pawns colour has promoted.
func (r *Roster) Promotions(colour chess.Colour) int {
	return r.promotions[colour]
}

// record applies a committed move's captures and promotion.
func (r *Roster) record(tx *transaction) {
	if !tx.captured.IsEmpty() {
		victim := tx.captured.Colour
		r.drop(victim, tx.captured.ID)
		r.lost[victim] = append(r.lost[victim], tx.captured.Kind)
	}
	if !tx.promoted.IsEmpty() {
		r.drop(tx.colour, tx.mover.ID)
		r.live[tx.colour] = append(r.live[tx.colour], tx.promoted.ID)
		r.promotions[tx.colour]++
	}
}

func (r *Roster) drop(colour chess.Colour, id int) {
	if i := slices.Index(r.live[colour], id); i >= 0 {
		r.live[colour] = slices.Delete(r.live[colour], i, i+1)
	}
}
