package config

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// RulesConfig holds settings that change how the session applies the
// draw rules and asks for promotions.
type RulesConfig struct {
	// AutoDraw ends the game as soon as the fifty-move rule or threefold
	// repetition applies. When false the players must claim the draw.
	AutoDraw bool

	// DefaultPromotion is used when the player gives an empty promotion
	// answer. chess.Empty means ask again.
	DefaultPromotion chess.Kind
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		AutoDraw:         true,
		DefaultPromotion: chess.Empty,
	}
}

// Validate checks the rule settings.
func (r RulesConfig) Validate() error {
	if r.DefaultPromotion != chess.Empty && !r.DefaultPromotion.IsPromotionChoice() {
		return errors.Wrapf(errors.ErrInvalidConfig, "cannot promote to %s", r.DefaultPromotion)
	}
	return nil
}
