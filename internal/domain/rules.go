package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidRulesConfig is returned when a replacement RulesConfig fails
// validation. The previous configuration stays in effect.
var ErrInvalidRulesConfig = errors.New("invalid rules config")

// RulesConfig holds the tunable thresholds for all screening rules.
// It is replaced as a whole unit: every screening after a replacement
// observes the new thresholds, never a partial mix of old and new.
type RulesConfig struct {
	VelocityThreshold         int             `json:"velocity_threshold"`
	VelocityWindowMinutes     int             `json:"velocity_window_minutes"`
	AmountThreshold           decimal.Decimal `json:"amount_threshold"`
	StructuringWindowMinutes  int             `json:"structuring_window_minutes"`
	StructuringMinCount       int             `json:"structuring_min_count"`
	StructuringAmountVariance decimal.Decimal `json:"structuring_amount_variance"`
	FuzzyMatchThreshold       int             `json:"fuzzy_match_threshold"`
}

// Validate rejects configurations that would make the rule pipeline
// meaningless. An invalid config must never be applied, even partially.
func (c RulesConfig) Validate() error {
	if c.VelocityThreshold <= 0 {
		return fmt.Errorf("%w: velocity_threshold must be positive, got %d", ErrInvalidRulesConfig, c.VelocityThreshold)
	}
	if c.VelocityWindowMinutes <= 0 {
		return fmt.Errorf("%w: velocity_window_minutes must be positive, got %d", ErrInvalidRulesConfig, c.VelocityWindowMinutes)
	}
	if c.AmountThreshold.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount_threshold must be positive, got %s", ErrInvalidRulesConfig, c.AmountThreshold)
	}
	if c.StructuringWindowMinutes <= 0 {
		return fmt.Errorf("%w: structuring_window_minutes must be positive, got %d", ErrInvalidRulesConfig, c.StructuringWindowMinutes)
	}
	if c.StructuringMinCount <= 0 {
		return fmt.Errorf("%w: structuring_min_count must be positive, got %d", ErrInvalidRulesConfig, c.StructuringMinCount)
	}
	if c.StructuringAmountVariance.IsNegative() {
		return fmt.Errorf("%w: structuring_amount_variance must not be negative, got %s", ErrInvalidRulesConfig, c.StructuringAmountVariance)
	}
	if c.FuzzyMatchThreshold < 0 || c.FuzzyMatchThreshold > 100 {
		return fmt.Errorf("%w: fuzzy_match_threshold must be in [0,100], got %d", ErrInvalidRulesConfig, c.FuzzyMatchThreshold)
	}
	return nil
}
