package ledger

import (
	"fmt"
	"math"

	"github.com/osse101/IdleGather_Go/internal/domain"
)

// wholeUnitEpsilon absorbs float drift so that e.g. ten grants of 0.1 emit one unit.
const wholeUnitEpsilon = 1e-9

// FractionalLedger carries sub-unit remainders per category across grants.
// Whole units are emitted as soon as the accumulator crosses an integer boundary;
// only the remainder in [0, 1) is kept. Entries are created lazily on first grant.
//
// FractionalLedger is not safe for concurrent use; the engine serializes access.
type FractionalLedger struct {
	accumulated map[string]float64
}

// New creates an empty ledger
func New() *FractionalLedger {
	return &FractionalLedger{accumulated: make(map[string]float64)}
}

// Add accrues amount into category and returns the whole units to emit.
// The emitted units are subtracted from the accumulator before returning.
func (l *FractionalLedger) Add(category string, amount float64) (int64, error) {
	if category == "" {
		return 0, fmt.Errorf("%w: empty ledger category", domain.ErrInvalidInput)
	}
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: grant amount %v for %s", domain.ErrInvalidInput, amount, category)
	}

	acc := l.accumulated[category] + amount
	whole := math.Floor(acc + wholeUnitEpsilon)
	remainder := acc - whole
	if remainder < 0 {
		remainder = 0
	}
	l.accumulated[category] = remainder
	return int64(whole), nil
}

// Remainder returns the unclaimed fraction for a category (0 when never granted).
func (l *FractionalLedger) Remainder(category string) float64 {
	return l.accumulated[category]
}

// Categories returns the number of categories that have received a grant.
func (l *FractionalLedger) Categories() int {
	return len(l.accumulated)
}

// Snapshot returns a copy of every remainder.
func (l *FractionalLedger) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(l.accumulated))
	for k, v := range l.accumulated {
		out[k] = v
	}
	return out
}

// Restore replaces the ledger contents. Every remainder must lie in [0, 1).
// On error the ledger is left unchanged.
func (l *FractionalLedger) Restore(remainders map[string]float64) error {
	for k, v := range remainders {
		if k == "" {
			return fmt.Errorf("%w: empty ledger category", domain.ErrInvalidInput)
		}
		if v < 0 || v >= 1 || math.IsNaN(v) {
			return fmt.Errorf("%w: ledger remainder %v for %s outside [0,1)", domain.ErrInvalidInput, v, k)
		}
	}

	restored := make(map[string]float64, len(remainders))
	for k, v := range remainders {
		restored[k] = v
	}
	l.accumulated = restored
	return nil
}
