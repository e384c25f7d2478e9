package leveling

import (
	"fmt"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/IdleGather_Go/internal/domain"
)

// Curve is the experience-to-next-level policy. It is pure: the same level
// always yields the same threshold, so leveling is deterministic and replayable.
//
// threshold(L) = round(BaseXP * Growth^(L-1))
type Curve struct {
	BaseXP   float64
	Growth   float64
	MaxLevel int

	thresholds *lru.Cache[int, float64]
}

// NewCurve creates a curve. maxLevel of 0 means uncapped.
func NewCurve(baseXP, growth float64, maxLevel int) (*Curve, error) {
	if baseXP < 1 || math.IsInf(baseXP, 0) || math.IsNaN(baseXP) {
		return nil, fmt.Errorf("%w: base xp must be >= 1, got %v", domain.ErrInvalidInput, baseXP)
	}
	if growth < 1 || math.IsInf(growth, 0) || math.IsNaN(growth) {
		return nil, fmt.Errorf("%w: growth must be >= 1, got %v", domain.ErrInvalidInput, growth)
	}
	if maxLevel < 0 {
		return nil, fmt.Errorf("%w: max level must be >= 0, got %d", domain.ErrInvalidInput, maxLevel)
	}

	cache, err := lru.New[int, float64](thresholdCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create threshold cache: %w", err)
	}

	return &Curve{
		BaseXP:     baseXP,
		Growth:     growth,
		MaxLevel:   maxLevel,
		thresholds: cache,
	}, nil
}

// DefaultCurve returns the standard curve (100 xp, +10% per level, cap 99)
func DefaultCurve() *Curve {
	c, err := NewCurve(DefaultBaseXP, DefaultGrowth, DefaultMaxLevel)
	if err != nil {
		panic(err) // constants are valid
	}
	return c
}

// ExperienceToNextLevel returns the experience needed to advance from level to level+1.
func (c *Curve) ExperienceToNextLevel(level int) float64 {
	if level < domain.StartingLevel {
		level = domain.StartingLevel
	}
	if v, ok := c.thresholds.Get(level); ok {
		return v
	}

	v := math.Round(c.BaseXP * math.Pow(c.Growth, float64(level-1)))
	if v < 1 {
		v = 1
	}
	c.thresholds.Add(level, v)
	return v
}

// AtCap reports whether level has reached the configured maximum.
func (c *Curve) AtCap(level int) bool {
	return c.MaxLevel > 0 && level >= c.MaxLevel
}

// Apply runs the level-up rule: while experience covers the threshold, subtract it
// and increment the level. Experience beyond the cap stays banked on the skill.
func (c *Curve) Apply(level int, experience float64) (int, float64) {
	for !c.AtCap(level) {
		threshold := c.ExperienceToNextLevel(level)
		if experience < threshold {
			break
		}
		experience -= threshold
		level++
	}
	return level, experience
}

// TotalExperienceForLevel returns the cumulative experience from level 1 to reach level.
func (c *Curve) TotalExperienceForLevel(level int) float64 {
	total := 0.0
	for l := domain.StartingLevel; l < level; l++ {
		total += c.ExperienceToNextLevel(l)
	}
	return total
}
