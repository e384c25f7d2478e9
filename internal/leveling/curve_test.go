package leveling

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleGather_Go/internal/domain"
)

func TestExperienceToNextLevel_Geometric(t *testing.T) {
	c := DefaultCurve()

	assert.Equal(t, 100.0, c.ExperienceToNextLevel(1))
	assert.Equal(t, 110.0, c.ExperienceToNextLevel(2))
	assert.Equal(t, 121.0, c.ExperienceToNextLevel(3))
	assert.Equal(t, 133.0, c.ExperienceToNextLevel(4)) // 133.1 rounded
}

func TestExperienceToNextLevel_Monotonic(t *testing.T) {
	c := DefaultCurve()

	prev := 0.0
	for level := 1; level < 120; level++ {
		v := c.ExperienceToNextLevel(level)
		assert.GreaterOrEqual(t, v, prev, "level %d", level)
		prev = v
	}
}

func TestExperienceToNextLevel_IsPure(t *testing.T) {
	a := DefaultCurve()
	b := DefaultCurve()

	// Warm a's cache in a different order; results must not depend on it
	for level := 50; level > 0; level-- {
		a.ExperienceToNextLevel(level)
	}
	for level := 1; level <= 50; level++ {
		assert.Equal(t, b.ExperienceToNextLevel(level), a.ExperienceToNextLevel(level))
	}
}

func TestApply(t *testing.T) {
	c := DefaultCurve()

	tests := []struct {
		name       string
		level      int
		experience float64
		wantLevel  int
		wantExp    float64
	}{
		{"below threshold", 1, 99, 1, 99},
		{"exact threshold", 1, 100, 2, 0},
		{"one level with carry", 1, 150, 2, 50},
		{"several levels", 1, 100 + 110 + 121 + 5, 4, 5},
		{"from mid level", 3, 121, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, exp := c.Apply(tt.level, tt.experience)
			assert.Equal(t, tt.wantLevel, level)
			assert.Equal(t, tt.wantExp, exp)
		})
	}
}

func TestApply_StopsAtCap(t *testing.T) {
	c, err := NewCurve(10, 1, 3)
	require.NoError(t, err)

	level, exp := c.Apply(1, 1000)
	assert.Equal(t, 3, level)
	assert.Equal(t, 980.0, exp)
	assert.True(t, c.AtCap(level))
}

func TestApply_Uncapped(t *testing.T) {
	c, err := NewCurve(10, 1, 0)
	require.NoError(t, err)

	level, exp := c.Apply(1, 1000)
	assert.Equal(t, 101, level)
	assert.Equal(t, 0.0, exp)
	assert.False(t, c.AtCap(level))
}

func TestTotalExperienceForLevel(t *testing.T) {
	c := DefaultCurve()

	assert.Equal(t, 0.0, c.TotalExperienceForLevel(1))
	assert.Equal(t, 100.0, c.TotalExperienceForLevel(2))
	assert.Equal(t, 331.0, c.TotalExperienceForLevel(4))
}

func TestNewCurve_Validation(t *testing.T) {
	_, err := NewCurve(0, 1.1, 99)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewCurve(math.NaN(), 1.1, 99)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewCurve(100, 0.9, 99)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewCurve(100, math.NaN(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewCurve(100, 1.1, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
