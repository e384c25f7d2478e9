package leveling

// Experience curve constants
const (
	// DefaultBaseXP is the experience needed to go from level 1 to level 2
	DefaultBaseXP = 100.0

	// DefaultGrowth is the per-level multiplier: threshold(L) = BaseXP * Growth^(L-1)
	DefaultGrowth = 1.1

	// DefaultMaxLevel caps leveling; 0 disables the cap
	DefaultMaxLevel = 99

	// thresholdCacheSize bounds the memoized threshold table
	thresholdCacheSize = 256
)
