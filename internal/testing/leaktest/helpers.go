// Package leaktest provides goroutine and heap checks for tests that start
// background loops (worker pools, schedulers, host sessions).
package leaktest

import (
	"runtime"
	"strings"
	"testing"
	"time"
)

const (
	settleInterval = 10 * time.Millisecond
	defaultSettle  = 500 * time.Millisecond
)

// GoroutineChecker helps detect goroutine leaks
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker creates a new checker and records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(settleInterval)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check polls until the goroutine count returns to within tolerance of the
// recorded baseline. On timeout it fails the test and dumps the live stacks.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(defaultSettle)
	after := runtime.NumGoroutine()
	for after-g.before > tolerance && time.Now().Before(deadline) {
		runtime.Gosched()
		time.Sleep(settleInterval)
		after = runtime.NumGoroutine()
	}

	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)\n%s",
			g.before, after, leaked, tolerance, stacks())
	}
}

// stacks returns the stacks of all goroutines, trimmed to those outside the
// testing runtime.
func stacks() string {
	buf := make([]byte, 1<<16)
	n := runtime.Stack(buf, true)
	var kept []string
	for _, block := range strings.Split(string(buf[:n]), "\n\n") {
		if strings.Contains(block, "testing.tRunner") || strings.Contains(block, "testing.(*T).Run") {
			continue
		}
		kept = append(kept, block)
	}
	return strings.Join(kept, "\n\n")
}

// MemoryChecker helps detect heap growth across an operation
type MemoryChecker struct {
	before runtime.MemStats
	t      testing.TB
}

// NewMemoryChecker creates a new checker and records current memory stats
func NewMemoryChecker(t testing.TB) *MemoryChecker {
	t.Helper()

	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return &MemoryChecker{
		before: m,
		t:      t,
	}
}

// Check verifies live heap hasn't grown beyond maxGrowthMB
func (m *MemoryChecker) Check(maxGrowthMB float64) {
	m.t.Helper()

	runtime.GC()
	var after runtime.MemStats
	runtime.ReadMemStats(&after)

	beforeMB := float64(m.before.HeapAlloc) / 1024 / 1024
	afterMB := float64(after.HeapAlloc) / 1024 / 1024
	if growthMB := afterMB - beforeMB; growthMB > maxGrowthMB {
		m.t.Errorf("Potential memory leak: before=%.2fMB, after=%.2fMB, growth=%.2fMB (max=%.2fMB)",
			beforeMB, afterMB, growthMB, maxGrowthMB)
	}
}

// CheckNoGoroutineLeak runs fn and fails t if it left goroutines behind
func CheckNoGoroutineLeak(t *testing.T, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// CheckNoMemoryLeak runs fn and fails t if the live heap grew by more than maxGrowthMB
func CheckNoMemoryLeak(t *testing.T, maxGrowthMB float64, fn func()) {
	t.Helper()

	checker := NewMemoryChecker(t)
	fn()
	checker.Check(maxGrowthMB)
}
