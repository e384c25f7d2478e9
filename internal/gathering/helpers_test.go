package gathering

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleGather_Go/internal/domain"
	"github.com/osse101/IdleGather_Go/internal/leveling"
)

// recordingInventory tallies whole units per resource
type recordingInventory struct {
	mu     sync.Mutex
	totals map[string]int
	calls  int
}

func newRecordingInventory() *recordingInventory {
	return &recordingInventory{totals: make(map[string]int)}
}

func (r *recordingInventory) OnResourceGranted(_ context.Context, resourceName string, units int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.totals[resourceName] += units
	r.calls++
}

func (r *recordingInventory) total(resource string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.totals[resource]
}

// recordingLevelUps keeps every level transition in order
type recordingLevelUps struct {
	mu     sync.Mutex
	events []domain.LevelUp
}

func (r *recordingLevelUps) OnLevelUp(_ context.Context, levelUp domain.LevelUp) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, levelUp)
}

func oakNode() domain.GatherableNode {
	return domain.GatherableNode{
		ID:                  "oak",
		DisplayName:         "Oak Tree",
		Skill:               domain.SkillWoodcutting,
		RequiredLevel:       1,
		ExperiencePerAction: 25,
		ActionDuration:      3000 * time.Millisecond,
		ResourceName:        "oak_logs",
	}
}

func willowNode() domain.GatherableNode {
	return domain.GatherableNode{
		ID:                  "willow",
		DisplayName:         "Willow Tree",
		Skill:               domain.SkillWoodcutting,
		RequiredLevel:       20,
		ExperiencePerAction: 67.5,
		ActionDuration:      4 * time.Second,
		ResourceName:        "willow_logs",
	}
}

func newTestEngine(t testing.TB, modifiers Modifiers) (*Engine, *recordingInventory, *recordingLevelUps) {
	t.Helper()

	inv := newRecordingInventory()
	ups := &recordingLevelUps{}
	engine, err := NewEngine(leveling.DefaultCurve(), modifiers, inv, ups)
	require.NoError(t, err)
	require.NoError(t, engine.AddSkill(context.Background(), domain.SkillWoodcutting))
	return engine, inv, ups
}

// withProgress starts oak and advances the cycle to the given progress without completing it
func withProgress(t *testing.T, engine *Engine, progress time.Duration) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, engine.StartActivity(ctx, domain.SkillWoodcutting, oakNode()))
	_, err := engine.Tick(ctx, domain.SkillWoodcutting, progress)
	require.NoError(t, err)
}
