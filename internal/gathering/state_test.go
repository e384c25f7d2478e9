package gathering

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleGather_Go/internal/domain"
)

func TestSnapshotRestore_ResumesIdentically(t *testing.T) {
	ctx := context.Background()
	original, _, _ := newTestEngine(t, Modifiers{ResourceMultiplier: 0.4, ExperienceMultiplier: 1})
	withProgress(t, original, 7*time.Second) // 2 actions, 0.8 logs carried, 1s progress

	// The persistence collaborator stores plain data; JSON stands in for it here
	raw, err := json.Marshal(original.Snapshot())
	require.NoError(t, err)
	var state domain.EngineState
	require.NoError(t, json.Unmarshal(raw, &state))

	restored, restoredInv, _ := newTestEngine(t, Modifiers{ResourceMultiplier: 0.4, ExperienceMultiplier: 1})
	require.NoError(t, restored.Restore(ctx, state))

	skill, err := restored.Skill(domain.SkillWoodcutting)
	require.NoError(t, err)
	assert.True(t, skill.IsActive)
	assert.Equal(t, time.Second, skill.Progress)
	assert.Equal(t, 50.0, skill.Experience)
	assert.InDelta(t, 0.8, restored.Remainder("oak_logs"), 1e-9)

	// One more action pushes the carried 0.8 over a whole unit
	_, err = restored.Tick(ctx, domain.SkillWoodcutting, 2*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1, restoredInv.total("oak_logs"))
}

func TestRestore_RejectsInconsistentState(t *testing.T) {
	node := oakNode()

	tests := []struct {
		name  string
		state domain.EngineState
	}{
		{
			name: "progress not below action duration",
			state: domain.EngineState{Skills: []domain.SkillProgress{
				{Name: domain.SkillWoodcutting, Level: 1, IsActive: true, CurrentNode: &node, Progress: 3 * time.Second},
			}},
		},
		{
			name: "active without node",
			state: domain.EngineState{Skills: []domain.SkillProgress{
				{Name: domain.SkillWoodcutting, Level: 1, IsActive: true},
			}},
		},
		{
			name: "level zero",
			state: domain.EngineState{Skills: []domain.SkillProgress{
				{Name: domain.SkillWoodcutting, Level: 0},
			}},
		},
		{
			name: "negative experience",
			state: domain.EngineState{Skills: []domain.SkillProgress{
				{Name: domain.SkillWoodcutting, Level: 1, Experience: -1},
			}},
		},
		{
			name: "duplicate skill",
			state: domain.EngineState{Skills: []domain.SkillProgress{
				{Name: domain.SkillWoodcutting, Level: 1},
				{Name: domain.SkillWoodcutting, Level: 2},
			}},
		},
		{
			name: "ledger remainder out of range",
			state: domain.EngineState{
				Skills: []domain.SkillProgress{{Name: domain.SkillWoodcutting, Level: 1}},
				Ledger: map[string]float64{"oak_logs": 1.0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, _, _ := newTestEngine(t, DefaultModifiers())
			withProgress(t, engine, 500*time.Millisecond)
			before := engine.Snapshot()

			err := engine.Restore(context.Background(), tt.state)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, before, engine.Snapshot())
		})
	}
}

func TestSnapshot_IsDetached(t *testing.T) {
	engine, _, _ := newTestEngine(t, DefaultModifiers())
	withProgress(t, engine, 500*time.Millisecond)

	snap := engine.Snapshot()
	snap.Skills[0].CurrentNode.ResourceName = "gold"
	snap.Ledger["oak_logs"] = 0.5

	skill, _ := engine.Skill(domain.SkillWoodcutting)
	assert.Equal(t, "oak_logs", skill.CurrentNode.ResourceName)
	assert.Equal(t, 0.0, engine.Remainder("oak_logs"))
}
