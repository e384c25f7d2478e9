package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleGather_Go/internal/domain"
)

func TestDefault_EightTreeTiers(t *testing.T) {
	c := Default()

	trees := c.ForSkill(domain.SkillWoodcutting)
	require.Len(t, trees, 8)
	assert.Equal(t, "tree", trees[0].ID)
	assert.Equal(t, "magic", trees[7].ID)

	for i := 1; i < len(trees); i++ {
		assert.GreaterOrEqual(t, trees[i].RequiredLevel, trees[i-1].RequiredLevel)
	}

	oak, err := c.Lookup("oak")
	require.NoError(t, err)
	assert.Equal(t, 4*time.Second, oak.ActionDuration)
	assert.Equal(t, 37.5, oak.ExperiencePerAction)
	assert.Equal(t, "oak_logs", oak.ResourceName)

	teak, err := c.Lookup("teak")
	require.NoError(t, err)
	assert.Equal(t, 5500*time.Millisecond, teak.ActionDuration)
}

func TestLookup_SuggestsClosestID(t *testing.T) {
	c := Default()

	_, err := c.Lookup("wilow")
	assert.ErrorIs(t, err, domain.ErrNodeNotFound)
	assert.Contains(t, err.Error(), `did you mean "willow"?`)

	_, err = c.Lookup("redwood-giant-sequoia")
	assert.ErrorIs(t, err, domain.ErrNodeNotFound)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestUnlocked(t *testing.T) {
	c := Default()

	assert.Len(t, c.Unlocked(domain.SkillWoodcutting, 1), 1)
	assert.Len(t, c.Unlocked(domain.SkillWoodcutting, 35), 4)
	assert.Len(t, c.Unlocked(domain.SkillWoodcutting, 99), 8)
	assert.Empty(t, c.Unlocked(domain.SkillMining, 99))
}

func TestParse_DerivesDisplayName(t *testing.T) {
	c, err := Parse([]byte(`
nodes:
  - id: copper_rock
    skill: mining
    required_level: 1
    experience_per_action: 17.5
    action_duration: 2500ms
    resource_name: copper_ore
`))
	require.NoError(t, err)

	n, err := c.Lookup("copper_rock")
	require.NoError(t, err)
	assert.Equal(t, "Copper Rock", n.DisplayName)
	assert.Equal(t, 2500*time.Millisecond, n.ActionDuration)
	assert.Equal(t, []string{domain.SkillMining}, c.Skills())
}

func TestNew_ValidationErrors(t *testing.T) {
	valid := domain.GatherableNode{
		ID: "tree", Skill: domain.SkillWoodcutting, RequiredLevel: 1,
		ExperiencePerAction: 25, ActionDuration: 3 * time.Second, ResourceName: "logs",
	}

	tests := []struct {
		name    string
		mutate  func(n *domain.GatherableNode)
		wantMsg string
	}{
		{"missing id", func(n *domain.GatherableNode) { n.ID = "" }, "id is required"},
		{"zero duration", func(n *domain.GatherableNode) { n.ActionDuration = 0 }, "actionduration must be greater than"},
		{"level zero", func(n *domain.GatherableNode) { n.RequiredLevel = 0 }, "requiredlevel must be at least 1"},
		{"negative xp", func(n *domain.GatherableNode) { n.ExperiencePerAction = -5 }, "experienceperaction must be at least 0"},
		{"missing resource", func(n *domain.GatherableNode) { n.ResourceName = "" }, "resourcename is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := valid
			tt.mutate(&n)

			_, err := New([]domain.GatherableNode{n})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestNew_DuplicateID(t *testing.T) {
	n := domain.GatherableNode{
		ID: "tree", Skill: domain.SkillWoodcutting, RequiredLevel: 1,
		ExperiencePerAction: 25, ActionDuration: 3 * time.Second, ResourceName: "logs",
	}

	_, err := New([]domain.GatherableNode{n, n})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "duplicate node id tree")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nodes.yaml")
	require.NoError(t, os.WriteFile(path, defaultTrees, 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 8, c.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("nodes: [this is: not valid"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "nodes yaml")
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Oak Logs", DisplayName("oak_logs"))
	assert.Equal(t, "Magic Logs", DisplayName("magic_logs"))
}
