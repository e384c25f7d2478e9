package domain

import (
	"time"

	"github.com/google/uuid"
)

// GatherableNode is a static resource node (a tree, a rock, a fishing spot).
// Nodes are loaded once from content data and never mutated.
type GatherableNode struct {
	ID                  string        `json:"id" yaml:"id" validate:"required,max=64"`
	DisplayName         string        `json:"display_name" yaml:"display_name" validate:"max=128"`
	Skill               string        `json:"skill" yaml:"skill" validate:"required,max=64"`
	RequiredLevel       int           `json:"required_level" yaml:"required_level" validate:"min=1"`
	ExperiencePerAction float64       `json:"experience_per_action" yaml:"experience_per_action" validate:"gte=0"`
	ActionDuration      time.Duration `json:"action_duration" yaml:"action_duration" validate:"gt=0"`
	ResourceName        string        `json:"resource_name" yaml:"resource_name" validate:"required,max=64"`
}

// SkillProgress is the mutable per-skill state owned by the gathering engine.
// Progress is the elapsed time in the current action cycle: 0 <= Progress < CurrentNode.ActionDuration.
type SkillProgress struct {
	Name        string          `json:"name"`
	Level       int             `json:"level"`
	Experience  float64         `json:"experience"`
	IsActive    bool            `json:"is_active"`
	CurrentNode *GatherableNode `json:"current_node,omitempty"`
	Progress    time.Duration   `json:"progress"`
}

// State reports the activity state machine position.
func (s SkillProgress) State() string {
	if s.IsActive {
		return ActivityStateGathering
	}
	return ActivityStateIdle
}

// Clone returns a deep copy safe to hand out to collaborators.
func (s SkillProgress) Clone() SkillProgress {
	if s.CurrentNode != nil {
		node := *s.CurrentNode
		s.CurrentNode = &node
	}
	return s
}

// ResourceGrant is a whole-unit resource emission delivered to the inventory.
type ResourceGrant struct {
	ResourceName string `json:"resource_name"`
	Units        int    `json:"units"`
}

// LevelUp records a level transition for a skill.
type LevelUp struct {
	Skill    string `json:"skill"`
	OldLevel int    `json:"old_level"`
	NewLevel int    `json:"new_level"`
}

// OfflineAccrualResult summarizes one offline reconciliation batch.
// It is produced once per reconciliation, shown to the player and dropped.
type OfflineAccrualResult struct {
	ID               uuid.UUID      `json:"id"`
	Skill            string         `json:"skill"`
	Node             GatherableNode `json:"node"`
	Elapsed          time.Duration  `json:"elapsed"`
	CompletedActions int64          `json:"completed_actions"`
	ExperienceGained int64          `json:"experience_gained"`
	ResourcesGained  int64          `json:"resources_gained"`
	StartLevel       int            `json:"start_level"`
	EndLevel         int            `json:"end_level"`
}

// LevelsGained returns how many levels the batch produced.
func (r OfflineAccrualResult) LevelsGained() int {
	return r.EndLevel - r.StartLevel
}

// EngineState is the full mutable state of the engine as plain data, for the
// persistence collaborator. Ledger holds the sub-unit remainder per category.
type EngineState struct {
	Skills []SkillProgress    `json:"skills"`
	Ledger map[string]float64 `json:"ledger"`
}
