package gathering

import (
	"context"
	"fmt"
	"math"

	"github.com/osse101/IdleGather_Go/internal/domain"
	"github.com/osse101/IdleGather_Go/internal/ledger"
	"github.com/osse101/IdleGather_Go/internal/logger"
	"github.com/osse101/IdleGather_Go/internal/metrics"
)

// Snapshot exports every skill and ledger remainder as plain data.
func (e *Engine) Snapshot() domain.EngineState {
	e.mu.Lock()
	defer e.mu.Unlock()

	return domain.EngineState{
		Skills: e.skillsLocked(),
		Ledger: e.ledger.Snapshot(),
	}
}

// Restore replaces the engine state with a previously exported snapshot.
// The state is validated in full first; on error nothing changes.
func (e *Engine) Restore(ctx context.Context, state domain.EngineState) error {
	skills := make(map[string]*domain.SkillProgress, len(state.Skills))
	for _, s := range state.Skills {
		if err := checkRestoredSkill(s); err != nil {
			return err
		}
		if _, dup := skills[s.Name]; dup {
			return fmt.Errorf("%w: duplicate skill %s", domain.ErrInvalidInput, s.Name)
		}
		clone := s.Clone()
		skills[s.Name] = &clone
	}

	l := ledger.New()
	if err := l.Restore(state.Ledger); err != nil {
		return err
	}

	e.mu.Lock()
	e.skills = skills
	e.ledger = l
	active := e.activeCountLocked()
	e.mu.Unlock()

	metrics.ActiveSkills.Set(float64(active))
	logger.FromContext(ctx).Info(LogMsgStateRestored, "skills", len(skills), "active", active, "ledger_categories", l.Categories())
	return nil
}

func checkRestoredSkill(s domain.SkillProgress) error {
	if s.Name == "" {
		return fmt.Errorf("%w: skill without a name", domain.ErrInvalidInput)
	}
	if s.Level < domain.StartingLevel {
		return fmt.Errorf("%w: skill %s level %d", domain.ErrInvalidInput, s.Name, s.Level)
	}
	if s.Experience < 0 || math.IsNaN(s.Experience) || math.IsInf(s.Experience, 0) {
		return fmt.Errorf("%w: skill %s experience %v", domain.ErrInvalidInput, s.Name, s.Experience)
	}
	if s.Progress < 0 {
		return fmt.Errorf("%w: skill %s negative progress %s", domain.ErrInvalidInput, s.Name, s.Progress)
	}
	if !s.IsActive {
		return nil
	}

	if s.CurrentNode == nil {
		return fmt.Errorf("%w: active skill %s has no node", domain.ErrInvalidInput, s.Name)
	}
	if err := checkActivity(&s, *s.CurrentNode); err != nil {
		return fmt.Errorf("%w: skill %s: %v", domain.ErrInvalidInput, s.Name, err)
	}
	if s.Progress >= s.CurrentNode.ActionDuration {
		return fmt.Errorf("%w: skill %s progress %s not below action duration %s",
			domain.ErrInvalidInput, s.Name, s.Progress, s.CurrentNode.ActionDuration)
	}
	return nil
}
