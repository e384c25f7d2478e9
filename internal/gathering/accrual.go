package gathering

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/IdleGather_Go/internal/domain"
	"github.com/osse101/IdleGather_Go/internal/logger"
	"github.com/osse101/IdleGather_Go/internal/metrics"
)

// Tick advances the active action cycle by delta and grants one action's yield per
// completed cycle. The remainder carries into Progress; a partial cycle grants nothing.
// It returns the number of actions completed.
func (e *Engine) Tick(ctx context.Context, skillName string, delta time.Duration) (int64, error) {
	if delta < 0 {
		reject(ReasonInvalidInput)
		return 0, fmt.Errorf("%w: negative tick delta %s", domain.ErrInvalidInput, delta)
	}

	out := &emissions{}
	completed, err := e.tick(ctx, skillName, delta, out)
	e.dispatch(ctx, out)
	return completed, err
}

func (e *Engine) tick(ctx context.Context, skillName string, delta time.Duration, out *emissions) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	skill, err := e.skillLocked(skillName)
	if err != nil {
		reject(ReasonSkillNotFound)
		return 0, err
	}
	if !skill.IsActive || skill.CurrentNode == nil {
		reject(ReasonInactive)
		logger.FromContext(ctx).Debug(LogMsgTickRejected, "skill", skillName)
		return 0, fmt.Errorf("%w: %s", domain.ErrInactiveActivity, skillName)
	}

	node := *skill.CurrentNode
	resourcePerAction := e.modifiers.ResourceMultiplier
	xpPerAction := node.ExperiencePerAction * e.modifiers.ExperienceMultiplier

	if delta > math.MaxInt64-skill.Progress {
		reject(ReasonInvalidInput)
		return 0, fmt.Errorf("%w: tick delta %s overflows progress %s", domain.ErrInvalidInput, delta, skill.Progress)
	}

	skill.Progress += delta
	var completed int64
	for skill.Progress >= node.ActionDuration {
		skill.Progress -= node.ActionDuration
		completed++

		if _, err := e.grantResourceLocked(node.ResourceName, resourcePerAction, out); err != nil {
			return completed, err
		}
		if _, err := e.grantExperienceLocked(ctx, skill, xpPerAction, out); err != nil {
			return completed, err
		}
	}

	if completed > 0 {
		metrics.ActionsCompleted.WithLabelValues(skillName, metrics.ModeTick).Add(float64(completed))
		logger.FromContext(ctx).Debug(LogMsgActionsCompleted,
			"skill", skillName, "node", node.ID, "actions", completed, "progress", skill.Progress)
	}
	return completed, nil
}

// ReconcileOffline credits elapsed time spent away in one closed-form batch:
//
//	completed = floor((progress + elapsed) / duration)
//	progress  = (progress + elapsed) mod duration
//
// Grants flow through the same ledger and level-up paths as Tick. The cost is
// independent of elapsed. An idle skill fails with ErrNoActiveActivity and the
// elapsed time is dropped.
func (e *Engine) ReconcileOffline(ctx context.Context, skillName string, elapsed time.Duration) (*domain.OfflineAccrualResult, error) {
	if elapsed < 0 {
		reject(ReasonInvalidInput)
		return nil, fmt.Errorf("%w: negative elapsed time %s", domain.ErrInvalidInput, elapsed)
	}

	out := &emissions{}
	result, err := e.reconcile(ctx, skillName, elapsed, out)
	e.dispatch(ctx, out)
	return result, err
}

func (e *Engine) reconcile(ctx context.Context, skillName string, elapsed time.Duration, out *emissions) (*domain.OfflineAccrualResult, error) {
	log := logger.FromContext(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	skill, err := e.skillLocked(skillName)
	if err != nil {
		reject(ReasonSkillNotFound)
		return nil, err
	}
	if !skill.IsActive || skill.CurrentNode == nil {
		reject(ReasonNoActiveActivity)
		log.Debug(LogMsgReconcileRejected, "skill", skillName, "elapsed", elapsed)
		return nil, fmt.Errorf("%w: %s", domain.ErrNoActiveActivity, skillName)
	}

	node := *skill.CurrentNode
	completed, progress := cycles(skill.Progress, elapsed, node.ActionDuration)

	result := &domain.OfflineAccrualResult{
		ID:               uuid.New(),
		Skill:            skillName,
		Node:             node,
		Elapsed:          elapsed,
		CompletedActions: completed,
		StartLevel:       skill.Level,
	}

	if completed > 0 {
		n := float64(completed)
		resources, err := e.grantResourceLocked(node.ResourceName, n*e.modifiers.ResourceMultiplier, out)
		if err != nil {
			return nil, err
		}
		xp, err := e.grantExperienceLocked(ctx, skill, n*node.ExperiencePerAction*e.modifiers.ExperienceMultiplier, out)
		if err != nil {
			return nil, err
		}
		result.ResourcesGained = resources
		result.ExperienceGained = xp
		metrics.ActionsCompleted.WithLabelValues(skillName, metrics.ModeOffline).Add(n)
	}
	skill.Progress = progress
	result.EndLevel = skill.Level

	metrics.OfflineReconciliations.WithLabelValues(skillName).Inc()
	metrics.OfflineElapsed.Observe(elapsed.Seconds())
	log.Info(LogMsgOfflineReconciled,
		"skill", skillName,
		"node", node.ID,
		"elapsed", elapsed,
		"actions", completed,
		"resources", result.ResourcesGained,
		"experience", result.ExperienceGained,
		"levels_gained", result.LevelsGained())

	return result, nil
}

// cycles splits progress+elapsed into whole cycles and the carried remainder
// without forming progress+elapsed, which could overflow for very long gaps.
func cycles(progress, elapsed, duration time.Duration) (int64, time.Duration) {
	whole := int64(elapsed / duration)
	carry := progress + elapsed%duration
	whole += int64(carry / duration)
	return whole, carry % duration
}

// GrantExperience accrues experience for a skill through its ledger category and
// applies level-ups for every whole point gained. It returns the whole points applied.
func (e *Engine) GrantExperience(ctx context.Context, skillName string, amount float64) (int64, error) {
	if err := checkAmount(amount); err != nil {
		reject(ReasonInvalidInput)
		return 0, err
	}

	out := &emissions{}
	gained, err := func() (int64, error) {
		e.mu.Lock()
		defer e.mu.Unlock()

		skill, err := e.skillLocked(skillName)
		if err != nil {
			reject(ReasonSkillNotFound)
			return 0, err
		}
		return e.grantExperienceLocked(ctx, skill, amount, out)
	}()
	e.dispatch(ctx, out)
	return gained, err
}

// GrantResource accrues amount into the category's ledger entry and emits every
// whole unit to the inventory. It returns the whole units emitted.
func (e *Engine) GrantResource(ctx context.Context, category string, amount float64) (int64, error) {
	if err := checkAmount(amount); err != nil {
		reject(ReasonInvalidInput)
		return 0, err
	}

	out := &emissions{}
	e.mu.Lock()
	emitted, err := e.grantResourceLocked(category, amount, out)
	e.mu.Unlock()

	e.dispatch(ctx, out)
	return emitted, err
}

func (e *Engine) grantResourceLocked(category string, amount float64, out *emissions) (int64, error) {
	emitted, err := e.ledger.Add(category, amount)
	if err != nil {
		return 0, err
	}
	if emitted > 0 {
		out.grants = append(out.grants, domain.ResourceGrant{ResourceName: category, Units: int(emitted)})
		metrics.ResourcesGranted.WithLabelValues(category).Add(float64(emitted))
	}
	return emitted, nil
}

func (e *Engine) grantExperienceLocked(ctx context.Context, skill *domain.SkillProgress, amount float64, out *emissions) (int64, error) {
	gained, err := e.ledger.Add(domain.ExperienceCategory(skill.Name), amount)
	if err != nil {
		return 0, err
	}
	if gained == 0 {
		return 0, nil
	}

	oldLevel := skill.Level
	skill.Level, skill.Experience = e.curve.Apply(skill.Level, skill.Experience+float64(gained))
	metrics.ExperienceGranted.WithLabelValues(skill.Name).Add(float64(gained))

	if skill.Level > oldLevel {
		out.levelUps = append(out.levelUps, domain.LevelUp{Skill: skill.Name, OldLevel: oldLevel, NewLevel: skill.Level})
		metrics.LevelUps.WithLabelValues(skill.Name).Add(float64(skill.Level - oldLevel))
		logger.FromContext(ctx).Info(LogMsgLevelUp, "skill", skill.Name, "old_level", oldLevel, "new_level", skill.Level)
	}
	return gained, nil
}

func checkAmount(amount float64) error {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("%w: grant amount %v", domain.ErrInvalidInput, amount)
	}
	return nil
}
