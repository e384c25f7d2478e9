package gathering

import (
	"context"
	"fmt"
	"math"

	"github.com/osse101/IdleGather_Go/internal/domain"
	"github.com/osse101/IdleGather_Go/internal/logger"
	"github.com/osse101/IdleGather_Go/internal/metrics"
)

// StartActivity begins gathering node with the named skill.
//
// Starting the node that is already active is a no-op. Starting a different node
// resets progress to zero; partial progress on the previous node is forfeited.
func (e *Engine) StartActivity(ctx context.Context, skillName string, node domain.GatherableNode) error {
	log := logger.FromContext(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	skill, err := e.skillLocked(skillName)
	if err != nil {
		reject(ReasonSkillNotFound)
		return err
	}

	if err := checkActivity(skill, node); err != nil {
		reject(ReasonInvalidActivity)
		log.Warn(LogMsgActivityRejected, "skill", skillName, "node", node.ID, "error", err)
		return err
	}

	if skill.IsActive && skill.CurrentNode != nil && skill.CurrentNode.ID == node.ID {
		return nil
	}

	transition := metrics.TransitionStart
	if skill.IsActive {
		transition = metrics.TransitionSwitch
		log.Info(LogMsgActivitySwitched,
			"skill", skillName, "from", skill.CurrentNode.ID, "to", node.ID, "forfeited", skill.Progress)
	} else {
		log.Info(LogMsgActivityStarted, "skill", skillName, "node", node.ID)
	}

	nodeCopy := node
	skill.IsActive = true
	skill.CurrentNode = &nodeCopy
	skill.Progress = 0

	metrics.ActivityTransitions.WithLabelValues(skillName, transition).Inc()
	metrics.ActiveSkills.Set(float64(e.activeCountLocked()))
	return nil
}

// StopActivity returns the skill to idle. Progress and experience are left untouched.
// Stopping an idle skill is a no-op.
func (e *Engine) StopActivity(ctx context.Context, skillName string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	skill, err := e.skillLocked(skillName)
	if err != nil {
		reject(ReasonSkillNotFound)
		return err
	}
	if !skill.IsActive {
		return nil
	}

	logger.FromContext(ctx).Info(LogMsgActivityStopped, "skill", skillName, "node", skill.CurrentNode.ID)

	skill.IsActive = false
	skill.CurrentNode = nil

	metrics.ActivityTransitions.WithLabelValues(skillName, metrics.TransitionStop).Inc()
	metrics.ActiveSkills.Set(float64(e.activeCountLocked()))
	return nil
}

func checkActivity(skill *domain.SkillProgress, node domain.GatherableNode) error {
	if err := checkNode(node); err != nil {
		return err
	}
	if node.Skill != skill.Name {
		return fmt.Errorf("%w: node %s trains %s, not %s", domain.ErrInvalidActivity, node.ID, node.Skill, skill.Name)
	}
	if skill.Level < node.RequiredLevel {
		return fmt.Errorf("%w: node %s requires %s level %d, have %d",
			domain.ErrInvalidActivity, node.ID, skill.Name, node.RequiredLevel, skill.Level)
	}
	return nil
}

// checkNode guards the accrual math against nodes that bypassed catalog validation
func checkNode(node domain.GatherableNode) error {
	if node.ID == "" || node.ResourceName == "" {
		return fmt.Errorf("%w: node requires an id and a resource name", domain.ErrInvalidActivity)
	}
	if node.ActionDuration <= 0 {
		return fmt.Errorf("%w: node %s has non-positive action duration %s", domain.ErrInvalidActivity, node.ID, node.ActionDuration)
	}
	xp := node.ExperiencePerAction
	if xp < 0 || math.IsNaN(xp) || math.IsInf(xp, 0) {
		return fmt.Errorf("%w: node %s has invalid experience per action %v", domain.ErrInvalidActivity, node.ID, xp)
	}
	return nil
}
