package gathering

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/osse101/IdleGather_Go/internal/domain"
	"github.com/osse101/IdleGather_Go/internal/ledger"
	"github.com/osse101/IdleGather_Go/internal/leveling"
	"github.com/osse101/IdleGather_Go/internal/logger"
	"github.com/osse101/IdleGather_Go/internal/metrics"
)

// InventorySink receives whole-unit resource grants. It never sees partial units.
type InventorySink interface {
	OnResourceGranted(ctx context.Context, resourceName string, units int)
}

// LevelUpSink receives skill level transitions.
type LevelUpSink interface {
	OnLevelUp(ctx context.Context, levelUp domain.LevelUp)
}

// Modifiers scale per-action grants. They are the source of fractional resource amounts.
type Modifiers struct {
	ResourceMultiplier   float64
	ExperienceMultiplier float64
}

// DefaultModifiers grants exactly one resource and the node's experience per action
func DefaultModifiers() Modifiers {
	return Modifiers{
		ResourceMultiplier:   DefaultResourceMultiplier,
		ExperienceMultiplier: DefaultExperienceMultiplier,
	}
}

// Validate checks that both multipliers are finite and non-negative
func (m Modifiers) Validate() error {
	for name, v := range map[string]float64{
		"resource multiplier":   m.ResourceMultiplier,
		"experience multiplier": m.ExperienceMultiplier,
	} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be a non-negative number, got %v", domain.ErrInvalidInput, name, v)
		}
	}
	return nil
}

// Engine converts elapsed time into resource and experience grants for one active
// gathering node per skill. It owns every SkillProgress and the fractional ledger;
// collaborators only read clones or receive emitted deltas.
//
// Live ticks and offline reconciliation share the same grant paths, so a batch over
// duration D yields the same integer results as ticks summing to D.
type Engine struct {
	mu        sync.Mutex
	curve     *leveling.Curve
	ledger    *ledger.FractionalLedger
	skills    map[string]*domain.SkillProgress
	modifiers Modifiers

	inventory InventorySink
	levelUps  LevelUpSink
}

// NewEngine creates an engine. Either sink may be nil.
func NewEngine(curve *leveling.Curve, modifiers Modifiers, inventory InventorySink, levelUps LevelUpSink) (*Engine, error) {
	if curve == nil {
		return nil, fmt.Errorf("%w: nil leveling curve", domain.ErrInvalidInput)
	}
	if err := modifiers.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		curve:     curve,
		ledger:    ledger.New(),
		skills:    make(map[string]*domain.SkillProgress),
		modifiers: modifiers,
		inventory: inventory,
		levelUps:  levelUps,
	}, nil
}

// AddSkill registers a skill at level 1. Registering an existing skill is a no-op.
func (e *Engine) AddSkill(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty skill name", domain.ErrInvalidInput)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.skills[name]; ok {
		return nil
	}
	e.skills[name] = &domain.SkillProgress{
		Name:       name,
		Level:      domain.StartingLevel,
		Experience: domain.StartingExperience,
	}
	logger.FromContext(ctx).Debug(LogMsgSkillAdded, "skill", name)
	return nil
}

// Skill returns a copy of a skill's progress
func (e *Engine) Skill(name string) (domain.SkillProgress, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	skill, ok := e.skills[name]
	if !ok {
		return domain.SkillProgress{}, fmt.Errorf("%w: %s", domain.ErrSkillNotFound, name)
	}
	return skill.Clone(), nil
}

// Skills returns copies of every skill, ordered by name
func (e *Engine) Skills() []domain.SkillProgress {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.skillsLocked()
}

// Remainder returns the unclaimed fraction carried for a ledger category
func (e *Engine) Remainder(category string) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.Remainder(category)
}

// Curve returns the leveling policy in use
func (e *Engine) Curve() *leveling.Curve {
	return e.curve
}

func (e *Engine) skillsLocked() []domain.SkillProgress {
	out := make([]domain.SkillProgress, 0, len(e.skills))
	for _, s := range e.skills {
		out = append(out, s.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (e *Engine) skillLocked(name string) (*domain.SkillProgress, error) {
	skill, ok := e.skills[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSkillNotFound, name)
	}
	return skill, nil
}

func (e *Engine) activeCountLocked() int {
	n := 0
	for _, s := range e.skills {
		if s.IsActive {
			n++
		}
	}
	return n
}

// emissions collects sink callbacks while the lock is held; they are delivered after release.
type emissions struct {
	grants   []domain.ResourceGrant
	levelUps []domain.LevelUp
}

func (e *Engine) dispatch(ctx context.Context, out *emissions) {
	if e.inventory != nil {
		for _, g := range out.grants {
			e.inventory.OnResourceGranted(ctx, g.ResourceName, g.Units)
		}
	}
	if e.levelUps != nil {
		for _, l := range out.levelUps {
			e.levelUps.OnLevelUp(ctx, l)
		}
	}
}

func reject(reason string) {
	metrics.RejectedOperations.WithLabelValues(reason).Inc()
}
