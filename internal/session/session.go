// Package session is the host loop around the gathering engine: it owns the
// wall clock, reconciles offline absence on resume and drives live ticks.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/IdleGather_Go/internal/catalog"
	"github.com/osse101/IdleGather_Go/internal/domain"
	"github.com/osse101/IdleGather_Go/internal/gathering"
	"github.com/osse101/IdleGather_Go/internal/leveling"
	"github.com/osse101/IdleGather_Go/internal/logger"
	"github.com/osse101/IdleGather_Go/internal/metrics"
	"github.com/osse101/IdleGather_Go/internal/scheduler"
	"github.com/osse101/IdleGather_Go/internal/worker"
)

// Options configures a Session. Zero values fall back to defaults.
type Options struct {
	Catalog   *catalog.Catalog
	Curve     *leveling.Curve
	Modifiers gathering.Modifiers
	Clock     Clock

	TickInterval time.Duration
	WorkerCount  int
	QueueSize    int
}

// Session is one player's play session.
type Session struct {
	id        string
	engine    *gathering.Engine
	catalog   *catalog.Catalog
	clock     Clock
	inventory *Inventory

	levelMu  sync.Mutex
	levelUps []domain.LevelUp

	// tickMu serializes Step so deltas are measured in order.
	tickMu   sync.Mutex
	lastTick time.Time

	interval  time.Duration
	workers   int
	queueSize int

	runMu sync.Mutex
	pool  *worker.Pool
	sched *scheduler.Scheduler
}

// New creates a session with one skill registered per skill in the catalog.
func New(ctx context.Context, opts Options) (*Session, error) {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Curve == nil {
		opts.Curve = leveling.DefaultCurve()
	}
	if opts.Modifiers == (gathering.Modifiers{}) {
		opts.Modifiers = gathering.DefaultModifiers()
	}
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.WorkerCount <= 0 {
		opts.WorkerCount = DefaultWorkerCount
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = DefaultQueueSize
	}

	s := &Session{
		id:        logger.GenerateSessionID(),
		catalog:   opts.Catalog,
		clock:     opts.Clock,
		inventory: NewInventory(),
		interval:  opts.TickInterval,
		workers:   opts.WorkerCount,
		queueSize: opts.QueueSize,
	}

	engine, err := gathering.NewEngine(opts.Curve, opts.Modifiers, s.inventory, s)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	s.engine = engine

	ctx = s.withID(ctx)
	for _, skill := range s.catalog.Skills() {
		if err := engine.AddSkill(ctx, skill); err != nil {
			return nil, fmt.Errorf("failed to register skill %s: %w", skill, err)
		}
	}
	s.lastTick = s.clock.Now()

	logger.FromContext(ctx).Info(LogMsgSessionCreated, "skills", s.catalog.Skills(), "nodes", s.catalog.Len())
	return s, nil
}

// ID returns the session id attached to every log line the session emits
func (s *Session) ID() string {
	return s.id
}

// Engine returns the engine the session drives
func (s *Session) Engine() *gathering.Engine {
	return s.engine
}

// Catalog returns the node catalog
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Inventory returns the resource tally
func (s *Session) Inventory() *Inventory {
	return s.inventory
}

// LevelUps returns every level transition seen this session, oldest first
func (s *Session) LevelUps() []domain.LevelUp {
	s.levelMu.Lock()
	defer s.levelMu.Unlock()
	return append([]domain.LevelUp(nil), s.levelUps...)
}

// OnLevelUp implements gathering.LevelUpSink
func (s *Session) OnLevelUp(ctx context.Context, levelUp domain.LevelUp) {
	s.levelMu.Lock()
	s.levelUps = append(s.levelUps, levelUp)
	s.levelMu.Unlock()
}

// StartGathering starts the catalog node nodeID on the skill it trains.
// Skills already active are stepped up to now first, so the new activity's
// first tick starts counting from this call.
func (s *Session) StartGathering(ctx context.Context, nodeID string) error {
	node, err := s.catalog.Lookup(nodeID)
	if err != nil {
		return err
	}
	ctx = s.withID(ctx)

	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	if err := s.stepLocked(ctx, s.clock.Now()); err != nil {
		return err
	}
	return s.engine.StartActivity(ctx, node.Skill, node)
}

// StopGathering credits skill up to now and returns it to idle.
func (s *Session) StopGathering(ctx context.Context, skill string) error {
	ctx = s.withID(ctx)

	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	if err := s.stepLocked(ctx, s.clock.Now()); err != nil {
		return err
	}
	return s.engine.StopActivity(ctx, skill)
}

// Resume reconciles the absence since lastSeen for every active skill and
// resets the tick baseline to now. Idle skills are skipped.
func (s *Session) Resume(ctx context.Context, lastSeen time.Time) ([]*domain.OfflineAccrualResult, error) {
	ctx = s.withID(ctx)
	log := logger.FromContext(ctx)

	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	now := s.clock.Now()
	elapsed := now.Sub(lastSeen)
	if elapsed < 0 {
		log.Warn(LogMsgResumeClockSkew, "last_seen", lastSeen, "now", now)
		elapsed = 0
	}
	log.Info(LogMsgResumeStarted, "elapsed", elapsed)

	var results []*domain.OfflineAccrualResult
	for _, skill := range s.engine.Skills() {
		result, err := s.engine.ReconcileOffline(ctx, skill.Name, elapsed)
		if errors.Is(err, domain.ErrNoActiveActivity) {
			log.Debug(LogMsgResumeSkipped, "skill", skill.Name)
			continue
		}
		if err != nil {
			return results, fmt.Errorf("failed to reconcile %s: %w", skill.Name, err)
		}
		results = append(results, result)
	}
	s.lastTick = now

	log.Info(LogMsgResumeFinished, "reconciled", len(results))
	return results, nil
}

// Step ticks every active skill by the wall-clock time since the previous step.
func (s *Session) Step(ctx context.Context) error {
	ctx = s.withID(ctx)

	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	return s.stepLocked(ctx, s.clock.Now())
}

// stepLocked ticks active skills from lastTick to now. tickMu must be held.
func (s *Session) stepLocked(ctx context.Context, now time.Time) error {
	delta := now.Sub(s.lastTick)
	s.lastTick = now
	if delta < 0 {
		logger.FromContext(ctx).Warn(LogMsgTickClockSkew, "delta", delta)
		return nil
	}
	metrics.TickDelta.Observe(delta.Seconds())

	var errs []error
	for _, skill := range s.engine.Skills() {
		if !skill.IsActive {
			continue
		}
		_, err := s.engine.Tick(ctx, skill.Name, delta)
		// Stopped between listing and ticking.
		if errors.Is(err, domain.ErrInactiveActivity) {
			continue
		}
		if err != nil {
			logger.FromContext(ctx).Error(LogMsgTickFailed, "skill", skill.Name, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Run starts the tick loop. Ticks are scheduled every interval; each measures
// its own delta, so a skipped firing is absorbed by the next one.
func (s *Session) Run(ctx context.Context) {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	if s.pool != nil {
		return
	}

	ctx = s.withID(ctx)
	s.tickMu.Lock()
	s.lastTick = s.clock.Now()
	s.tickMu.Unlock()

	s.pool = worker.NewPool(s.workers, s.queueSize)
	s.pool.Start(ctx)
	s.sched = scheduler.New(s.pool)
	s.sched.Schedule(s.interval, worker.JobFunc(s.Step))

	logger.FromContext(ctx).Info(LogMsgRunStarted, "interval", s.interval)
}

// Stop halts the tick loop and waits for an in-flight tick to finish.
func (s *Session) Stop(ctx context.Context) {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	if s.pool == nil {
		return
	}

	s.sched.Stop()
	s.pool.Stop()
	s.sched, s.pool = nil, nil

	logger.FromContext(s.withID(ctx)).Info(LogMsgRunStopped)
}

// CheckHealth reports an error while the tick loop is not running
func (s *Session) CheckHealth(ctx context.Context) error {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	if s.pool == nil {
		return ErrNotRunning
	}
	return nil
}

func (s *Session) withID(ctx context.Context) context.Context {
	if _, ok := logger.SessionIDFromContext(ctx); ok {
		return ctx
	}
	return logger.WithSessionID(ctx, s.id)
}
