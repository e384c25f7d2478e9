// Command idle runs one gathering session: it catches up on the absence given
// by -offline, then ticks live and serves a read-only inspection API until
// interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/IdleGather_Go/internal/catalog"
	"github.com/osse101/IdleGather_Go/internal/config"
	"github.com/osse101/IdleGather_Go/internal/gathering"
	"github.com/osse101/IdleGather_Go/internal/leveling"
	"github.com/osse101/IdleGather_Go/internal/logger"
	"github.com/osse101/IdleGather_Go/internal/server"
	"github.com/osse101/IdleGather_Go/internal/session"
)

const shutdownTimeout = 10 * time.Second

func main() {
	nodeID := flag.String("node", "tree", "catalog node to gather")
	offline := flag.Duration("offline", 0, "absence to reconcile before going live, e.g. 8h")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	initLogger(cfg)
	for _, w := range cfg.Warnings() {
		slog.Warn("Configuration warning", "warning", w)
	}

	if err := run(cfg, *nodeID, *offline); err != nil {
		slog.Error("Session failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, nodeID string, offline time.Duration) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	nodes, err := loadCatalog(cfg.NodesPath)
	if err != nil {
		return err
	}
	curve, err := leveling.NewCurve(cfg.LevelBaseXP, cfg.LevelGrowth, cfg.MaxLevel)
	if err != nil {
		return fmt.Errorf("failed to build leveling curve: %w", err)
	}

	clock := session.RealClock{}
	sess, err := session.New(ctx, session.Options{
		Catalog: nodes,
		Curve:   curve,
		Modifiers: gathering.Modifiers{
			ResourceMultiplier:   cfg.ResourceMultiplier,
			ExperienceMultiplier: cfg.ExperienceMultiplier,
		},
		Clock:        clock,
		TickInterval: cfg.TickInterval,
		WorkerCount:  cfg.WorkerCount,
		QueueSize:    cfg.QueueSize,
	})
	if err != nil {
		return err
	}
	ctx = logger.WithSessionID(ctx, sess.ID())
	log := logger.FromContext(ctx)

	if err := sess.StartGathering(ctx, nodeID); err != nil {
		return fmt.Errorf("failed to start gathering %s: %w", nodeID, err)
	}

	results, err := sess.Resume(ctx, clock.Now().Add(-offline))
	if err != nil {
		return err
	}
	for _, r := range results {
		log.Info("While you were away",
			"skill", r.Skill,
			"node", r.Node.DisplayName,
			"elapsed", r.Elapsed,
			"actions", r.CompletedActions,
			"experience", r.ExperienceGained,
			"resources", r.ResourcesGained,
			"levels_gained", r.LevelsGained())
	}

	sess.Run(ctx)
	defer sess.Stop(context.Background())

	var srv *server.Server
	serverErr := make(chan error, 1)
	if cfg.HTTPPort > 0 {
		srv = server.NewServer(server.Options{
			Port:           cfg.HTTPPort,
			APIKey:         cfg.APIKey,
			TrustedProxies: cfg.TrustedProxies,
			RateLimit:      cfg.RateLimit,
			RateWindow:     cfg.RateWindow,
			ServiceName:    cfg.ServiceName,
			Version:        cfg.Version,
		}, server.Dependencies{
			Progress:  sess.Engine(),
			Nodes:     sess.Catalog(),
			Inventory: sess.Inventory(),
			Health:    sess,
		})
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		log.Info("Shutting down")
	case err := <-serverErr:
		return fmt.Errorf("inspection server failed: %w", err)
	}

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		}
	}

	for _, item := range sess.Inventory().Items() {
		log.Info("Inventory", "resource", item.ResourceName, "units", item.Units)
	}
	return nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load nodes from %s: %w", path, err)
	}
	return c, nil
}
