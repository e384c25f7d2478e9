package gathering

import (
	"context"
	"testing"
	"time"

	"github.com/osse101/IdleGather_Go/internal/domain"
)

// Offline reconciliation is closed-form: a week costs the same as a minute.
func BenchmarkReconcileOffline(b *testing.B) {
	for _, elapsed := range []time.Duration{time.Minute, 24 * time.Hour, 7 * 24 * time.Hour} {
		b.Run(elapsed.String(), func(b *testing.B) {
			ctx := context.Background()
			engine, _, _ := newTestEngine(b, Modifiers{ResourceMultiplier: 0.4, ExperienceMultiplier: 1})
			if err := engine.StartActivity(ctx, domain.SkillWoodcutting, oakNode()); err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := engine.ReconcileOffline(ctx, domain.SkillWoodcutting, elapsed); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkTick(b *testing.B) {
	ctx := context.Background()
	engine, _, _ := newTestEngine(b, DefaultModifiers())
	if err := engine.StartActivity(ctx, domain.SkillWoodcutting, oakNode()); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Tick(ctx, domain.SkillWoodcutting, 100*time.Millisecond); err != nil {
			b.Fatal(err)
		}
	}
}
