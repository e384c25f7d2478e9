package session

import (
	"context"
	"sort"
	"sync"

	"github.com/osse101/IdleGather_Go/internal/domain"
	"github.com/osse101/IdleGather_Go/internal/logger"
)

// Inventory tallies whole resource units granted by the engine.
type Inventory struct {
	mu    sync.Mutex
	items map[string]int
}

// NewInventory creates an empty inventory
func NewInventory() *Inventory {
	return &Inventory{items: make(map[string]int)}
}

// OnResourceGranted implements gathering.InventorySink
func (i *Inventory) OnResourceGranted(ctx context.Context, resourceName string, units int) {
	i.mu.Lock()
	i.items[resourceName] += units
	total := i.items[resourceName]
	i.mu.Unlock()

	logger.FromContext(ctx).Debug(LogMsgResourceReceived,
		"resource", resourceName, "units", units, "total", total)
}

// Quantity returns the units held of one resource
func (i *Inventory) Quantity(resourceName string) int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.items[resourceName]
}

// Items returns the held resources ordered by name
func (i *Inventory) Items() []domain.ResourceGrant {
	i.mu.Lock()
	defer i.mu.Unlock()

	out := make([]domain.ResourceGrant, 0, len(i.items))
	for name, units := range i.items {
		out = append(out, domain.ResourceGrant{ResourceName: name, Units: units})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ResourceName < out[b].ResourceName })
	return out
}
