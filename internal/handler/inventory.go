package handler

import (
	"net/http"

	"github.com/osse101/IdleGather_Go/internal/domain"
)

// InventoryReader lists held resources
type InventoryReader interface {
	Items() []domain.ResourceGrant
}

// HandleGetInventory returns every resource granted this session
func HandleGetInventory(inventory InventoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := inventory.Items()
		respondJSON(w, http.StatusOK, DataResponse{Count: len(items), Data: items})
	}
}
