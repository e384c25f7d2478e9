package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/IdleGather_Go/internal/domain"
)

// NodeLister is the read side of the node catalog
type NodeLister interface {
	All() []domain.GatherableNode
	ForSkill(skill string) []domain.GatherableNode
	Unlocked(skill string, level int) []domain.GatherableNode
}

// HandleListNodes returns catalog nodes. ?skill= filters by skill and
// ?level= (with skill) keeps only nodes unlocked at that level.
func HandleListNodes(nodes NodeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skill := r.URL.Query().Get(QueryParamSkill)
		levelParam := r.URL.Query().Get(QueryParamLevel)

		var result []domain.GatherableNode
		switch {
		case levelParam != "":
			if skill == "" {
				respondError(w, http.StatusBadRequest, ErrMsgLevelNeedsSkill)
				return
			}
			level, err := strconv.Atoi(levelParam)
			if err != nil || level < 1 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidLevel)
				return
			}
			result = nodes.Unlocked(skill, level)
		case skill != "":
			result = nodes.ForSkill(skill)
		default:
			result = nodes.All()
		}

		if result == nil {
			result = []domain.GatherableNode{}
		}
		respondJSON(w, http.StatusOK, DataResponse{Count: len(result), Data: result})
	}
}
