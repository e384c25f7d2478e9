package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/IdleGather_Go/internal/domain"
	"github.com/osse101/IdleGather_Go/internal/leveling"
)

// ProgressReader is the read side of the gathering engine
type ProgressReader interface {
	Skills() []domain.SkillProgress
	Skill(name string) (domain.SkillProgress, error)
	Curve() *leveling.Curve
	Remainder(category string) float64
}

// SkillView is the JSON shape of one skill's progress. PendingFraction is the
// experience carried in the ledger below one whole point.
type SkillView struct {
	Name             string                 `json:"name"`
	Level            int                    `json:"level"`
	Experience       float64                `json:"experience"`
	TotalExperience  float64                `json:"total_experience"`
	PendingFraction  float64                `json:"pending_fraction"`
	ExperienceToNext float64                `json:"experience_to_next"`
	AtCap            bool                   `json:"at_cap"`
	State            string                 `json:"state"`
	Node             *domain.GatherableNode `json:"node,omitempty"`
	ProgressMs       int64                  `json:"progress_ms"`
	ProgressFraction float64                `json:"progress_fraction"`
}

func newSkillView(s domain.SkillProgress, reader ProgressReader) SkillView {
	curve := reader.Curve()
	v := SkillView{
		Name:             s.Name,
		Level:            s.Level,
		Experience:       s.Experience,
		TotalExperience:  curve.TotalExperienceForLevel(s.Level) + s.Experience,
		PendingFraction:  reader.Remainder(domain.ExperienceCategory(s.Name)),
		ExperienceToNext: curve.ExperienceToNextLevel(s.Level),
		AtCap:            curve.AtCap(s.Level),
		State:            s.State(),
		Node:             s.CurrentNode,
		ProgressMs:       s.Progress.Milliseconds(),
	}
	if s.CurrentNode != nil && s.CurrentNode.ActionDuration > 0 {
		v.ProgressFraction = float64(s.Progress) / float64(s.CurrentNode.ActionDuration)
	}
	return v
}

// HandleListSkills returns every skill's progress
func HandleListSkills(reader ProgressReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills := reader.Skills()
		views := make([]SkillView, 0, len(skills))
		for _, s := range skills {
			views = append(views, newSkillView(s, reader))
		}
		respondJSON(w, http.StatusOK, DataResponse{Count: len(views), Data: views})
	}
}

// HandleGetSkill returns one skill's progress
func HandleGetSkill(reader ProgressReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skill, err := reader.Skill(chi.URLParam(r, URLParamSkill))
		if err != nil {
			status, msg := mapDomainError(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, newSkillView(skill, reader))
	}
}
