package domain

// Skill names
const (
	SkillWoodcutting = "woodcutting"
	SkillMining      = "mining"
	SkillFishing     = "fishing"
)

// Ledger category prefixes. Resource categories are the resource name itself;
// experience categories are namespaced per skill so they never collide with items.
const (
	ExperienceCategoryPrefix = "xp:"
)

// ExperienceCategory returns the ledger category holding a skill's experience carry.
func ExperienceCategory(skill string) string {
	return ExperienceCategoryPrefix + skill
}

// Activity states
const (
	ActivityStateIdle      = "idle"
	ActivityStateGathering = "gathering"
)

// Starting values for a newly created skill
const (
	StartingLevel      = 1
	StartingExperience = 0.0
)
