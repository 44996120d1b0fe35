// Package catalog holds the built-in conversation personas.
package catalog

import (
	"fmt"

	"github.com/TiGG-TV/Realtime/internal/models"
)

var (
	builtins []models.Profile
	byID     map[string]int
)

func init() {
	groups := [][]models.Profile{
		smallTalkProfiles,
		salesPitchProfiles,
		publicSpeakingProfiles,
		negotiationProfiles,
		datingProfiles,
		customerServiceProfiles,
		debateProfiles,
		interviewProfiles,
	}

	byID = make(map[string]int)
	for _, group := range groups {
		for _, p := range group {
			if err := p.Validate(); err != nil {
				panic(fmt.Sprintf("catalog: %v", err))
			}
			if _, dup := byID[p.ID]; dup {
				panic(fmt.Sprintf("catalog: duplicate profile id %q", p.ID))
			}
			byID[p.ID] = len(builtins)
			builtins = append(builtins, p)
		}
	}
}

// All returns every built-in profile in catalog order.
func All() []models.Profile {
	out := make([]models.Profile, 0, len(builtins))
	for _, p := range builtins {
		out = append(out, p.Clone())
	}
	return out
}

func ByID(id string) (models.Profile, bool) {
	idx, ok := byID[id]
	if !ok {
		return models.Profile{}, false
	}
	return builtins[idx].Clone(), true
}

func ByCategory(category models.Category) []models.Profile {
	var out []models.Profile
	for _, p := range builtins {
		if p.Category == category {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Categories lists the categories that have at least one built-in persona,
// in display order.
func Categories() []models.Category {
	var out []models.Category
	for _, c := range models.ProfileCategories {
		for _, p := range builtins {
			if p.Category == c {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// Reference returns the persona whose instructions serve as the style
// example when generating new profiles for a category.
func Reference(category models.Category) (models.Profile, bool) {
	id, ok := referenceIDs[category]
	if !ok {
		return models.Profile{}, false
	}
	return ByID(id)
}

var referenceIDs = map[models.Category]string{
	models.CategoryDating:          "jake",
	models.CategoryInterview:       "software-developer",
	models.CategoryDebate:          "capitalism",
	models.CategorySmallTalk:       "party-with-acquaintances",
	models.CategoryPublicSpeaking:  "class-speech",
	models.CategorySalesPitch:      "new-medical-equipment",
	models.CategoryNegotiation:     "negotiation-partner",
	models.CategoryCustomerService: "delayed-delivery",
}

var fullMemory = models.Memory{
	RememberUserDetails:         true,
	RememberConversationContext: true,
	ReferencePastInteractions:   true,
}
