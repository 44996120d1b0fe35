package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// BuiltinOwner is the owner id carried by every compiled-in profile.
const BuiltinOwner = "predefined"

var ErrInvalidProfile = errors.New("invalid profile")

type Category string

const (
	CategorySmallTalk       Category = "SmallTalk"
	CategorySalesPitch      Category = "SalesPitch"
	CategoryPublicSpeaking  Category = "PublicSpeaking"
	CategoryNegotiation     Category = "Negotiation"
	CategoryDating          Category = "Dating"
	CategoryCustomerService Category = "CustomerService"
	CategoryDebate          Category = "Debate"
	CategoryInterview       Category = "Interview"

	// CategoryLanguagePractice has a rubric but no personas.
	CategoryLanguagePractice Category = "LanguagePractice"
)

// ProfileCategories lists the categories a persona may belong to, in display order.
var ProfileCategories = []Category{
	CategorySmallTalk,
	CategorySalesPitch,
	CategoryPublicSpeaking,
	CategoryNegotiation,
	CategoryDating,
	CategoryCustomerService,
	CategoryDebate,
	CategoryInterview,
}

func (c Category) IsProfileCategory() bool {
	for _, known := range ProfileCategories {
		if c == known {
			return true
		}
	}
	return false
}

type Voice string

const (
	VoiceEcho    Voice = "echo"
	VoiceAlloy   Voice = "alloy"
	VoiceShimmer Voice = "shimmer"
)

func (v Voice) IsValid() bool {
	switch v {
	case VoiceEcho, VoiceAlloy, VoiceShimmer:
		return true
	}
	return false
}

type ResponseLength string

const (
	ResponseShort  ResponseLength = "short"
	ResponseMedium ResponseLength = "medium"
	ResponseLong   ResponseLength = "long"
)

type FormalityLevel string

const (
	FormalityCasual  FormalityLevel = "casual"
	FormalityNeutral FormalityLevel = "neutral"
	FormalityFormal  FormalityLevel = "formal"
)

type HumorLevel string

const (
	HumorNone     HumorLevel = "none"
	HumorSubtle   HumorLevel = "subtle"
	HumorModerate HumorLevel = "moderate"
	HumorHigh     HumorLevel = "high"
)

type EmpathyLevel string

const (
	EmpathyLow      EmpathyLevel = "low"
	EmpathyModerate EmpathyLevel = "moderate"
	EmpathyHigh     EmpathyLevel = "high"
)

type Personality struct {
	Traits             []string            `json:"traits"`
	Quirks             []string            `json:"quirks"`
	SpeakingStyle      string              `json:"speaking_style"`
	EmotionalResponses map[string][]string `json:"emotional_responses"`
}

type ConversationStyle struct {
	ResponseLength ResponseLength `json:"response_length"`
	FormalityLevel FormalityLevel `json:"formality_level"`
	HumorLevel     HumorLevel     `json:"humor_level"`
	EmpathyLevel   EmpathyLevel   `json:"empathy_level"`
}

type Memory struct {
	RememberUserDetails         bool `json:"remember_user_details"`
	RememberConversationContext bool `json:"remember_conversation_context"`
	ReferencePastInteractions   bool `json:"reference_past_interactions"`
}

// Profile is a conversation persona. Built-in personas live in the catalog
// package; user-created ones are stored in the profiles table.
type Profile struct {
	ID                  string            `gorm:"type:text;primary_key" json:"id"`
	UserID              string            `gorm:"type:text;index;not null" json:"user_id"`
	Category            Category          `gorm:"type:text;index;not null" json:"category"`
	Name                string            `gorm:"type:text;not null" json:"name"`
	Description         string            `gorm:"type:text" json:"description,omitempty"`
	ImageURL            string            `gorm:"type:text" json:"image_url,omitempty"`
	Instructions        string            `gorm:"type:text;not null" json:"instructions"`
	ScenarioDescription string            `gorm:"type:text" json:"scenario_description"`
	Voice               Voice             `gorm:"type:text;not null" json:"voice"`
	Personality         Personality       `gorm:"serializer:json;type:jsonb" json:"personality"`
	ConversationStyle   ConversationStyle `gorm:"serializer:json;type:jsonb" json:"conversation_style"`
	Memory              Memory            `gorm:"serializer:json;type:jsonb" json:"memory"`
	CreatedAt           time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"created_at,omitempty"`
	UpdatedAt           time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at,omitempty"`
}

func (Profile) TableName() string {
	return "profiles"
}

func (p Profile) IsBuiltin() bool {
	return p.UserID == BuiltinOwner
}

// Validate reports every missing or out-of-range field at once.
// Description and ImageURL are presentation metadata and may be empty.
func (p Profile) Validate() error {
	var problems []string

	if strings.TrimSpace(p.ID) == "" {
		problems = append(problems, "id is required")
	}
	if strings.TrimSpace(p.UserID) == "" {
		problems = append(problems, "user_id is required")
	}
	if !p.Category.IsProfileCategory() {
		problems = append(problems, fmt.Sprintf("unknown category %q", p.Category))
	}
	if strings.TrimSpace(p.Name) == "" {
		problems = append(problems, "name is required")
	}
	if strings.TrimSpace(p.Instructions) == "" {
		problems = append(problems, "instructions are required")
	}
	if strings.TrimSpace(p.ScenarioDescription) == "" {
		problems = append(problems, "scenario_description is required")
	}
	if !p.Voice.IsValid() {
		problems = append(problems, fmt.Sprintf("unknown voice %q", p.Voice))
	}
	if len(p.Personality.Traits) == 0 {
		problems = append(problems, "personality needs at least one trait")
	}
	if strings.TrimSpace(p.Personality.SpeakingStyle) == "" {
		problems = append(problems, "personality speaking_style is required")
	}
	problems = append(problems, p.ConversationStyle.problems()...)

	if len(problems) > 0 {
		return fmt.Errorf("%w %q: %s", ErrInvalidProfile, p.ID, strings.Join(problems, "; "))
	}
	return nil
}

func (s ConversationStyle) problems() []string {
	var problems []string

	switch s.ResponseLength {
	case ResponseShort, ResponseMedium, ResponseLong:
	default:
		problems = append(problems, fmt.Sprintf("unknown response_length %q", s.ResponseLength))
	}
	switch s.FormalityLevel {
	case FormalityCasual, FormalityNeutral, FormalityFormal:
	default:
		problems = append(problems, fmt.Sprintf("unknown formality_level %q", s.FormalityLevel))
	}
	switch s.HumorLevel {
	case HumorNone, HumorSubtle, HumorModerate, HumorHigh:
	default:
		problems = append(problems, fmt.Sprintf("unknown humor_level %q", s.HumorLevel))
	}
	switch s.EmpathyLevel {
	case EmpathyLow, EmpathyModerate, EmpathyHigh:
	default:
		problems = append(problems, fmt.Sprintf("unknown empathy_level %q", s.EmpathyLevel))
	}

	return problems
}

// Clone returns a deep copy so callers cannot reach shared slices or maps.
func (p Profile) Clone() Profile {
	out := p
	out.Personality.Traits = append([]string(nil), p.Personality.Traits...)
	out.Personality.Quirks = append([]string(nil), p.Personality.Quirks...)
	if p.Personality.EmotionalResponses != nil {
		out.Personality.EmotionalResponses = make(map[string][]string, len(p.Personality.EmotionalResponses))
		for k, v := range p.Personality.EmotionalResponses {
			out.Personality.EmotionalResponses[k] = append([]string(nil), v...)
		}
	}
	return out
}
