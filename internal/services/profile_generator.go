package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/TiGG-TV/Realtime/internal/models"
	"github.com/TiGG-TV/Realtime/internal/repositories"
)

type EnhanceField string

const (
	FieldInstructions        EnhanceField = "instructions"
	FieldDescription         EnhanceField = "description"
	FieldScenarioDescription EnhanceField = "scenarioDescription"
)

const (
	generationSystemPrompt = "You are a helpful assistant that enhances profile information and generates image descriptions. Keep descriptions concise and provide responses in valid JSON format."
	enhanceSystemPrompt    = "You are a helpful assistant that enhances profile text."

	generationTemperature float32 = 0.7
	generationMaxTokens           = 1500
	enhanceMaxTokens              = 500
	enhanceScenarioTokens         = 300

	maxNameRunes        = 15
	maxDescriptionRunes = 50
)

var defaultGeneratedPersonality = models.Personality{
	Traits:        []string{"adaptive", "engaging", "natural", "responsive"},
	Quirks:        []string{"uses natural language", "maintains context", "adapts to user style"},
	SpeakingStyle: "natural and conversational",
	EmotionalResponses: map[string][]string{
		"positive":   {"That's interesting!", "Tell me more about that"},
		"neutral":    {"I see", "Could you elaborate?"},
		"thoughtful": {"Let me think about that", "That's a good point"},
	},
}

type GenerateProfileInput struct {
	UserID       string
	Category     models.Category
	Instructions string
	BriefID      uuid.UUID
}

type ProfileGenerator interface {
	GenerateProfile(ctx context.Context, in GenerateProfileInput) (*models.Profile, error)
	EnhanceText(ctx context.Context, category models.Category, name, text string, field EnhanceField) (string, error)
}

type profileGenerator struct {
	llm           TextGenerator
	profiles      ProfileService
	search        ProfileSearchService
	briefRepo     repositories.BriefRepository
	pdfParser     PDFParserService
	promptBuilder *PromptBuilder
	retry         RetryPolicy
}

func NewProfileGenerator(
	llm TextGenerator,
	profiles ProfileService,
	search ProfileSearchService,
	briefRepo repositories.BriefRepository,
	pdfParser PDFParserService,
	retry RetryPolicy,
) ProfileGenerator {
	return &profileGenerator{
		llm:           llm,
		profiles:      profiles,
		search:        search,
		briefRepo:     briefRepo,
		pdfParser:     pdfParser,
		promptBuilder: NewPromptBuilder(),
		retry:         retry,
	}
}

type generatedProfile struct {
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Instructions        string   `json:"instructions"`
	ScenarioDescription string   `json:"scenarioDescription"`
	PersonalityTraits   []string `json:"personalityTraits"`
	SpeakingStyle       string   `json:"speakingStyle"`
}

func (g *profileGenerator) GenerateProfile(ctx context.Context, in GenerateProfileInput) (*models.Profile, error) {
	if !in.Category.IsProfileCategory() {
		return nil, fmt.Errorf("%w: unknown category %q", models.ErrInvalidProfile, in.Category)
	}

	briefText, err := g.loadBrief(in.BriefID)
	if err != nil {
		return nil, err
	}

	prompt := g.promptBuilder.BuildProfileGenerationPrompt(in.Category, in.Instructions, briefText)
	log.Printf("📝 Profile generation prompt for %s: %d characters", in.Category, len(prompt))

	response, err := GenerateTextWithRetry(ctx, g.llm, prompt, GenerationOptions{
		System:      generationSystemPrompt,
		Temperature: generationTemperature,
		MaxTokens:   generationMaxTokens,
	}, g.retry)
	if err != nil {
		return nil, fmt.Errorf("failed to generate profile: %w", err)
	}

	var gen generatedProfile
	if err := json.Unmarshal([]byte(extractJSON(response)), &gen); err != nil {
		log.Printf("⚠️  Could not parse generated profile, using defaults: %v\n", err)
	}

	profile := buildGeneratedProfile(in, gen)
	if err := g.profiles.Create(profile); err != nil {
		return nil, fmt.Errorf("failed to save generated profile: %w", err)
	}

	if err := g.search.Index(ctx, *profile); err != nil {
		log.Printf("⚠️  Generated profile %s was not indexed: %v\n", profile.ID, err)
	}

	log.Printf("✅ Generated %s profile %q for user %s\n", profile.Category, profile.Name, profile.UserID)
	return profile, nil
}

// EnhanceText never fails on model errors; the input text comes back unchanged.
func (g *profileGenerator) EnhanceText(ctx context.Context, category models.Category, name, text string, field EnhanceField) (string, error) {
	switch field {
	case FieldInstructions, FieldDescription, FieldScenarioDescription:
	default:
		return "", fmt.Errorf("%w: cannot enhance field %q", models.ErrInvalidProfile, field)
	}

	maxTokens := enhanceMaxTokens
	if field == FieldScenarioDescription {
		maxTokens = enhanceScenarioTokens
	}

	prompt := g.promptBuilder.BuildEnhanceTextPrompt(category, name, text, field)
	enhanced, err := GenerateTextWithRetry(ctx, g.llm, prompt, GenerationOptions{
		System:      enhanceSystemPrompt,
		Temperature: generationTemperature,
		MaxTokens:   maxTokens,
	}, g.retry)
	if err != nil {
		log.Printf("⚠️  Enhancing %s for %q failed, keeping original: %v\n", field, name, err)
		return text, nil
	}

	enhanced = strings.TrimSpace(enhanced)
	if enhanced == "" {
		return text, nil
	}
	return enhanced, nil
}

func (g *profileGenerator) loadBrief(id uuid.UUID) (string, error) {
	if id == uuid.Nil {
		return "", nil
	}

	brief, err := g.briefRepo.FindByID(id)
	if err != nil {
		return "", err
	}

	content, err := g.pdfParser.ExtractText(brief.FilePath)
	if err != nil {
		return "", fmt.Errorf("failed to read brief %s: %w", brief.OriginalFileName, err)
	}

	log.Printf("📄 Brief %s: %d pages\n", brief.OriginalFileName, content.PageCount)
	return content.Text, nil
}

func buildGeneratedProfile(in GenerateProfileInput, gen generatedProfile) *models.Profile {
	name := lo.CoalesceOrEmpty(strings.TrimSpace(gen.Name), "New Profile")
	description := lo.CoalesceOrEmpty(strings.TrimSpace(gen.Description), "Custom conversation practice")
	instructions := lo.CoalesceOrEmpty(
		strings.TrimSpace(gen.Instructions),
		strings.TrimSpace(in.Instructions),
		"Engage in natural conversation while maintaining context and adapting to the user's style.",
	)
	scenario := lo.CoalesceOrEmpty(
		strings.TrimSpace(gen.ScenarioDescription),
		fmt.Sprintf("Practice a %s conversation with %s.", in.Category, name),
	)

	personality := defaultGeneratedPersonality
	personality.Traits = lo.Compact(lo.Map(gen.PersonalityTraits, func(t string, _ int) string {
		return strings.TrimSpace(t)
	}))
	if len(personality.Traits) == 0 {
		personality.Traits = append([]string(nil), defaultGeneratedPersonality.Traits...)
	}
	personality.Quirks = append([]string(nil), defaultGeneratedPersonality.Quirks...)
	personality.SpeakingStyle = lo.CoalesceOrEmpty(strings.TrimSpace(gen.SpeakingStyle), defaultGeneratedPersonality.SpeakingStyle)
	personality.EmotionalResponses = lo.MapValues(defaultGeneratedPersonality.EmotionalResponses, func(v []string, _ string) []string {
		return append([]string(nil), v...)
	})

	return &models.Profile{
		ID:                  uuid.New().String(),
		UserID:              in.UserID,
		Category:            in.Category,
		Name:                truncateRunes(name, maxNameRunes),
		Description:         truncateRunes(description, maxDescriptionRunes),
		Instructions:        instructions,
		ScenarioDescription: scenario,
		Voice:               models.VoiceEcho,
		Personality:         personality,
		ConversationStyle: models.ConversationStyle{
			ResponseLength: models.ResponseMedium,
			FormalityLevel: models.FormalityNeutral,
			HumorLevel:     models.HumorModerate,
			EmpathyLevel:   models.EmpathyHigh,
		},
		Memory: models.Memory{
			RememberUserDetails:         true,
			RememberConversationContext: true,
			ReferencePastInteractions:   true,
		},
	}
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n]))
}

// extractJSON strips markdown fences and anything around the outermost
// object or array.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	endObj := strings.LastIndex(text, "}")
	if startObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	}

	startArr := strings.Index(text, "[")
	endArr := strings.LastIndex(text, "]")
	if startArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}
