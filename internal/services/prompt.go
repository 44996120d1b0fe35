package services

import (
	"fmt"
	"strings"

	"github.com/TiGG-TV/Realtime/internal/catalog"
	"github.com/TiGG-TV/Realtime/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildScoringPrompt assembles the grading request for one conversation.
// The section headers in the answer template are the ones ParseScoringResponse reads.
func (pb *PromptBuilder) BuildScoringPrompt(profile models.Profile, conversation string) string {
	return fmt.Sprintf(`Analyze the following conversation for a %s scenario.
%s
Be a thorough, critical, but kind scorer, providing detailed and constructive feedback on the user's performance.
Focus on scoring the user's responses and how they interact with the assistant.

Scoring Guidelines:
- Use the full range of scores from 0 to 100, but be fair in your assessment.
- A score of 0 should be given for extremely poor performance that fails to meet any criteria.
- Scores above 80 should be reserved for exceptional performance.
- A score of 100 should represent outstanding performance in all aspects.
- Be critical but compassionate, offering constructive feedback for improvement.
- Pay special attention to the length and quality of the user's responses:
  * One-word or very short responses should result in lower scores (e.g., 10-20 range).
  * Single sentence responses should generally result in moderate scores (e.g., 20-40 range) unless exceptionally relevant and insightful.
  * Ideal responses should be multiple sentences, demonstrating deep engagement and insight.
- Consider the overall length of the conversation:
  * Very short conversations (e.g., less than 5 exchanges) should result in lower scores.
  * Longer conversations with sustained, high-quality engagement should be necessary for scores above 60.

Conversation:
%s

Provide your analysis of the user's performance in the following format:
Overall Score: [overall score out of 100]

Detailed Scoring:
[Criterion 1 Name] ([Weight]%%): [Score for this criterion]
Explanation: [Brief explanation of the score, highlighting areas for improvement and strengths]

[Criterion 2 Name] ([Weight]%%): [Score for this criterion]
Explanation: [Brief explanation of the score, highlighting areas for improvement and strengths]

... [Continue for all criteria]

Response Quality and Conversation Length:
Score: [Score for this aspect]
Explanation: [Brief explanation of how the length and quality of responses affected the score]

Overall Feedback:
- You should work on [key area 1 for improvement], as this will significantly enhance your performance.
- It would be beneficial for you to focus on [key area 2 for improvement] to strengthen your skills.
- Consider improving [key area 3 for improvement] to make your interactions more effective.

Areas for Improvement:
- To enhance [specific skill 1], you could try [actionable suggestion 1].
- For better [specific skill 2], practice [actionable suggestion 2].
- To improve your [specific skill 3], consider [actionable suggestion 3].

Remember, improvement is a journey, and each conversation is an opportunity to grow. Keep practicing and applying these suggestions!`,
		profile.Category,
		RubricText(profile.Category),
		conversation,
	)
}

// BuildProfileGenerationPrompt asks for a complete persona as a JSON object.
func (pb *PromptBuilder) BuildProfileGenerationPrompt(category models.Category, instructions, briefText string) string {
	var brief string
	if strings.TrimSpace(briefText) != "" {
		brief = fmt.Sprintf("\nBackground material supplied by the user:\n%s\n", briefText)
	}

	return fmt.Sprintf(`Given a %s profile with initial instructions:
"%s"
%s
%s

Format your response as a JSON object with the following structure:
{
  "name": "Appropriate Name",
  "description": "A brief, engaging one-line description of who this character is and their role (max 50 characters)",
  "instructions": "Detailed instructions for the AI to follow during conversations, including personality traits, conversation style, and specific behaviors",
  "scenarioDescription": "Brief Scenario Description",
  "imageDescription": "Detailed Image Description",
  "personalityTraits": ["Trait1", "Trait2", "Trait3", "Trait4", "Trait5"],
  "speakingStyle": "Brief description of speaking style",
  "conversationStyle": "Brief description of conversation approach"
}

Ensure the JSON is properly formatted and all fields are included. Do not include any additional text outside the JSON object.`,
		category, instructions, brief, categoryGuide(category))
}

// BuildEnhanceTextPrompt rewrites one field of a persona.
func (pb *PromptBuilder) BuildEnhanceTextPrompt(category models.Category, name, text string, field EnhanceField) string {
	if field == FieldScenarioDescription {
		var reference string
		if jake, ok := catalog.ByID("jake"); ok {
			reference = jake.ScenarioDescription
		}

		return fmt.Sprintf(`Based on the following instructions for a %s profile named "%s", generate a detailed scenario description that sets up the context and expectations.

Instructions:
%s

Please provide an engaging scenario description (approximately 150-200 words) that:
1. Addresses the reader directly using "you" (not "the user")
2. Describes who they are interacting with (age, occupation, personality)
3. Sets up the context of the interaction
4. Explains what you should practice or focus on
5. Mentions the environment or setting
6. Provides guidance on conversation style and approach

Important: Always write in second person perspective. For example:
- Instead of "The user is on a date with Jake", write "You are on a date with Jake"
- Instead of "The user should practice negotiating", write "You should practice negotiating"

Reference this style:
%s

%s`, category, name, text, reference, categoryGuide(category))
	}

	return fmt.Sprintf(`Enhance the following %s for a %s profile named "%s":

%s

Please provide an improved version that is more detailed, engaging, and tailored to the specific scenario.

%s`, field, category, name, text, categoryGuide(category))
}

// BuildSearchDocument is the text embedded for persona search.
func (pb *PromptBuilder) BuildSearchDocument(profile models.Profile) string {
	return fmt.Sprintf("%s (%s)\n%s\n\n%s\n\n%s",
		profile.Name,
		profile.Category,
		profile.Description,
		profile.ScenarioDescription,
		profile.Instructions,
	)
}

const commonProfileGuidelines = `Important: The profile MUST follow these core guidelines:
1. Stay in character 100% of the time - never acknowledge being AI
2. Use natural, conversational language appropriate for the context
3. Provide specific examples of interactions/scenarios
4. Include clear evaluation criteria or success metrics
5. Maintain consistent tone and personality throughout`

var categoryFormats = map[models.Category]string{
	models.CategoryDating: `Create a dating profile. The name MUST be a single, realistic first name (e.g., "Sarah", not "Dating Coach").
Describe the character's age, occupation and location, a tone description, 3-4 key personality traits, 3-4 hobbies and a typical date setting.
Include two short example exchanges where the character ends with a question, then a Notes list with reminders about the character's key trait and conversation style.
The character should actively engage with the user by asking questions and feel like someone on an actual date.`,
	models.CategoryInterview: `Create an interview profile. The character is the interviewer for a specific position and never breaks character.
List 4-6 areas to assess, 2-3 role-specific questions, 2-3 behavioral or situational questions and how soft skills are evaluated.
State the tone to keep throughout the interview and give three example questions.`,
	models.CategoryDebate: `Create a debate profile. The character advocates one position on a clear topic with an emotive and friendly tone.
Include an example opening statement, response time guidance, three guidelines, an example exchange with a reasoned counter-point and notes on debate technique.
Keep the debate respectful and evidence-based.`,
	models.CategorySmallTalk: `Create a small talk profile for a specific setting. Keep responses short, casual and friendly with natural follow-up questions.
Explain how the character opens the conversation and keeps it going, give an example exchange, and add notes with topic suggestions.`,
	models.CategoryPublicSpeaking: `Create a public speaking profile. The character supports the user in a specific speaking scenario.
Describe a five step process, give an example exchange with feedback, and add notes on speaking technique and performance improvement.`,
	models.CategorySalesPitch: `Create a sales pitch profile. The character is a customer interested in a product or service and shows genuine interest with healthy skepticism.
Describe the tone, give an example exchange where the customer asks follow-up questions about features, and add notes on the response strategy.`,
	models.CategoryNegotiation: `Create a negotiation profile. The character negotiates in a specific context aiming for a win-win outcome.
List points about strategy, communication, value creation, concessions, supporting evidence, professionalism and documenting the agreement.
End with the balance the character maintains throughout the negotiation.`,
	models.CategoryCustomerService: `Create a customer service profile. The character is a customer with a specific issue who always stays in character.
Describe the tone and key emotions, give an example exchange that includes an escalation, and add notes on how the user should respond.`,
}

func categoryGuide(category models.Category) string {
	format, ok := categoryFormats[category]
	if !ok {
		return fmt.Sprintf(`%s
Please provide the following:
1. An appropriate name for the %s profile (max 15 characters)
2. Enhanced instructions for the profile (about 250 words)
3. A brief scenario description (max 50 words)`, commonProfileGuidelines, category)
	}

	guide := commonProfileGuidelines + "\n" + format
	if ref, ok := catalog.Reference(category); ok {
		guide += "\n\nReference example (match this style):\n" + ref.Instructions
	}
	return guide
}
