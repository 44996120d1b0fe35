package services

import (
	"fmt"
	"strings"

	"github.com/TiGG-TV/Realtime/internal/models"
)

type Criterion struct {
	Name     string `json:"name"`
	Weight   int    `json:"weight"`
	Guidance string `json:"guidance"`
}

type Rubric struct {
	Category models.Category `json:"category"`
	Criteria []Criterion     `json:"criteria"`
}

func (r Rubric) TotalWeight() int {
	total := 0
	for _, c := range r.Criteria {
		total += c.Weight
	}
	return total
}

const rubricBaseInstructions = `Focus on scoring the user's responses and how they interact with the assistant.
Evaluate the user's performance based on their responses and how well they engage with and utilize the assistant's input.
Provide a weighted score for each criterion, ensuring the total adds up to 100%.
For each criterion, provide a brief explanation of why you assigned that score.`

const rubricFallback = "Score based on overall performance, considering how the user interacts with and responds to the assistant."

var rubrics = map[models.Category][]Criterion{
	models.CategoryDating: {
		{"Emotional Intelligence and Active Listening", 30, "Assess how well the user picks up on emotional cues and responds empathetically."},
		{"Conversational Dynamism and Engagement", 25, "Evaluate the user's ability to keep the conversation flowing and interesting."},
		{"Authenticity and Self-Expression", 20, "Judge how genuine and open the user appears in their responses."},
		{"Wit and Humor Appropriateness", 15, "Assess the user's ability to use humor effectively and appropriately."},
		{"Respect and Boundary Awareness", 10, "Evaluate how well the user respects boundaries and shows consideration."},
	},
	models.CategoryInterview: {
		{"Response Relevance and Concision", 30, "Assess how well the user's answers directly address questions and remain concise."},
		{"Experience Articulation", 25, "Evaluate the user's ability to clearly communicate their relevant experiences."},
		{"Professional Communication", 20, "Judge the user's language, tone, and overall professionalism."},
		{"Strategic Question Formulation", 15, "Assess the quality and relevance of questions the user asks about the role or company."},
		{"Overall Interview Navigation", 10, "Evaluate how well the user guides the conversation and handles unexpected topics."},
	},
	models.CategoryPublicSpeaking: {
		{"Content Structure and Clarity", 30, "Assess the logical flow and understandability of the user's speech."},
		{"Audience Engagement Techniques", 25, "Evaluate the user's methods to capture and maintain audience interest."},
		{"Vocal Variety and Pacing", 20, "Judge the user's use of tone, pitch, and speed to enhance their message."},
		{"Argument Coherence and Flow", 15, "Assess how well the user's points connect and support their overall message."},
		{"Opening and Closing Impact", 10, "Evaluate the effectiveness of the user's introduction and conclusion."},
	},
	models.CategoryLanguagePractice: {
		{"Grammatical Accuracy", 30, "Assess the correctness of the user's grammar and sentence structure."},
		{"Vocabulary Usage and Range", 25, "Evaluate the breadth and appropriateness of the user's vocabulary."},
		{"Pronunciation and Accent", 20, "Judge the clarity and accuracy of the user's pronunciation."},
		{"Fluency and Natural Flow", 15, "Assess how smoothly and naturally the user communicates."},
		{"Idiomatic and Cultural Aptitude", 10, "Evaluate the user's use of idioms and cultural references."},
	},
	models.CategorySalesPitch: {
		{"Benefit Articulation", 30, "Assess how well the user communicates the value proposition to the customer."},
		{"Need Identification and Addressing", 25, "Evaluate the user's ability to uncover and address customer needs."},
		{"Persuasive Delivery", 20, "Judge the user's overall persuasiveness and conviction in their pitch."},
		{"Objection Handling", 15, "Assess how effectively the user addresses and overcomes customer objections."},
		{"Closing Effectiveness", 10, "Evaluate the user's ability to guide the conversation towards a sale or next steps."},
	},
	models.CategorySmallTalk: {
		{"Conversation Initiation and Maintenance", 30, "Assess the user's ability to start and sustain engaging small talk."},
		{"Active Interest Demonstration", 25, "Evaluate how well the user shows genuine interest in the conversation topics."},
		{"Topic Selection and Transitioning", 20, "Judge the user's skill in choosing appropriate topics and smoothly changing subjects."},
		{"Conversational Balance", 15, "Assess the user's ability to maintain a give-and-take in the conversation."},
		{"Tonal Appropriateness", 10, "Evaluate the user's ability to match the tone and mood of the conversation."},
	},
	models.CategoryNegotiation: {
		{"Objective Clarity and Communication", 30, "Assess how clearly the user states and pursues their goals."},
		{"Solution Creativity and Compromise", 25, "Evaluate the user's ability to propose creative solutions and find middle ground."},
		{"Active Listening and Comprehension", 20, "Judge how well the user understands and responds to the other party's needs."},
		{"Emotional Regulation and Composure", 15, "Assess the user's ability to remain calm and professional under pressure."},
		{"Persuasion Technique Application", 10, "Evaluate the user's use of various persuasion techniques in the negotiation."},
	},
	models.CategoryCustomerService: {
		{"Empathy and Understanding", 30, "Assess how well the user relates to and understands the customer's concerns."},
		{"Solution Communication", 25, "Evaluate the user's ability to clearly explain solutions or next steps."},
		{"Issue Resolution Efficiency", 20, "Judge how quickly and effectively the user works towards resolving the issue."},
		{"Patience and Positive Attitude", 15, "Assess the user's ability to maintain a helpful and positive demeanor throughout."},
		{"Policy and Procedure Adherence", 10, "Evaluate how well the user follows company guidelines while assisting the customer."},
	},
	models.CategoryDebate: {
		{"Argument Strength and Logic", 30, "Evaluate the clarity, coherence, and logical consistency of the user's arguments."},
		{"Evidence and Examples", 25, "Assess the quality and relevance of evidence or examples provided to support arguments."},
		{"Rebuttal Effectiveness", 20, "Judge how well the user addresses and counters opposing viewpoints presented by the assistant."},
		{"Persuasive Techniques", 15, "Consider the use of rhetorical devices, emotional appeals, and other persuasive strategies."},
		{"Debate Etiquette and Composure", 10, "Evaluate the user's adherence to debate norms, respect for opposing views, and emotional control."},
	},
}

// RubricFor returns the weighted criteria for a category.
func RubricFor(category models.Category) (Rubric, bool) {
	criteria, ok := rubrics[category]
	if !ok {
		return Rubric{}, false
	}
	return Rubric{
		Category: category,
		Criteria: append([]Criterion(nil), criteria...),
	}, true
}

// RubricCategories lists every category that has a dedicated rubric.
func RubricCategories() []models.Category {
	out := make([]models.Category, 0, len(rubrics))
	for _, c := range models.ProfileCategories {
		if _, ok := rubrics[c]; ok {
			out = append(out, c)
		}
	}
	return append(out, models.CategoryLanguagePractice)
}

// RubricText renders the grading criteria for a category. Unknown categories
// get the generic overall-performance instruction.
func RubricText(category models.Category) string {
	var b strings.Builder
	b.WriteString(rubricBaseInstructions)
	b.WriteString("\n")

	rubric, ok := RubricFor(category)
	if !ok {
		b.WriteString(rubricFallback)
		return b.String()
	}

	b.WriteString("Score based on the following criteria (total 100%):\n")
	for _, c := range rubric.Criteria {
		fmt.Fprintf(&b, "- %s (%d%%): %s\n", c.Name, c.Weight, c.Guidance)
	}
	return strings.TrimRight(b.String(), "\n")
}
