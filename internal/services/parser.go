package services

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultFeedback    = "The conversation was too short to provide detailed feedback."
	DefaultImprovement = "Engage in a longer conversation to receive specific improvement suggestions."

	scorePrefix       = "Overall Score:"
	feedbackHeader    = "Overall Feedback:"
	improvementHeader = "Areas for Improvement:"
)

type ParsedScore struct {
	Score               int
	Feedback            []string
	AreasForImprovement []string
}

type parseSection int

const (
	sectionNone parseSection = iota
	sectionFeedback
	sectionImprovement
)

type parseState struct {
	section      parseSection
	score        int
	feedback     []string
	improvements []string
}

type lineRule struct {
	match func(line string, st *parseState) bool
	apply func(line string, st *parseState)
}

// Rules are tried in order and the first match consumes the line.
var scoringRules = []lineRule{
	{
		match: func(line string, _ *parseState) bool { return strings.HasPrefix(line, scorePrefix) },
		apply: func(line string, st *parseState) { st.score = parseLeadingInt(scoreField(line)) },
	},
	{
		match: func(line string, _ *parseState) bool { return line == feedbackHeader },
		apply: func(_ string, st *parseState) { st.section = sectionFeedback },
	},
	{
		match: func(line string, _ *parseState) bool { return line == improvementHeader },
		apply: func(_ string, st *parseState) { st.section = sectionImprovement },
	},
	{
		match: func(line string, st *parseState) bool {
			return strings.HasPrefix(line, "-") && st.section != sectionNone
		},
		apply: func(line string, st *parseState) {
			point := strings.TrimSpace(line[1:])
			switch st.section {
			case sectionFeedback:
				st.feedback = append(st.feedback, point)
			case sectionImprovement:
				st.improvements = append(st.improvements, point)
			}
		},
	},
}

// ParseScoringResponse extracts the score and bullet lists from a grader reply.
// It never fails: unrecognised lines are skipped, missing lists get a default
// entry and the score is clamped to 0..100 before AdjustScore is applied.
func ParseScoringResponse(text string) ParsedScore {
	st := &parseState{}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		for _, rule := range scoringRules {
			if rule.match(line, st) {
				rule.apply(line, st)
				break
			}
		}
	}

	if len(st.feedback) == 0 {
		st.feedback = []string{DefaultFeedback}
	}
	if len(st.improvements) == 0 {
		st.improvements = []string{DefaultImprovement}
	}

	return ParsedScore{
		Score:               AdjustScore(clampScore(st.score)),
		Feedback:            st.feedback,
		AreasForImprovement: st.improvements,
	}
}

// AdjustScore deflates high grades: above 80 loses 20%, above 60 loses 10%.
func AdjustScore(score int) int {
	switch {
	case score > 80:
		return int(math.Floor(float64(score) * 0.8))
	case score > 60:
		return int(math.Floor(float64(score) * 0.9))
	default:
		return score
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// scoreField returns the text between the first and second colon.
func scoreField(line string) string {
	parts := strings.SplitN(line, ":", 3)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// parseLeadingInt reads an optional sign and the digits that follow, stopping
// at the first other character. Text with no leading digits yields 0.
func parseLeadingInt(s string) int {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		if s[0] == '-' {
			return math.MinInt32
		}
		return math.MaxInt32
	}
	return n
}
