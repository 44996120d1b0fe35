package models

type TurnRequest struct {
	Role       string `json:"role" validate:"required,oneof=user assistant"`
	Text       string `json:"text"`
	Transcript string `json:"transcript"`
}

// SubmitChatRequest carries either a ready transcript or the raw turns.
type SubmitChatRequest struct {
	UserID     string        `json:"user_id" validate:"required"`
	Username   string        `json:"username"`
	ProfileID  string        `json:"profile_id" validate:"required"`
	Transcript string        `json:"transcript" validate:"required_without=Turns"`
	Turns      []TurnRequest `json:"turns" validate:"required_without=Transcript,dive"`
}

type SubmitChatResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ScoreRequest struct {
	ProfileID  string        `json:"profile_id" validate:"required"`
	Transcript string        `json:"transcript" validate:"required_without=Turns"`
	Turns      []TurnRequest `json:"turns" validate:"required_without=Transcript,dive"`
}

type ChatResponse struct {
	ID           string         `json:"id"`
	Status       string         `json:"status"`
	ProfileID    string         `json:"profile_id"`
	Profile      string         `json:"profile"`
	Category     Category       `json:"category"`
	Result       *ScoringResult `json:"result,omitempty"`
	ErrorMessage *string        `json:"error_message,omitempty"`
}

type GenerateProfileRequest struct {
	UserID       string   `json:"user_id" validate:"required"`
	Category     Category `json:"category" validate:"required"`
	Instructions string   `json:"instructions" validate:"required"`
	BriefID      string   `json:"brief_id" validate:"omitempty,uuid"`
}

type EnhanceTextRequest struct {
	Category Category `json:"category" validate:"required"`
	Name     string   `json:"name" validate:"required"`
	Text     string   `json:"text" validate:"required"`
	Field    string   `json:"field" validate:"required,oneof=instructions description scenarioDescription"`
}

type EnhanceTextResponse struct {
	Text string `json:"text"`
}

type BriefResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
}
