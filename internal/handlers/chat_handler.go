package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/TiGG-TV/Realtime/internal/models"
	"github.com/TiGG-TV/Realtime/internal/services"
)

type ChatHandler struct {
	conversation services.ConversationService
	worker       services.Worker
}

func NewChatHandler(conversation services.ConversationService, worker services.Worker) *ChatHandler {
	return &ChatHandler{
		conversation: conversation,
		worker:       worker,
	}
}

// HandleSubmitChat handles POST /chats
func (h *ChatHandler) HandleSubmitChat(c *fiber.Ctx) error {
	var req models.SubmitChatRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	chat, err := h.conversation.SubmitChat(c.UserContext(), services.SubmitChatInput{
		UserID:     req.UserID,
		Username:   req.Username,
		ProfileID:  req.ProfileID,
		Transcript: req.Transcript,
		Turns:      services.TurnsFromRequest(req.Turns),
	})
	if err != nil {
		return fail(err)
	}

	h.worker.EnqueueChat(chat.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.SubmitChatResponse{
		ID:     chat.ID.String(),
		Status: string(chat.Status),
	})
}

// HandleGetChat handles GET /chats/:id
func (h *ChatHandler) HandleGetChat(c *fiber.Ctx) error {
	chatID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid chat ID format")
	}

	chat, err := h.conversation.GetChat(chatID)
	if err != nil {
		return fail(err)
	}

	return c.JSON(chatResponse(chat))
}

// HandleListUserChats handles GET /users/:userId/chats
func (h *ChatHandler) HandleListUserChats(c *fiber.Ctx) error {
	chats, err := h.conversation.ListUserChats(c.Params("userId"), c.QueryInt("limit", 20))
	if err != nil {
		return fail(err)
	}

	return c.JSON(fiber.Map{
		"chats": chats,
	})
}

// HandleScore handles POST /score. Nothing is stored.
func (h *ChatHandler) HandleScore(c *fiber.Ctx) error {
	var req models.ScoreRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	transcript := req.Transcript
	if len(req.Turns) > 0 {
		transcript = services.FormatTranscript(services.TurnsFromRequest(req.Turns))
	}

	result, err := h.conversation.ScoreTranscript(c.UserContext(), req.ProfileID, transcript)
	if err != nil {
		code := statusFor(err)
		if code < fiber.StatusInternalServerError {
			return fail(err)
		}
		log.Printf("❌ Scoring failed for %s: %v\n", req.ProfileID, err)
		return fiber.NewError(code, services.ScoringFailedNotice)
	}

	return c.JSON(result)
}

func chatResponse(chat *models.Chat) models.ChatResponse {
	response := models.ChatResponse{
		ID:        chat.ID.String(),
		Status:    string(chat.Status),
		ProfileID: chat.ProfileID,
		Profile:   chat.ProfileName,
		Category:  chat.Category,
		Result:    chat.Result(),
	}

	if chat.Status == models.StatusFailed && chat.ErrorMessage != nil {
		response.ErrorMessage = chat.ErrorMessage
	}

	return response
}
