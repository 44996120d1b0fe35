package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TiGG-TV/Realtime/internal/models"
	"github.com/TiGG-TV/Realtime/internal/repositories"
	"github.com/TiGG-TV/Realtime/internal/services"
)

type ProgressHandler struct {
	progress services.ProgressService
}

func NewProgressHandler(progress services.ProgressService) *ProgressHandler {
	return &ProgressHandler{progress: progress}
}

// HandleGetProgress handles GET /users/:userId/progress
func (h *ProgressHandler) HandleGetProgress(c *fiber.Ctx) error {
	progress, err := h.progress.GetProgress(c.Params("userId"))
	if err != nil {
		return fail(err)
	}

	return c.JSON(progress)
}

// HandleGetScores handles GET /users/:userId/scores
func (h *ProgressHandler) HandleGetScores(c *fiber.Ctx) error {
	scores, err := h.progress.LatestScores(c.Params("userId"))
	if err != nil {
		return fail(err)
	}

	return c.JSON(fiber.Map{
		"scores": scores,
	})
}

// HandleLeaderboard handles GET /leaderboard
func (h *ProgressHandler) HandleLeaderboard(c *fiber.Ctx) error {
	filter := repositories.ChatFilter{
		Category:  models.Category(c.Query("category")),
		ProfileID: c.Query("profile_id"),
	}

	board, err := h.progress.GetLeaderboard(filter, c.QueryInt("page", 1), c.QueryInt("page_size", 10), c.Query("user_id"))
	if err != nil {
		return fail(err)
	}

	return c.JSON(board)
}
