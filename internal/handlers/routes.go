package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Chat     *ChatHandler
	Profile  *ProfileHandler
	Brief    *BriefHandler
	Progress *ProgressHandler
}

func RegisterRoutes(api fiber.Router, h Handlers) {
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Get("/categories", h.Profile.HandleCategories)

	// search must be registered before :id
	api.Get("/profiles/search", h.Profile.HandleSearch)
	api.Get("/profiles", h.Profile.HandleListProfiles)
	api.Get("/profiles/:id", h.Profile.HandleGetProfile)
	api.Post("/profiles/generate", h.Profile.HandleGenerate)
	api.Post("/profiles/enhance", h.Profile.HandleEnhance)

	api.Post("/briefs", h.Brief.HandleUpload)

	api.Post("/score", h.Chat.HandleScore)
	api.Post("/chats", h.Chat.HandleSubmitChat)
	api.Get("/chats/:id", h.Chat.HandleGetChat)

	api.Get("/users/:userId/chats", h.Chat.HandleListUserChats)
	api.Get("/users/:userId/progress", h.Progress.HandleGetProgress)
	api.Get("/users/:userId/scores", h.Progress.HandleGetScores)

	api.Get("/leaderboard", h.Progress.HandleLeaderboard)
}
