package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/TiGG-TV/Realtime/internal/models"
	"github.com/TiGG-TV/Realtime/internal/repositories"
	"github.com/TiGG-TV/Realtime/internal/services"
)

type BriefHandler struct {
	briefRepo      repositories.BriefRepository
	storageService services.StorageService
	maxFileSize    int64
}

func NewBriefHandler(
	briefRepo repositories.BriefRepository,
	storageService services.StorageService,
	maxFileSize int64,
) *BriefHandler {
	return &BriefHandler{
		briefRepo:      briefRepo,
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /briefs
func (h *BriefHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("brief")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Please upload a 'brief' PDF file")
	}

	if file.Size > h.maxFileSize {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Brief too large. Max size: %d bytes", h.maxFileSize))
	}

	userID := c.FormValue("user_id")
	filename, filePath, err := h.storageService.SaveBrief(file, userID)
	if err != nil {
		return fail(err)
	}

	brief := models.Brief{
		ID:               uuid.New(),
		UserID:           userID,
		Filename:         filename,
		OriginalFileName: file.Filename,
		FilePath:         filePath,
	}

	if err := h.briefRepo.Create(&brief); err != nil {
		if delErr := h.storageService.DeleteFile(filename); delErr != nil {
			log.Printf("⚠️  Failed to clean up %s: %v\n", filename, delErr)
		}
		return fail(err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.BriefResponse{
		ID:           brief.ID.String(),
		Filename:     brief.Filename,
		OriginalName: brief.OriginalFileName,
	})
}
