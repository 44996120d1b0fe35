package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/TiGG-TV/Realtime/internal/models"
	"github.com/TiGG-TV/Realtime/internal/services"
)

type ProfileHandler struct {
	profiles  services.ProfileService
	search    services.ProfileSearchService
	generator services.ProfileGenerator
}

func NewProfileHandler(
	profiles services.ProfileService,
	search services.ProfileSearchService,
	generator services.ProfileGenerator,
) *ProfileHandler {
	return &ProfileHandler{
		profiles:  profiles,
		search:    search,
		generator: generator,
	}
}

type categoryInfo struct {
	Category models.Category      `json:"category"`
	Criteria []services.Criterion `json:"criteria"`
}

// HandleCategories handles GET /categories
func (h *ProfileHandler) HandleCategories(c *fiber.Ctx) error {
	var out []categoryInfo
	for _, cat := range services.RubricCategories() {
		rubric, _ := services.RubricFor(cat)
		out = append(out, categoryInfo{Category: cat, Criteria: rubric.Criteria})
	}

	return c.JSON(fiber.Map{
		"categories": out,
	})
}

// HandleListProfiles handles GET /profiles
func (h *ProfileHandler) HandleListProfiles(c *fiber.Ctx) error {
	category := models.Category(c.Query("category"))
	if category != "" && !category.IsProfileCategory() {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown category")
	}

	profiles, err := h.profiles.List(category, c.Query("user_id"))
	if err != nil {
		return fail(err)
	}

	return c.JSON(fiber.Map{
		"profiles": profiles,
	})
}

// HandleGetProfile handles GET /profiles/:id
func (h *ProfileHandler) HandleGetProfile(c *fiber.Ctx) error {
	profile, err := h.profiles.Get(c.Params("id"))
	if err != nil {
		return fail(err)
	}

	return c.JSON(profile)
}

// HandleSearch handles GET /profiles/search
func (h *ProfileHandler) HandleSearch(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "q is required")
	}

	matches, err := h.search.Search(c.UserContext(), query, models.Category(c.Query("category")), c.QueryInt("limit", 5))
	if err != nil {
		return fail(err)
	}

	return c.JSON(fiber.Map{
		"matches": matches,
	})
}

// HandleGenerate handles POST /profiles/generate
func (h *ProfileHandler) HandleGenerate(c *fiber.Ctx) error {
	var req models.GenerateProfileRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	var briefID uuid.UUID
	if req.BriefID != "" {
		briefID = uuid.MustParse(req.BriefID)
	}

	profile, err := h.generator.GenerateProfile(c.UserContext(), services.GenerateProfileInput{
		UserID:       req.UserID,
		Category:     req.Category,
		Instructions: req.Instructions,
		BriefID:      briefID,
	})
	if err != nil {
		return fail(err)
	}

	return c.Status(fiber.StatusCreated).JSON(profile)
}

// HandleEnhance handles POST /profiles/enhance
func (h *ProfileHandler) HandleEnhance(c *fiber.Ctx) error {
	var req models.EnhanceTextRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	text, err := h.generator.EnhanceText(c.UserContext(), req.Category, req.Name, req.Text, services.EnhanceField(req.Field))
	if err != nil {
		return fail(err)
	}

	return c.JSON(models.EnhanceTextResponse{Text: text})
}
