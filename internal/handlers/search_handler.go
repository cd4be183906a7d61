package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-relevance/internal/models"
	"alfredoptarigan/resume-relevance/internal/services"
)

type SearchHandler struct {
	searchService services.SearchService
}

func NewSearchHandler(searchService services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// HandleShortlist handles GET /search/shortlist
func (h *SearchHandler) HandleShortlist(c *fiber.Ctx) error {
	jdID, err := uuid.Parse(c.Query("jd_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "jd_id must be a valid id",
		})
	}

	entries, err := h.searchService.Shortlist(c.UserContext(), jdID, models.ShortlistFilter{
		MinScore: c.QueryFloat("min_score", 60),
		Location: c.Query("location"),
		Limit:    c.QueryInt("limit", 50),
	})
	if err != nil {
		return err
	}

	return c.JSON(entries)
}

// HandleMatrix handles GET /search/matrix
func (h *SearchHandler) HandleMatrix(c *fiber.Ctx) error {
	resumeID, err := uuid.Parse(c.Query("resume_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_id must be a valid id",
		})
	}

	entries, err := h.searchService.Matrix(c.UserContext(), resumeID)
	if err != nil {
		return err
	}

	return c.JSON(entries)
}

// HandleSemantic handles GET /search/semantic
func (h *SearchHandler) HandleSemantic(c *fiber.Ctx) error {
	jdID, err := uuid.Parse(c.Query("jd_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "jd_id must be a valid id",
		})
	}

	hits, err := h.searchService.Semantic(c.UserContext(), jdID, c.QueryInt("limit", 10))
	if err != nil {
		return err
	}

	return c.JSON(hits)
}
