package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-relevance/internal/models"
	"alfredoptarigan/resume-relevance/internal/services"
)

type ResultHandler struct {
	evaluatorService services.EvaluatorService
	searchService    services.SearchService
}

func NewResultHandler(evaluatorService services.EvaluatorService, searchService services.SearchService) *ResultHandler {
	return &ResultHandler{
		evaluatorService: evaluatorService,
		searchService:    searchService,
	}
}

// HandleGetResult handles GET /evaluations/:id
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	evalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid evaluation ID format",
		})
	}

	evaluation, err := h.evaluatorService.GetEvaluation(c.UserContext(), evalID)
	if err != nil {
		return err
	}

	return c.JSON(evaluation)
}

// HandleDashboard handles GET /evaluations/dashboard
func (h *ResultHandler) HandleDashboard(c *fiber.Ctx) error {
	evaluations, err := h.searchService.Dashboard(c.UserContext(), models.DashboardFilter{
		JobTitle: c.Query("job_title"),
		MinScore: c.QueryFloat("min_score", 0),
		Location: c.Query("location"),
		Limit:    c.QueryInt("limit", 50),
	})
	if err != nil {
		return err
	}

	return c.JSON(evaluations)
}
