package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-relevance/internal/models"
	"alfredoptarigan/resume-relevance/internal/services"
)

type EvaluationHandler struct {
	evaluatorService services.EvaluatorService
}

func NewEvaluationHandler(evaluatorService services.EvaluatorService) *EvaluationHandler {
	return &EvaluationHandler{
		evaluatorService: evaluatorService,
	}
}

// HandleEvaluate handles POST /evaluate
func (h *EvaluationHandler) HandleEvaluate(c *fiber.Ctx) error {
	var req models.EvaluateRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.ResumeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_id is required",
		})
	}

	if req.JDID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "jd_id is required",
		})
	}

	resumeID, err := uuid.Parse(req.ResumeID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume_id format",
		})
	}

	jdID, err := uuid.Parse(req.JDID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid jd_id format",
		})
	}

	evaluation, err := h.evaluatorService.Evaluate(c.UserContext(), services.EvaluateParams{
		ResumeID:      resumeID,
		JDID:          jdID,
		BiasAnonymize: req.Anonymize(),
		Weights:       req.Weights,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(evaluation)
}
