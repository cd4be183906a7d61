package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Upload     *UploadHandler
	Evaluation *EvaluationHandler
	Result     *ResultHandler
	Search     *SearchHandler
}

// RegisterRoutes mounts the API under /api/v1.
func RegisterRoutes(app *fiber.App, h Handlers) {
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/upload/resume", h.Upload.HandleUploadResume)
	api.Post("/upload/jd", h.Upload.HandleUploadJD)
	api.Post("/upload/jd-file", h.Upload.HandleUploadJDFile)

	api.Post("/evaluate", h.Evaluation.HandleEvaluate)

	// dashboard is registered before :id so it is not parsed as an id
	api.Get("/evaluations/dashboard", h.Result.HandleDashboard)
	api.Get("/evaluations/:id", h.Result.HandleGetResult)

	api.Get("/search/shortlist", h.Search.HandleShortlist)
	api.Get("/search/matrix", h.Search.HandleMatrix)
	api.Get("/search/semantic", h.Search.HandleSemantic)
}
