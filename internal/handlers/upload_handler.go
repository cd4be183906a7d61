package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/resume-relevance/internal/models"
	"alfredoptarigan/resume-relevance/internal/services"
)

type UploadHandler struct {
	ingestService  services.IngestService
	storageService services.StorageService
	logger         *zap.Logger
}

func NewUploadHandler(
	ingestService services.IngestService,
	storageService services.StorageService,
	logger *zap.Logger,
) *UploadHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UploadHandler{
		ingestService:  ingestService,
		storageService: storageService,
		logger:         logger,
	}
}

// HandleUploadResume handles POST /upload/resume
func (h *UploadHandler) HandleUploadResume(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}

	filename, filePath, err := h.storageService.SaveFile(file, "resume")
	if err != nil {
		return err
	}

	resume, err := h.ingestService.IngestResumeFile(c.UserContext(), models.ResumeUpload{
		CandidateName:    c.FormValue("candidate_name"),
		Email:            c.FormValue("email"),
		Phone:            c.FormValue("phone"),
		Location:         c.FormValue("location"),
		OriginalFileName: file.Filename,
		FilePath:         filePath,
	})
	if err != nil {
		h.cleanup(filename)
		h.logger.Warn("❌ Resume upload failed", zap.String("file", file.Filename), zap.Error(err))
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resume)
}

// HandleUploadJD handles POST /upload/jd
func (h *UploadHandler) HandleUploadJD(c *fiber.Ctx) error {
	var req models.JDCreate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	jd, err := h.ingestService.IngestJD(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(jd)
}

// HandleUploadJDFile handles POST /upload/jd-file
func (h *UploadHandler) HandleUploadJDFile(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}

	filename, filePath, err := h.storageService.SaveFile(file, "jd")
	if err != nil {
		return err
	}

	jd, err := h.ingestService.IngestJDFile(c.UserContext(), filePath, file.Filename)
	if err != nil {
		h.cleanup(filename)
		h.logger.Warn("❌ JD file upload failed", zap.String("file", file.Filename), zap.Error(err))
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(jd)
}

func (h *UploadHandler) cleanup(filename string) {
	if err := h.storageService.DeleteFile(filename); err != nil {
		h.logger.Warn("⚠️ failed to remove upload", zap.String("file", filename), zap.Error(err))
	}
}
