package controller

import (
	"encoding/json"
	"os"
	"path/filepath"

	"ad-compliance-be/internal/dto"
	"ad-compliance-be/internal/pkg/logger"
	"ad-compliance-be/internal/pkg/serverutils"
	"ad-compliance-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAnalysisController interface {
	RegisterRoutes(r fiber.Router)
	Analyze(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
}

type analysisController struct {
	service   service.IAnalysisService
	uploadDir string
	logger    logger.ILogger
}

func NewAnalysisController(service service.IAnalysisService, uploadDir string, log logger.ILogger) IAnalysisController {
	return &analysisController{
		service:   service,
		uploadDir: uploadDir,
		logger:    log,
	}
}

func (c *analysisController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/v1")
	h.Post("/analyze", c.Analyze)
	h.Get("/health", c.Health)
	h.Get("/analysis/:document_id", c.Show)
	h.Get("/analysis", c.GetAll)
	h.Delete("/analysis/:document_id", c.Delete)
	h.Post("/reset-database", c.Reset)
}

func (c *analysisController) Analyze(ctx *fiber.Ctx) error {
	contextStr := ctx.FormValue("context", "{}")
	if contextStr == "" {
		contextStr = "{}"
	}
	taskCtx := make(map[string]interface{})
	if err := json.Unmarshal([]byte(contextStr), &taskCtx); err != nil {
		return serverutils.NewValidationError("context must be a JSON object: %v", err)
	}

	req := &dto.AnalyzeRequest{
		DocumentName: ctx.FormValue("document_name"),
		SessionId:    ctx.FormValue("session_id"),
		Context:      taskCtx,
		URL:          ctx.FormValue("url"),
		DocumentType: ctx.FormValue("document_type"),
		Guidelines:   ctx.FormValue("guidelines"),
	}

	if fileHeader, err := ctx.FormFile("file"); err == nil && fileHeader != nil {
		if err := os.MkdirAll(c.uploadDir, 0755); err != nil {
			return serverutils.NewStorageError("failed to prepare upload directory", err)
		}
		savedPath := filepath.Join(c.uploadDir, filepath.Base(fileHeader.Filename))
		if err := ctx.SaveFile(fileHeader, savedPath); err != nil {
			return serverutils.NewStorageError("failed to save uploaded file", err)
		}
		req.FilePath = savedPath
		c.logger.Info("analysis", "file upload saved", map[string]interface{}{"path": savedPath})
	}

	envelope, err := c.service.Analyze(ctx.Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(envelope)
}

func (c *analysisController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "healthy"})
}

func (c *analysisController) Show(ctx *fiber.Ctx) error {
	documentId := ctx.Params("document_id")

	res, err := c.service.Get(ctx.Context(), documentId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *analysisController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *analysisController) Delete(ctx *fiber.Ctx) error {
	documentId := ctx.Params("document_id")

	if err := c.service.Delete(ctx.Context(), documentId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Analysis result deleted for document ID: "+documentId, nil))
}

func (c *analysisController) Reset(ctx *fiber.Ctx) error {
	if err := c.service.Reset(ctx.Context()); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Database reset successfully", nil))
}
