package controller

import (
	"ad-compliance-be/internal/dto"
	"ad-compliance-be/internal/pkg/serverutils"
	"ad-compliance-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// IAgentController exposes the generic agent protocol endpoint: one message
// in, one envelope out, no persistence.
type IAgentController interface {
	RegisterRoutes(r fiber.Router)
	Run(ctx *fiber.Ctx) error
}

type agentController struct {
	task service.ITaskService
}

func NewAgentController(task service.ITaskService) IAgentController {
	return &agentController{task: task}
}

func (c *agentController) RegisterRoutes(r fiber.Router) {
	r.Post("/run", c.Run)
}

func (c *agentController) Run(ctx *fiber.Ctx) error {
	var req dto.AgentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body: %v", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	envelope := c.task.Process(ctx.Context(), req.Message, req.Context, req.SessionId)
	return ctx.JSON(envelope)
}
