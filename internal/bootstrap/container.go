package bootstrap

import (
	"time"

	"ad-compliance-be/internal/config"
	"ad-compliance-be/internal/constant"
	"ad-compliance-be/internal/controller"
	"ad-compliance-be/internal/pkg/logger"
	"ad-compliance-be/internal/repository/implementation"
	"ad-compliance-be/internal/repository/memory"
	"ad-compliance-be/internal/service"
	"ad-compliance-be/pkg/genai"
	"ad-compliance-be/pkg/pipeline"
	"ad-compliance-be/pkg/scraper"

	"gorm.io/gorm"
)

type Container struct {
	AnalysisController controller.IAnalysisController
	AgentController    controller.IAgentController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. External collaborators
	genaiClient := genai.NewRestClient(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		time.Duration(cfg.Gemini.GenerateTimeoutSecs)*time.Second,
	)
	webScraper := scraper.New()

	// 3. Pipeline components per modality
	pollInterval := time.Duration(cfg.Gemini.FilePollIntervalMs) * time.Millisecond
	invokers := map[pipeline.Modality]pipeline.Invoker{
		pipeline.ModalityVideo: pipeline.NewMediaInvoker(
			genaiClient, "video ad", constant.VideoGuidelines,
			pollInterval, cfg.Gemini.FilePollMaxAttempts, sysLogger,
		),
		pipeline.ModalityImage: pipeline.NewMediaInvoker(
			genaiClient, "Instagram post", constant.InstaGuidelines,
			pollInterval, cfg.Gemini.FilePollMaxAttempts, sysLogger,
		),
		pipeline.ModalityWebsite: pipeline.NewWebsiteInvoker(
			genaiClient, webScraper, constant.WebsiteGuidelines,
		),
	}
	normalizer := pipeline.NewNormalizer(genaiClient)

	// 4. Repositories
	sessionRepo := memory.NewSessionRepository()
	analysisRepo := implementation.NewAnalysisRepository(db)

	// 5. Services
	taskService := service.NewTaskService(sessionRepo, invokers, normalizer, sysLogger)
	analysisService := service.NewAnalysisService(analysisRepo, taskService, sysLogger)

	// 6. Controllers
	return &Container{
		AnalysisController: controller.NewAnalysisController(analysisService, cfg.App.UploadDir, sysLogger),
		AgentController:    controller.NewAgentController(taskService),
		Logger:             sysLogger,
	}
}
