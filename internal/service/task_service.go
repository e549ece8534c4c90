package service

import (
	"context"
	"encoding/json"
	"fmt"

	"ad-compliance-be/internal/constant"
	"ad-compliance-be/internal/dto"
	"ad-compliance-be/internal/pkg/logger"
	"ad-compliance-be/internal/pkg/serverutils"
	"ad-compliance-be/internal/repository/memory"
	"ad-compliance-be/pkg/pipeline"
	"ad-compliance-be/pkg/store"

	"github.com/google/uuid"
)

// ITaskService is the dispatch core: it resolves the session, drives the
// classify -> invoke -> normalize pipeline, and always answers with an
// envelope. It never returns a Go error to the caller.
type ITaskService interface {
	Process(ctx context.Context, message string, taskCtx map[string]interface{}, sessionId string) *dto.AgentResponse
}

type taskService struct {
	sessions   *memory.SessionRepository
	invokers   map[pipeline.Modality]pipeline.Invoker
	normalizer *pipeline.Normalizer
	logger     logger.ILogger
}

func NewTaskService(
	sessions *memory.SessionRepository,
	invokers map[pipeline.Modality]pipeline.Invoker,
	normalizer *pipeline.Normalizer,
	log logger.ILogger,
) ITaskService {
	return &taskService{
		sessions:   sessions,
		invokers:   invokers,
		normalizer: normalizer,
		logger:     log,
	}
}

func (s *taskService) Process(ctx context.Context, message string, taskCtx map[string]interface{}, sessionId string) *dto.AgentResponse {
	userId := stringFromContext(taskCtx, "user_id")
	if userId == "" {
		userId = constant.DefaultUserId
	}
	if sessionId == "" {
		sessionId = uuid.NewString()
		s.logger.Info("task", "generated new session id", map[string]interface{}{"session_id": sessionId})
	}

	session := s.sessions.GetOrCreate(constant.AppName, userId, sessionId)

	// The user turn stays recorded even when the pipeline fails afterwards.
	session.Append(store.TurnRoleUser, message)
	s.sessions.Save(session)

	normalized, modality, err := s.runPipeline(ctx, message, taskCtx)
	if err != nil {
		s.logger.Error("task", "pipeline failed", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return &dto.AgentResponse{
			Message:   fmt.Sprintf("Error processing your request: %s", err.Error()),
			Status:    "error",
			Data:      map[string]interface{}{"error_type": serverutils.KindOf(err)},
			SessionId: sessionId,
		}
	}

	finalText, err := json.Marshal(normalized)
	if err != nil {
		return &dto.AgentResponse{
			Message:   fmt.Sprintf("Error processing your request: %s", err.Error()),
			Status:    "error",
			Data:      map[string]interface{}{"error_type": serverutils.KindInternal},
			SessionId: sessionId,
		}
	}

	session.Append(store.TurnRoleModel, string(finalText))
	s.sessions.Save(session)

	return &dto.AgentResponse{
		Message: string(finalText),
		Status:  "success",
		Data: map[string]interface{}{
			"analysis": normalized,
			"modality": string(modality),
			"turns":    len(session.Turns),
		},
		SessionId: sessionId,
	}
}

func (s *taskService) runPipeline(ctx context.Context, message string, taskCtx map[string]interface{}) (*pipeline.Normalized, pipeline.Modality, error) {
	classification, err := pipeline.Classify(pipeline.ClassifyInput{
		FilePath:   stringFromContext(taskCtx, "file_path"),
		URL:        stringFromContext(taskCtx, "url"),
		Guidelines: stringFromContext(taskCtx, "guidelines"),
	})
	if err != nil {
		return nil, "", err
	}

	invoker, ok := s.invokers[classification.Modality]
	if !ok {
		return nil, "", serverutils.NewValidationError("no invoker registered for modality %s", classification.Modality)
	}

	raw, err := invoker.Invoke(ctx, classification.Target, message)
	if err != nil {
		return nil, classification.Modality, err
	}

	guidelines := classification.GuidelineOverride
	if guidelines == "" {
		guidelines = invoker.Guidelines()
	}

	normalized, err := s.normalizer.Normalize(ctx, raw, guidelines)
	if err != nil {
		return nil, classification.Modality, err
	}
	return normalized, classification.Modality, nil
}

func stringFromContext(taskCtx map[string]interface{}, key string) string {
	if taskCtx == nil {
		return ""
	}
	if v, ok := taskCtx[key].(string); ok {
		return v
	}
	return ""
}
