package service

import (
	"context"
	"os"
	"time"

	"ad-compliance-be/internal/constant"
	"ad-compliance-be/internal/dto"
	"ad-compliance-be/internal/entity"
	"ad-compliance-be/internal/pkg/logger"
	"ad-compliance-be/internal/pkg/serverutils"
	"ad-compliance-be/internal/repository/contract"
	"ad-compliance-be/internal/repository/specification"
	"ad-compliance-be/pkg/pipeline"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IAnalysisService interface {
	// Analyze validates the request, dispatches the pipeline, and persists the
	// outcome. Validation failures return an error (transport 4xx); dispatch
	// failures come back inside the envelope.
	Analyze(ctx context.Context, req *dto.AnalyzeRequest) (*dto.AgentResponse, error)
	Get(ctx context.Context, documentId string) (*dto.AnalysisResultResponse, error)
	GetAll(ctx context.Context) ([]*dto.AnalysisResultResponse, error)
	Delete(ctx context.Context, documentId string) error
	Reset(ctx context.Context) error
}

type analysisService struct {
	repository contract.AnalysisRepository
	task       ITaskService
	logger     logger.ILogger
}

func NewAnalysisService(repository contract.AnalysisRepository, task ITaskService, log logger.ILogger) IAnalysisService {
	return &analysisService{
		repository: repository,
		task:       task,
		logger:     log,
	}
}

func (s *analysisService) Analyze(ctx context.Context, req *dto.AnalyzeRequest) (*dto.AgentResponse, error) {
	if req.FilePath != "" {
		if _, err := os.Stat(req.FilePath); err != nil {
			return nil, serverutils.NewValidationError("file not found at path: %s", req.FilePath)
		}
	}

	classification, err := pipeline.Classify(pipeline.ClassifyInput{
		FilePath:   req.FilePath,
		URL:        req.URL,
		Guidelines: req.Guidelines,
	})
	if err != nil {
		return nil, err
	}

	taskCtx := make(map[string]interface{}, len(req.Context)+3)
	for k, v := range req.Context {
		taskCtx[k] = v
	}
	if req.FilePath != "" {
		taskCtx["file_path"] = req.FilePath
	}
	if req.URL != "" {
		taskCtx["url"] = req.URL
	}
	if req.Guidelines != "" {
		taskCtx["guidelines"] = req.Guidelines
	}

	envelope := s.task.Process(ctx, classification.Instruction, taskCtx, req.SessionId)
	if envelope.Status != "success" {
		return envelope, nil
	}

	normalized, ok := envelope.Data["analysis"].(*pipeline.Normalized)
	if !ok {
		s.logger.Error("analysis", "dispatch succeeded without normalized payload", nil)
		return envelope, nil
	}

	documentId := stringFromContext(taskCtx, "document_id")
	if documentId == "" {
		documentId = uuid.NewString()
	}

	fileType := req.DocumentType
	if fileType == "" {
		fileType = string(classification.Modality)
	}

	result := &entity.AnalysisResult{
		DocumentId:   documentId,
		DocumentName: req.DocumentName,
		UploadTime:   time.Now(),
		Status:       deriveStatus(normalized.Score),
		Score:        normalized.Score,
		FileType:     fileType,
		FileURL:      classification.Target,
		Suggestions:  normalized.Suggestions,
		Conflicts:    normalized.Conflicts,
		Guidelines:   normalized.Guidelines,
		Summary:      normalized.Summary,
	}

	// A storage failure must not mask a completed analysis; the envelope is
	// still returned, just without a document_id.
	if err := s.repository.Upsert(ctx, result); err != nil {
		s.logger.Error("analysis", "failed to store analysis result", map[string]interface{}{
			"document_id": documentId,
			"error":       err.Error(),
		})
		return envelope, nil
	}

	envelope.Data["document_id"] = documentId
	return envelope, nil
}

func (s *analysisService) Get(ctx context.Context, documentId string) (*dto.AnalysisResultResponse, error) {
	result, err := s.repository.FindByDocumentId(ctx, documentId)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, serverutils.NewNotFoundError("analysis result not found for document ID: %s", documentId)
	}
	return toResultResponse(result), nil
}

func (s *analysisService) GetAll(ctx context.Context) ([]*dto.AnalysisResultResponse, error) {
	results, err := s.repository.FindAll(ctx,
		specification.OrderBy{Field: "upload_time", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return lo.Map(results, func(r *entity.AnalysisResult, _ int) *dto.AnalysisResultResponse {
		return toResultResponse(r)
	}), nil
}

func (s *analysisService) Delete(ctx context.Context, documentId string) error {
	deleted, err := s.repository.Delete(ctx, documentId)
	if err != nil {
		return err
	}
	if !deleted {
		return serverutils.NewNotFoundError("analysis result not found for document ID: %s", documentId)
	}
	return nil
}

func (s *analysisService) Reset(ctx context.Context) error {
	return s.repository.Reset(ctx)
}

func deriveStatus(score float64) string {
	if score > constant.ApprovalThreshold {
		return constant.StatusApproved
	}
	return constant.StatusReject
}

func toResultResponse(r *entity.AnalysisResult) *dto.AnalysisResultResponse {
	return &dto.AnalysisResultResponse{
		DocumentId:   r.DocumentId,
		DocumentName: r.DocumentName,
		UploadTime:   r.UploadTime,
		Status:       r.Status,
		Score:        r.Score,
		FileType:     r.FileType,
		FileURL:      r.FileURL,
		Suggestions:  r.Suggestions,
		Conflicts:    r.Conflicts,
		Guidelines:   r.Guidelines,
		Summary:      r.Summary,
	}
}
