package contract

import (
	"context"

	"ad-compliance-be/internal/entity"
	"ad-compliance-be/internal/repository/specification"
)

type AnalysisRepository interface {
	// Upsert stores the result; an existing document_id is overwritten.
	Upsert(ctx context.Context, result *entity.AnalysisResult) error
	FindByDocumentId(ctx context.Context, documentId string) (*entity.AnalysisResult, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AnalysisResult, error)
	// Delete reports whether a row was actually removed.
	Delete(ctx context.Context, documentId string) (bool, error)
	// Reset drops and recreates the analysis_results table.
	Reset(ctx context.Context) error
}
