package implementation

import (
	"context"
	"errors"

	"ad-compliance-be/internal/entity"
	"ad-compliance-be/internal/mapper"
	"ad-compliance-be/internal/model"
	"ad-compliance-be/internal/repository/contract"
	"ad-compliance-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnalysisRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AnalysisMapper
}

func NewAnalysisRepository(db *gorm.DB) contract.AnalysisRepository {
	return &AnalysisRepositoryImpl{
		db:     db,
		mapper: mapper.NewAnalysisMapper(),
	}
}

func (r *AnalysisRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AnalysisRepositoryImpl) Upsert(ctx context.Context, result *entity.AnalysisResult) error {
	m := r.mapper.ToModel(result)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "document_id"}},
			UpdateAll: true,
		}).
		Create(m).Error
	if err != nil {
		return err
	}
	*result = *r.mapper.ToEntity(m)
	return nil
}

func (r *AnalysisRepositoryImpl) FindByDocumentId(ctx context.Context, documentId string) (*entity.AnalysisResult, error) {
	var m model.AnalysisResult
	query := r.applySpecifications(r.db.WithContext(ctx), specification.ByDocumentID{DocumentID: documentId})
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AnalysisRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AnalysisResult, error) {
	var models []*model.AnalysisResult
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AnalysisRepositoryImpl) Delete(ctx context.Context, documentId string) (bool, error) {
	res := r.db.WithContext(ctx).Where("document_id = ?", documentId).Delete(&model.AnalysisResult{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *AnalysisRepositoryImpl) Reset(ctx context.Context) error {
	migrator := r.db.WithContext(ctx).Migrator()
	if migrator.HasTable(&model.AnalysisResult{}) {
		if err := migrator.DropTable(&model.AnalysisResult{}); err != nil {
			return err
		}
	}
	return migrator.AutoMigrate(&model.AnalysisResult{})
}
