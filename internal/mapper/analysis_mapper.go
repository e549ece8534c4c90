package mapper

import (
	"encoding/json"

	"ad-compliance-be/internal/entity"
	"ad-compliance-be/internal/model"

	"github.com/samber/lo"
	"gorm.io/datatypes"
)

type AnalysisMapper struct{}

func NewAnalysisMapper() *AnalysisMapper {
	return &AnalysisMapper{}
}

func (m *AnalysisMapper) ToModel(e *entity.AnalysisResult) *model.AnalysisResult {
	return &model.AnalysisResult{
		DocumentId:   e.DocumentId,
		DocumentName: e.DocumentName,
		UploadTime:   e.UploadTime,
		Status:       e.Status,
		Score:        e.Score,
		FileType:     e.FileType,
		FileURL:      e.FileURL,
		Suggestions:  toJSON(e.Suggestions),
		Conflicts:    toJSON(e.Conflicts),
		Guidelines:   toJSON(e.Guidelines),
		Summary:      e.Summary,
	}
}

func (m *AnalysisMapper) ToEntity(r *model.AnalysisResult) *entity.AnalysisResult {
	return &entity.AnalysisResult{
		DocumentId:   r.DocumentId,
		DocumentName: r.DocumentName,
		UploadTime:   r.UploadTime,
		Status:       r.Status,
		Score:        r.Score,
		FileType:     r.FileType,
		FileURL:      r.FileURL,
		Suggestions:  fromJSON(r.Suggestions),
		Conflicts:    fromJSON(r.Conflicts),
		Guidelines:   fromJSON(r.Guidelines),
		Summary:      r.Summary,
	}
}

func (m *AnalysisMapper) ToEntities(models []*model.AnalysisResult) []*entity.AnalysisResult {
	return lo.Map(models, func(r *model.AnalysisResult, _ int) *entity.AnalysisResult {
		return m.ToEntity(r)
	})
}

func toJSON(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}

func fromJSON(data datatypes.JSON) []string {
	items := make([]string, 0)
	if len(data) == 0 {
		return items
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return make([]string, 0)
	}
	return items
}
