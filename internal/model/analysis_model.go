package model

import (
	"time"

	"gorm.io/datatypes"
)

type AnalysisResult struct {
	DocumentId   string    `gorm:"primaryKey;column:document_id"`
	DocumentName string    `gorm:"column:document_name"`
	UploadTime   time.Time `gorm:"column:upload_time;index"`
	Status       string
	Score        float64
	FileType     string         `gorm:"column:file_type"`
	FileURL      string         `gorm:"column:file_url"`
	Suggestions  datatypes.JSON // JSON array as text
	Conflicts    datatypes.JSON // JSON array as text
	Guidelines   datatypes.JSON
	Summary      string
}

func (AnalysisResult) TableName() string {
	return "analysis_results"
}
