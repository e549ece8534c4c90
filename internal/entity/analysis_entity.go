package entity

import "time"

// AnalysisResult is one persisted compliance verdict, keyed by DocumentId.
type AnalysisResult struct {
	DocumentId   string
	DocumentName string
	UploadTime   time.Time
	Status       string
	Score        float64
	FileType     string
	FileURL      string
	Suggestions  []string
	Conflicts    []string
	Guidelines   []string
	Summary      string
}
