package dto

import "time"

// AnalyzeRequest carries the multipart /analyze fields. FilePath is resolved
// by the controller after saving an uploaded file; requests never set it
// directly.
type AnalyzeRequest struct {
	DocumentName string
	SessionId    string
	Context      map[string]interface{}
	URL          string
	DocumentType string
	Guidelines   string
	FilePath     string
}

// AgentRequest is the generic agent protocol request for POST /run.
type AgentRequest struct {
	Message   string                 `json:"message" validate:"required"`
	Context   map[string]interface{} `json:"context"`
	SessionId string                 `json:"session_id"`
}

// AgentResponse is the uniform envelope returned by both success and failure
// paths of the dispatcher.
type AgentResponse struct {
	Message   string                 `json:"message"`
	Status    string                 `json:"status"`
	Data      map[string]interface{} `json:"data"`
	SessionId string                 `json:"session_id,omitempty"`
}

type AnalysisResultResponse struct {
	DocumentId   string    `json:"document_id"`
	DocumentName string    `json:"document_name"`
	UploadTime   time.Time `json:"upload_time"`
	Status       string    `json:"status"`
	Score        float64   `json:"score"`
	FileType     string    `json:"file_type"`
	FileURL      string    `json:"file_url"`
	Suggestions  []string  `json:"suggestions"`
	Conflicts    []string  `json:"conflicts"`
	Guidelines   []string  `json:"guidelines"`
	Summary      string    `json:"summary"`
}
