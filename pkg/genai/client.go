package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// File states reported by the backend while an uploaded asset is processed.
const (
	FileStateProcessing = "PROCESSING"
	FileStateActive     = "ACTIVE"
	FileStateFailed     = "FAILED"
)

// Part is one piece of a generation prompt: either inline text or a
// reference to a previously uploaded file.
type Part struct {
	Text     string
	FileURI  string
	MimeType string
}

func TextPart(text string) Part {
	return Part{Text: text}
}

func FilePart(f *File) Part {
	return Part{FileURI: f.URI, MimeType: f.MimeType}
}

// File is a remote asset handle returned by the Files API.
type File struct {
	Name     string `json:"name"`
	URI      string `json:"uri"`
	MimeType string `json:"mimeType"`
	State    string `json:"state"`
}

// Client is the contract against the generative backend. Satisfied by
// RestClient in production and by fakes in tests.
type Client interface {
	GenerateContent(ctx context.Context, parts []Part) (string, error)
	UploadFile(ctx context.Context, path string) (*File, error)
	GetFile(ctx context.Context, name string) (*File, error)
	DeleteFile(ctx context.Context, name string) error
}

type RestClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewRestClient(apiKey, model string, generateTimeout time.Duration) *RestClient {
	return &RestClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: generateTimeout,
		},
	}
}

type generatePart struct {
	Text     string    `json:"text,omitempty"`
	FileData *fileData `json:"file_data,omitempty"`
}

type fileData struct {
	MimeType string `json:"mime_type"`
	FileURI  string `json:"file_uri"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
	Role  string         `json:"role,omitempty"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content *generateContent `json:"content"`
	} `json:"candidates"`
}

func (c *RestClient) GenerateContent(ctx context.Context, parts []Part) (string, error) {
	reqParts := make([]generatePart, 0, len(parts))
	for _, p := range parts {
		if p.FileURI != "" {
			reqParts = append(reqParts, generatePart{
				FileData: &fileData{MimeType: p.MimeType, FileURI: p.FileURI},
			})
			continue
		}
		reqParts = append(reqParts, generatePart{Text: p.Text})
	}

	payload := generateRequest{
		Contents: []generateContent{{Parts: reqParts, Role: "user"}},
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", err
	}
	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var genRes generateResponse
	if err := json.Unmarshal(resBody, &genRes); err != nil {
		return "", err
	}
	if len(genRes.Candidates) == 0 || genRes.Candidates[0].Content == nil || len(genRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model %s", c.model)
	}

	return genRes.Candidates[0].Content.Parts[0].Text, nil
}

type uploadMetadata struct {
	File struct {
		DisplayName string `json:"display_name"`
	} `json:"file"`
}

type fileEnvelope struct {
	File File `json:"file"`
}

// UploadFile pushes a local file through the resumable upload protocol and
// returns the remote handle. The returned file may still be PROCESSING.
func (c *RestClient) UploadFile(ctx context.Context, path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, err
	}

	var meta uploadMetadata
	meta.File.DisplayName = filepath.Base(path)
	metaJson, err := json.Marshal(meta)
	if err != nil {
		return nil, err
	}

	// 1. Start a resumable upload session.
	startURL := fmt.Sprintf("%s/upload/v1beta/files", c.baseURL)
	startReq, err := http.NewRequestWithContext(ctx, http.MethodPost, startURL, bytes.NewBuffer(metaJson))
	if err != nil {
		return nil, err
	}
	startReq.Header.Set("x-goog-api-key", c.apiKey)
	startReq.Header.Set("Content-Type", "application/json")
	startReq.Header.Set("X-Goog-Upload-Protocol", "resumable")
	startReq.Header.Set("X-Goog-Upload-Command", "start")
	startReq.Header.Set("X-Goog-Upload-Header-Content-Length", fmt.Sprintf("%d", info.Size()))
	startReq.Header.Set("X-Goog-Upload-Header-Content-Type", mtype.String())

	startRes, err := c.httpClient.Do(startReq)
	if err != nil {
		return nil, err
	}
	io.Copy(io.Discard, startRes.Body)
	startRes.Body.Close()

	if startRes.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upload start failed with status %d", startRes.StatusCode)
	}
	uploadURL := startRes.Header.Get("X-Goog-Upload-URL")
	if uploadURL == "" {
		return nil, fmt.Errorf("upload start returned no upload url")
	}

	// 2. Send the bytes and finalize in one shot.
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	upReq, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, f)
	if err != nil {
		return nil, err
	}
	upReq.ContentLength = info.Size()
	upReq.Header.Set("X-Goog-Upload-Command", "upload, finalize")
	upReq.Header.Set("X-Goog-Upload-Offset", "0")

	upRes, err := c.httpClient.Do(upReq)
	if err != nil {
		return nil, err
	}
	defer upRes.Body.Close()

	upBody, err := io.ReadAll(upRes.Body)
	if err != nil {
		return nil, err
	}
	if upRes.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"upload failed with status %d. with response body %s",
			upRes.StatusCode,
			string(upBody),
		)
	}

	var envelope fileEnvelope
	if err := json.Unmarshal(upBody, &envelope); err != nil {
		return nil, err
	}
	if envelope.File.MimeType == "" {
		envelope.File.MimeType = mtype.String()
	}
	return &envelope.File, nil
}

func (c *RestClient) GetFile(ctx context.Context, name string) (*File, error) {
	url := fmt.Sprintf("%s/v1beta/%s", c.baseURL, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-goog-api-key", c.apiKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"get file failed with status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var file File
	if err := json.Unmarshal(resBody, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

func (c *RestClient) DeleteFile(ctx context.Context, name string) error {
	url := fmt.Sprintf("%s/v1beta/%s", c.baseURL, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("x-goog-api-key", c.apiKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	io.Copy(io.Discard, res.Body)
	res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("delete file failed with status %d", res.StatusCode)
	}
	return nil
}
