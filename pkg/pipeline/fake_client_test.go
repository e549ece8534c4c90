package pipeline

import (
	"context"
	"errors"

	"ad-compliance-be/pkg/genai"
)

// fakeClient scripts the backend for invoker and normalizer tests.
type fakeClient struct {
	generateResponses []string
	generateErr       error
	generateCalls     [][]genai.Part

	uploadFile *genai.File
	uploadErr  error

	// successive states returned by GetFile
	fileStates []string
	getCalls   int

	deletedNames []string
	deleteErr    error
}

func (f *fakeClient) GenerateContent(ctx context.Context, parts []genai.Part) (string, error) {
	f.generateCalls = append(f.generateCalls, parts)
	if f.generateErr != nil {
		return "", f.generateErr
	}
	if len(f.generateResponses) == 0 {
		return "", errors.New("fakeClient: no scripted response")
	}
	res := f.generateResponses[0]
	f.generateResponses = f.generateResponses[1:]
	return res, nil
}

func (f *fakeClient) UploadFile(ctx context.Context, path string) (*genai.File, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return f.uploadFile, nil
}

func (f *fakeClient) GetFile(ctx context.Context, name string) (*genai.File, error) {
	state := genai.FileStateProcessing
	if f.getCalls < len(f.fileStates) {
		state = f.fileStates[f.getCalls]
	}
	f.getCalls++
	return &genai.File{Name: name, URI: "files/uri", MimeType: "video/mp4", State: state}, nil
}

func (f *fakeClient) DeleteFile(ctx context.Context, name string) error {
	f.deletedNames = append(f.deletedNames, name)
	return f.deleteErr
}
