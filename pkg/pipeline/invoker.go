package pipeline

import (
	"context"
	"fmt"
	"time"

	"ad-compliance-be/internal/pkg/logger"
	"ad-compliance-be/internal/pkg/serverutils"
	"ad-compliance-be/pkg/genai"
)

const scoringDirective = "\n\nAlso, provide a score out of 100 based on the guidelines."

// Invoker produces raw model output for one target of its modality.
type Invoker interface {
	Invoke(ctx context.Context, target, instruction string) (string, error)
	// Guidelines returns the fixed checklist text for the modality.
	Guidelines() string
}

// MediaInvoker uploads a local video or image file to the backend, waits for
// it to become readable, runs a single generation call over it, and always
// releases the remote asset afterwards.
type MediaInvoker struct {
	client          genai.Client
	label           string // "video ad" or "Instagram post"
	guidelines      string
	pollInterval    time.Duration
	maxPollAttempts int
	logger          logger.ILogger
}

func NewMediaInvoker(client genai.Client, label, guidelines string, pollInterval time.Duration, maxPollAttempts int, log logger.ILogger) *MediaInvoker {
	return &MediaInvoker{
		client:          client,
		label:           label,
		guidelines:      guidelines,
		pollInterval:    pollInterval,
		maxPollAttempts: maxPollAttempts,
		logger:          log,
	}
}

func (i *MediaInvoker) Guidelines() string {
	return i.guidelines
}

func (i *MediaInvoker) Invoke(ctx context.Context, target, instruction string) (string, error) {
	prompt := fmt.Sprintf(
		"%s\n\nYou must use the following guidelines for the %s: %s%s",
		instruction, i.label, i.guidelines, scoringDirective,
	)

	file, err := i.client.UploadFile(ctx, target)
	if err != nil {
		return "", serverutils.NewInvocationError("uploading asset failed", err)
	}
	// Remote cleanup happens on every exit path, including generation failure.
	defer func() {
		if delErr := i.client.DeleteFile(context.WithoutCancel(ctx), file.Name); delErr != nil {
			i.logger.Warn("invoker", "failed to delete remote file", map[string]interface{}{
				"file":  file.Name,
				"error": delErr.Error(),
			})
		}
	}()

	file, err = i.waitUntilActive(ctx, file)
	if err != nil {
		return "", err
	}

	text, err := i.client.GenerateContent(ctx, []genai.Part{
		genai.TextPart(prompt),
		genai.FilePart(file),
	})
	if err != nil {
		return "", serverutils.NewInvocationError("generation call failed", err)
	}
	return text, nil
}

func (i *MediaInvoker) waitUntilActive(ctx context.Context, file *genai.File) (*genai.File, error) {
	for attempt := 0; ; attempt++ {
		switch file.State {
		case genai.FileStateActive:
			return file, nil
		case genai.FileStateFailed:
			return nil, serverutils.NewInvocationError(
				fmt.Sprintf("backend failed to process uploaded file %s", file.Name), nil)
		}

		if attempt >= i.maxPollAttempts {
			return nil, serverutils.NewInvocationError(
				fmt.Sprintf("uploaded file %s not ready after %d attempts", file.Name, i.maxPollAttempts), nil)
		}

		select {
		case <-ctx.Done():
			return nil, serverutils.NewInvocationError("waiting for uploaded file interrupted", ctx.Err())
		case <-time.After(i.pollInterval):
		}

		refreshed, err := i.client.GetFile(ctx, file.Name)
		if err != nil {
			return nil, serverutils.NewInvocationError("polling uploaded file failed", err)
		}
		file = refreshed
	}
}
