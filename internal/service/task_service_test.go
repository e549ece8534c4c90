package service

import (
	"context"
	"errors"
	"testing"

	"ad-compliance-be/internal/constant"
	"ad-compliance-be/internal/pkg/serverutils"
	"ad-compliance-be/internal/repository/memory"
	"ad-compliance-be/pkg/genai"
	"ad-compliance-be/pkg/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type fakeInvoker struct {
	raw   string
	err   error
	calls int
}

func (f *fakeInvoker) Invoke(ctx context.Context, target, instruction string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.raw, nil
}

func (f *fakeInvoker) Guidelines() string { return "fixed guidelines" }

type fakeGenai struct {
	response string
	err      error
	calls    int
}

func (f *fakeGenai) GenerateContent(ctx context.Context, parts []genai.Part) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeGenai) UploadFile(ctx context.Context, path string) (*genai.File, error) {
	return nil, errors.New("not used")
}

func (f *fakeGenai) GetFile(ctx context.Context, name string) (*genai.File, error) {
	return nil, errors.New("not used")
}

func (f *fakeGenai) DeleteFile(ctx context.Context, name string) error { return nil }

func newTestTaskService(invoker pipeline.Invoker, backend genai.Client) (ITaskService, *memory.SessionRepository) {
	sessions := memory.NewSessionRepository()
	invokers := map[pipeline.Modality]pipeline.Invoker{
		pipeline.ModalityVideo:   invoker,
		pipeline.ModalityImage:   invoker,
		pipeline.ModalityWebsite: invoker,
	}
	svc := NewTaskService(sessions, invokers, pipeline.NewNormalizer(backend), nopLogger{})
	return svc, sessions
}

const normalizedJSON = `{"summary":"s","suggestions":["a"],"conflicts":[],"score":88,"guidelines":["g"]}`

func TestProcessSuccess(t *testing.T) {
	invoker := &fakeInvoker{raw: "raw analysis"}
	backend := &fakeGenai{response: normalizedJSON}
	svc, sessions := newTestTaskService(invoker, backend)

	env := svc.Process(context.Background(), "Analyze this video ad in file path: ad.mp4",
		map[string]interface{}{"file_path": "ad.mp4"}, "")

	require.Equal(t, "success", env.Status)
	assert.NotEmpty(t, env.SessionId, "a session id must be generated when absent")
	assert.Equal(t, "video", env.Data["modality"])

	normalized, ok := env.Data["analysis"].(*pipeline.Normalized)
	require.True(t, ok)
	assert.Equal(t, 88.0, normalized.Score)

	session, found := sessions.Get(constant.AppName, constant.DefaultUserId, env.SessionId)
	require.True(t, found)
	require.Len(t, session.Turns, 2)
	assert.Equal(t, "user", session.Turns[0].Role)
	assert.Equal(t, "model", session.Turns[1].Role)
}

func TestProcessReusesSession(t *testing.T) {
	invoker := &fakeInvoker{raw: "raw"}
	backend := &fakeGenai{response: normalizedJSON}
	svc, sessions := newTestTaskService(invoker, backend)

	taskCtx := map[string]interface{}{"url": "example.com"}

	env1 := svc.Process(context.Background(), "first", taskCtx, "sess-1")
	require.Equal(t, "success", env1.Status)
	env2 := svc.Process(context.Background(), "second", taskCtx, "sess-1")
	require.Equal(t, "success", env2.Status)

	assert.Equal(t, "sess-1", env1.SessionId)
	assert.Equal(t, "sess-1", env2.SessionId)

	session, found := sessions.Get(constant.AppName, constant.DefaultUserId, "sess-1")
	require.True(t, found)
	assert.Len(t, session.Turns, 4, "turn log must grow across calls")
}

func TestProcessSessionsAreScopedByUser(t *testing.T) {
	invoker := &fakeInvoker{raw: "raw"}
	backend := &fakeGenai{response: normalizedJSON}
	svc, sessions := newTestTaskService(invoker, backend)

	svc.Process(context.Background(), "msg", map[string]interface{}{"url": "example.com", "user_id": "alice"}, "shared")
	svc.Process(context.Background(), "msg", map[string]interface{}{"url": "example.com", "user_id": "bob"}, "shared")

	aliceSession, found := sessions.Get(constant.AppName, "alice", "shared")
	require.True(t, found)
	bobSession, found := sessions.Get(constant.AppName, "bob", "shared")
	require.True(t, found)

	assert.Len(t, aliceSession.Turns, 2)
	assert.Len(t, bobSession.Turns, 2)
}

func TestProcessInvocationErrorBecomesEnvelope(t *testing.T) {
	invoker := &fakeInvoker{err: serverutils.NewInvocationError("generation call failed", errors.New("deadline exceeded"))}
	backend := &fakeGenai{response: normalizedJSON}
	svc, sessions := newTestTaskService(invoker, backend)

	env := svc.Process(context.Background(), "msg", map[string]interface{}{"file_path": "ad.mp4"}, "sess-err")

	require.Equal(t, "error", env.Status)
	assert.Contains(t, env.Message, "Error processing your request")
	assert.Contains(t, env.Message, "deadline exceeded")
	assert.Equal(t, serverutils.KindInvocation, env.Data["error_type"])
	assert.Equal(t, "sess-err", env.SessionId)

	// The user turn stays; no model turn is appended.
	session, found := sessions.Get(constant.AppName, constant.DefaultUserId, "sess-err")
	require.True(t, found)
	assert.Len(t, session.Turns, 1)

	assert.Zero(t, backend.calls, "normalizer must not run after an invocation failure")
}

func TestProcessValidationErrorBeforeAnyBackendCall(t *testing.T) {
	invoker := &fakeInvoker{raw: "raw"}
	backend := &fakeGenai{response: normalizedJSON}
	svc, _ := newTestTaskService(invoker, backend)

	tests := []struct {
		name    string
		taskCtx map[string]interface{}
	}{
		{"neither input", map[string]interface{}{}},
		{"both inputs", map[string]interface{}{"file_path": "ad.mp4", "url": "example.com"}},
		{"unsupported extension", map[string]interface{}{"file_path": "doc.pdf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoker.calls = 0
			backend.calls = 0

			env := svc.Process(context.Background(), "msg", tt.taskCtx, "")

			assert.Equal(t, "error", env.Status)
			assert.Equal(t, serverutils.KindValidation, env.Data["error_type"])
			assert.Zero(t, invoker.calls, "no invocation may happen on invalid input")
			assert.Zero(t, backend.calls)
		})
	}
}

func TestProcessNormalizationErrorBecomesEnvelope(t *testing.T) {
	invoker := &fakeInvoker{raw: "raw"}
	backend := &fakeGenai{response: "this is not the JSON you are looking for"}
	svc, _ := newTestTaskService(invoker, backend)

	env := svc.Process(context.Background(), "msg", map[string]interface{}{"url": "example.com"}, "")

	require.Equal(t, "error", env.Status)
	assert.Equal(t, serverutils.KindNormalization, env.Data["error_type"])
}
