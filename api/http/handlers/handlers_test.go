package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resume-editor/api/http/presenter"
	"github.com/artem13815/resume-editor/pkg/resume"
)

type stubEnhancer struct{ err error }

func (s stubEnhancer) Enhance(_ context.Context, section, content string) (string, error) {
	return section + ":" + content, s.err
}

type stubResumes struct {
	listRes resume.ListResult
	err     error
	gotID   string
}

func (s *stubResumes) Save(context.Context, resume.Resume) (string, error) { return "", s.err }

func (s *stubResumes) Get(_ context.Context, id string) (resume.Resume, error) {
	s.gotID = id
	return resume.Resume{}, s.err
}

func (s *stubResumes) List(context.Context) (resume.ListResult, error) { return s.listRes, s.err }

func (s *stubResumes) Import(context.Context, string, []byte) (resume.Resume, error) {
	return resume.Resume{}, s.err
}

type stubReadiness struct{ err error }

func (s stubReadiness) Ready(context.Context) error { return s.err }

func newApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: presenter.ErrorHandler})
}

func quietLog() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func call(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestEnhanceHandler_ServiceError(t *testing.T) {
	app := newApp()
	app.Post("/ai-enhance", NewEnhanceHandler(stubEnhancer{err: errors.New("boom")}).Enhance)

	code, body := call(t, app, fiber.MethodPost, "/ai-enhance", `{"section":"summary","content":"x"}`)

	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.Equal(t, "Failed to enhance section: boom", body["detail"])
}

func TestEnhanceHandler_PassesFieldsThrough(t *testing.T) {
	app := newApp()
	app.Post("/ai-enhance", NewEnhanceHandler(stubEnhancer{}).Enhance)

	code, body := call(t, app, fiber.MethodPost, "/ai-enhance", `{"section":"skills","content":""}`)

	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "skills:", body["enhanced_content"])
}

func TestResumesHandler_SaveStorageError(t *testing.T) {
	app := newApp()
	app.Post("/save-resume", NewResumesHandler(&stubResumes{err: errors.New("disk full")}, quietLog(), 0).Save)

	code, body := call(t, app, fiber.MethodPost, "/save-resume", `{"personalInfo":{"name":"A"}}`)

	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.Equal(t, "Failed to save resume: disk full", body["detail"])
}

func TestResumesHandler_SaveValidationError(t *testing.T) {
	app := newApp()
	svc := &stubResumes{err: &resume.ValidationError{Fields: []string{"skills is required"}}}
	app.Post("/save-resume", NewResumesHandler(svc, quietLog(), 0).Save)

	code, body := call(t, app, fiber.MethodPost, "/save-resume", `{}`)

	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	assert.Contains(t, body["detail"], "skills is required")
}

func TestResumesHandler_GetErrors(t *testing.T) {
	svc := &stubResumes{err: resume.ErrNotFound}
	app := newApp()
	app.Get("/resume/:id", NewResumesHandler(svc, quietLog(), 0).Get)

	code, body := call(t, app, fiber.MethodGet, "/resume/abc", "")
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, "Resume not found", body["detail"])
	assert.Equal(t, "abc", svc.gotID)

	svc.err = errors.New("permission denied")
	code, body = call(t, app, fiber.MethodGet, "/resume/abc", "")
	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.Equal(t, "Failed to load resume: permission denied", body["detail"])
}

func TestResumesHandler_ListError(t *testing.T) {
	app := newApp()
	app.Get("/resumes", NewResumesHandler(&stubResumes{err: errors.New("io")}, quietLog(), 0).List)

	code, body := call(t, app, fiber.MethodGet, "/resumes", "")

	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.Equal(t, "Failed to list resumes: io", body["detail"])
}

func TestResumesHandler_ListEmptyIsArray(t *testing.T) {
	app := newApp()
	svc := &stubResumes{listRes: resume.ListResult{Items: []resume.Summary{}}}
	app.Get("/resumes", NewResumesHandler(svc, quietLog(), 0).List)

	code, body := call(t, app, fiber.MethodGet, "/resumes", "")

	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, []any{}, body["resumes"])
}

func TestResumesHandler_UploadMissingFile(t *testing.T) {
	app := newApp()
	app.Post("/upload-resume", NewResumesHandler(&stubResumes{}, quietLog(), 0).Upload)

	code, body := call(t, app, fiber.MethodPost, "/upload-resume", `{}`)

	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "file is required (pdf or docx)", body["detail"])
}

func TestHealthHandler_NotReady(t *testing.T) {
	app := newApp()
	h := NewHealthHandler(stubReadiness{err: errors.New("storage: read-only file system")})
	app.Get("/ready", h.Ready)

	code, body := call(t, app, fiber.MethodGet, "/ready", "")

	assert.Equal(t, fiber.StatusServiceUnavailable, code)
	assert.Equal(t, "not_ready", body["status"])
	assert.Equal(t, "storage: read-only file system", body["details"])
}

func TestHealthHandler_Probes(t *testing.T) {
	app := newApp()
	h := NewHealthHandler(stubReadiness{})
	app.Get("/health", h.Health)
	app.Get("/ready", h.Ready)

	code, body := call(t, app, fiber.MethodGet, "/health", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, map[string]any{"status": "ok"}, body)

	code, body = call(t, app, fiber.MethodGet, "/ready", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, map[string]any{"status": "ready"}, body)
}

func TestUnknownRouteUsesErrorShape(t *testing.T) {
	app := newApp()

	code, body := call(t, app, fiber.MethodGet, "/nope", "")

	assert.Equal(t, fiber.StatusNotFound, code)
	assert.NotEmpty(t, body["detail"])
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4}

	assert.Equal(t, []int{1, 2, 3, 4}, page(items, 0, 0))
	assert.Equal(t, []int{2, 3}, page(items, 2, 1))
	assert.Equal(t, []int{4}, page(items, 10, 3))
	assert.Empty(t, page(items, 1, 4))
	assert.NotNil(t, page(items, 1, 9))
}

func TestParseLimitOffset(t *testing.T) {
	app := newApp()
	app.Get("/", func(c *fiber.Ctx) error {
		l, o := parseLimitOffset(c)
		return c.JSON(fiber.Map{"limit": l, "offset": o})
	})

	cases := map[string][2]float64{
		"/":                      {0, 0},
		"/?limit=5&offset=2":     {5, 2},
		"/?limit=-1&offset=-3":   {0, 0},
		"/?limit=abc&offset=xyz": {0, 0},
	}
	for path, want := range cases {
		_, body := call(t, app, fiber.MethodGet, path, "")
		assert.Equal(t, want[0], body["limit"], path)
		assert.Equal(t, want[1], body["offset"], path)
	}
}
