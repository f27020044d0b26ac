package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"starter-pack-quiz/internal/domain"
	"starter-pack-quiz/internal/dto"
	"starter-pack-quiz/internal/handler"
	"starter-pack-quiz/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

type MockSubmissionService struct {
	SubmitFunc func(ctx context.Context, req *dto.SubmitRequest, ip string) (*dto.SubmitResponse, error)
	StatsFunc  func(ctx context.Context) (int, error)
	ExportFunc func(ctx context.Context) (*bytes.Buffer, int, error)
}

func (m *MockSubmissionService) Submit(ctx context.Context, req *dto.SubmitRequest, ip string) (*dto.SubmitResponse, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, req, ip)
	}
	panic("MockSubmissionService.SubmitFunc not implemented")
}

func (m *MockSubmissionService) Stats(ctx context.Context) (int, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	panic("MockSubmissionService.StatsFunc not implemented")
}

func (m *MockSubmissionService) Export(ctx context.Context) (*bytes.Buffer, int, error) {
	if m.ExportFunc != nil {
		return m.ExportFunc(ctx)
	}
	panic("MockSubmissionService.ExportFunc not implemented")
}

func setupApp(svc *MockSubmissionService, apiKey string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := handler.NewSubmissionHandler(svc, "1.0.0-test")

	api := app.Group("/api")
	api.Post("/submit", h.Submit)
	api.Get("/health", h.Health)
	api.Get("/stats", middleware.RequireAPIKey(apiKey), h.Stats)
	api.Get("/export", middleware.RequireAPIKey(apiKey), h.Export)
	return app
}

func submitBody(t *testing.T) *bytes.Reader {
	t.Helper()
	answers := make([]int, domain.TotalQuestions)
	items := make([]string, domain.TotalQuestions)
	for i := range answers {
		answers[i] = i % 4
		items[i] = fmt.Sprintf("item-%d", i)
	}
	body, err := json.Marshal(map[string]any{
		"username": "testuser",
		"answers":  answers,
		"items":    items,
	})
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func TestSubmitEndpoint(t *testing.T) {
	t.Run("returns 200 with success on acceptance", func(t *testing.T) {
		svc := &MockSubmissionService{
			SubmitFunc: func(ctx context.Context, req *dto.SubmitRequest, ip string) (*dto.SubmitResponse, error) {
				assert.Equal(t, "testuser", req.Username)
				assert.Len(t, req.Answers, domain.TotalQuestions)
				return &dto.SubmitResponse{Success: true, Message: "saved"}, nil
			},
		}
		app := setupApp(svc, "")

		req := httptest.NewRequest(http.MethodPost, "/api/submit", submitBody(t))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result dto.SubmitResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.True(t, result.Success)
	})

	t.Run("maps validation errors to 400 with the reason", func(t *testing.T) {
		svc := &MockSubmissionService{
			SubmitFunc: func(ctx context.Context, req *dto.SubmitRequest, ip string) (*dto.SubmitResponse, error) {
				return nil, domain.NewValidationError("Invalid answer for question 5")
			},
		}
		app := setupApp(svc, "")

		req := httptest.NewRequest(http.MethodPost, "/api/submit", submitBody(t))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var result middleware.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.False(t, result.Success)
		assert.Contains(t, result.Message, "question 5")
	})

	t.Run("maps persistence errors to 500", func(t *testing.T) {
		svc := &MockSubmissionService{
			SubmitFunc: func(ctx context.Context, req *dto.SubmitRequest, ip string) (*dto.SubmitResponse, error) {
				return nil, domain.NewPersistenceError("Failed to save response", nil)
			},
		}
		app := setupApp(svc, "")

		req := httptest.NewRequest(http.MethodPost, "/api/submit", submitBody(t))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("rejects an unparsable body", func(t *testing.T) {
		app := setupApp(&MockSubmissionService{}, "")

		req := httptest.NewRequest(http.MethodPost, "/api/submit", bytes.NewReader([]byte("{nope")))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHealthEndpoint(t *testing.T) {
	app := setupApp(&MockSubmissionService{}, "")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result dto.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Success)
	assert.Equal(t, "healthy", result.Status)
	assert.Equal(t, "1.0.0-test", result.Version)
	assert.NotEmpty(t, result.Uptime)
}

func TestStatsEndpoint(t *testing.T) {
	svc := &MockSubmissionService{
		StatsFunc: func(ctx context.Context) (int, error) { return 7, nil },
	}

	t.Run("no key configured bypasses the gate", func(t *testing.T) {
		app := setupApp(svc, "")
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/stats", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result dto.StatsResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.True(t, result.Success)
		assert.Equal(t, 7, result.TotalResponses)
	})

	t.Run("wrong key is rejected", func(t *testing.T) {
		app := setupApp(svc, "secret")
		req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
		req.Header.Set(middleware.APIKeyHeader, "wrong")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("missing key is rejected", func(t *testing.T) {
		app := setupApp(svc, "secret")
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/stats", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("correct key passes", func(t *testing.T) {
		app := setupApp(svc, "secret")
		req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
		req.Header.Set(middleware.APIKeyHeader, "secret")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestExportEndpoint(t *testing.T) {
	t.Run("empty corpus returns success false", func(t *testing.T) {
		svc := &MockSubmissionService{
			ExportFunc: func(ctx context.Context) (*bytes.Buffer, int, error) { return nil, 0, nil },
		}
		app := setupApp(svc, "")

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/export", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.False(t, result.Success)
	})

	t.Run("streams the workbook as an attachment", func(t *testing.T) {
		svc := &MockSubmissionService{
			ExportFunc: func(ctx context.Context) (*bytes.Buffer, int, error) {
				return bytes.NewBufferString("xlsx-bytes"), 3, nil
			},
		}
		app := setupApp(svc, "")

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/export", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "spreadsheetml")
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "responses_export.xlsx")

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "xlsx-bytes", string(body))
	})
}
