package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portal/internal/delivery/middleware"
	"portal/internal/delivery/validator"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAgentUsecase struct {
	output *usecase.ProcessOutput
	err    error
}

func (s *stubAgentUsecase) Process(ctx context.Context, input *usecase.ProcessInput) (*usecase.ProcessOutput, error) {
	return s.output, s.err
}

func newAgentTestServer(uc usecase.AgentUsecase) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewProcessHandler(uc, logger)
	e.GET("/", Root)
	e.POST("/process", h.Process)

	return e
}

func TestProcessHandler_Process_Success(t *testing.T) {
	e := newAgentTestServer(&stubAgentUsecase{
		output: &usecase.ProcessOutput{
			Status:  "success",
			Message: `Processed: "hello world" (simulated)`,
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/process", strings.NewReader(`{"inputText":"hello world"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, `Processed: "hello world" (simulated)`, body["message"])
}

func TestProcessHandler_Process_MissingInputText(t *testing.T) {
	e := newAgentTestServer(&stubAgentUsecase{})

	payloads := []string{
		`{}`,
		`{"inputText":""}`,
		`not-json`,
	}
	for _, payload := range payloads {
		req := httptest.NewRequest(http.MethodPost, "/process", strings.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "payload: %s", payload)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "inputText is required", body["message"])
	}
}

func TestProcessHandler_Process_PipelineError(t *testing.T) {
	e := newAgentTestServer(&stubAgentUsecase{err: assert.AnError})

	req := httptest.NewRequest(http.MethodPost, "/process", strings.NewReader(`{"inputText":"hello"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal Server Error", body["message"])
}

func TestProcessHandler_Root(t *testing.T) {
	e := newAgentTestServer(&stubAgentUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Agent service is running", rec.Body.String())
}
