package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"site_grader/internal/domain/models"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockGradeService struct {
	mock.Mock
}

func (m *MockGradeService) Grade(ctx context.Context, url string) (*models.GradeReport, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GradeReport), args.Error(1)
}

func postGrade(t *testing.T, handler *GradeHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/grade", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestGradeHandlerSuccess(t *testing.T) {
	svc := new(MockGradeService)
	svc.On("Grade", mock.Anything, "example.com").
		Return(&models.GradeReport{
			Success: true,
			URL:     "https://example.com",
			Domain:  "example.com",
		}, nil)

	handler := NewGradeHandler(svc, log.New())
	rec := postGrade(t, handler, `{"url": "example.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var report models.GradeReport
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.True(t, report.Success)
	assert.Equal(t, "https://example.com", report.URL)
	svc.AssertExpectations(t)
}

func TestGradeHandlerMalformedBody(t *testing.T) {
	handler := NewGradeHandler(new(MockGradeService), log.New())
	rec := postGrade(t, handler, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGradeHandlerEmptyURL(t *testing.T) {
	handler := NewGradeHandler(new(MockGradeService), log.New())
	rec := postGrade(t, handler, `{"url": "   "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGradeHandlerFetchError(t *testing.T) {
	// An unreachable site is a valid grading outcome, not a server
	// error: 200 with success=false.
	svc := new(MockGradeService)
	svc.On("Grade", mock.Anything, "unreachable.invalid").
		Return(nil, &models.FetchError{
			URL: "https://unreachable.invalid",
			Err: assert.AnError,
		})

	handler := NewGradeHandler(svc, log.New())
	rec := postGrade(t, handler, `{"url": "unreachable.invalid"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response GradeErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.Equal(t, "https://unreachable.invalid", response.URL)
	assert.NotEmpty(t, response.Error)
}

func TestGradeHandlerServiceError(t *testing.T) {
	svc := new(MockGradeService)
	svc.On("Grade", mock.Anything, "example.com").
		Return(nil, assert.AnError)

	handler := NewGradeHandler(svc, log.New())
	rec := postGrade(t, handler, `{"url": "example.com"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
