package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/ats"
	"resumeforge/internal/config"
	"resumeforge/internal/preview"
	"resumeforge/internal/sections"
	"resumeforge/internal/store"
	"resumeforge/pkg/models"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ATS.MaxUploadBytes = 1024 * 1024
	return cfg
}

func newContext(e *echo.Echo, method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateResumeHandler(t *testing.T) {
	e := echo.New()
	s := store.New(store.NewMemoryPersister())

	c, rec := newContext(e, http.MethodPost, "/api/v1/resumes", "")
	require.NoError(t, CreateResumeHandler(s)(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp models.ResumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Resume)
	assert.Equal(t, resp.Resume.ID, s.SelectedResumeID())
}

func TestListResumesHandler(t *testing.T) {
	e := echo.New()
	s := store.New(store.NewMemoryPersister())
	s.CreateResume(context.Background())
	s.CreateResume(context.Background())

	c, rec := newContext(e, http.MethodGet, "/api/v1/resumes", "")
	require.NoError(t, ListResumesHandler(s)(c))

	var resp models.ResumeListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, s.SelectedResumeID(), resp.SelectedResumeID)
}

func TestGetResumeHandler_NotFound(t *testing.T) {
	e := echo.New()
	s := store.New(store.NewMemoryPersister())

	c, rec := newContext(e, http.MethodGet, "/api/v1/resumes/ghost", "")
	c.SetParamNames("id")
	c.SetParamValues("ghost")
	require.NoError(t, GetResumeHandler(s)(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "resume_not_found", resp.Error)
	assert.NotEmpty(t, resp.RequestID)
}

func TestSetSelectionHandler_AcceptsAnyID(t *testing.T) {
	e := echo.New()
	s := store.New(store.NewMemoryPersister())

	c, rec := newContext(e, http.MethodPut, "/api/v1/resumes/selected", `{"resume_id":"ghost"}`)
	require.NoError(t, SetSelectionHandler(s)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ghost", s.SelectedResumeID())
}

func TestUpdateContactHandler_ValidationFailure(t *testing.T) {
	e := echo.New()
	s := store.New(store.NewMemoryPersister())
	s.CreateResume(context.Background())
	svc := sections.NewService(s)

	body := `{"full_name":"Jane Doe","email":"not-an-email","phone":"5551234567","location":"Berlin"}`
	c, rec := newContext(e, http.MethodPut, "/api/v1/resume/contact", body)
	require.NoError(t, UpdateContactHandler(svc, s)(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_failed", resp.Error)
	require.NotEmpty(t, resp.Fields)
	assert.Equal(t, "email", resp.Fields[0].Field)
	assert.Equal(t, "Invalid email address", resp.Fields[0].Message)

	// The store was not touched
	selected, _ := s.SelectedResume()
	assert.Empty(t, selected.ContactInfo.Email)
}

func TestUpdateContactHandler_Commits(t *testing.T) {
	e := echo.New()
	s := store.New(store.NewMemoryPersister())
	s.CreateResume(context.Background())
	svc := sections.NewService(s)

	body := `{"full_name":"Jane Doe","email":"jane@example.com","phone":"5551234567","location":"Berlin"}`
	c, rec := newContext(e, http.MethodPut, "/api/v1/resume/contact", body)
	require.NoError(t, UpdateContactHandler(svc, s)(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.SectionUpdateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Applied)
	assert.Equal(t, "Contact information updated successfully", resp.Message)
	require.NotNil(t, resp.Resume)
	assert.Equal(t, "Jane Doe", resp.Resume.ContactInfo.FullName)
}

func TestUpdateContactHandler_NoSelection(t *testing.T) {
	e := echo.New()
	s := store.New(store.NewMemoryPersister())
	svc := sections.NewService(s)

	body := `{"full_name":"Jane Doe","email":"jane@example.com","phone":"5551234567","location":"Berlin"}`
	c, rec := newContext(e, http.MethodPut, "/api/v1/resume/contact", body)
	require.NoError(t, UpdateContactHandler(svc, s)(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.SectionUpdateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Applied)
	assert.Nil(t, resp.Resume)
}

func TestPreviewResumeHandler_EmptyState(t *testing.T) {
	e := echo.New()
	s := store.New(store.NewMemoryPersister())

	c, rec := newContext(e, http.MethodGet, "/api/v1/resume/preview", "")
	require.NoError(t, PreviewResumeHandler(s)(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp preview.Preview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Empty)
	assert.Equal(t, preview.EmptyStateMessage, resp.Message)
}

func TestAnalyzeResumeHandler_RejectsUnsupportedType(t *testing.T) {
	e := echo.New()
	cfg := testConfig()
	scorer := ats.NewMockScorer(cfg)
	checker := ats.NewChecker(cfg, scorer)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "resume.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("plain text resume"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ats/analyze", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, AnalyzeResumeHandler(cfg, checker)(c))
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_file_type", resp.Error)
}

func TestAnalyzeResumeHandler_MissingFile(t *testing.T) {
	e := echo.New()
	cfg := testConfig()
	checker := ats.NewChecker(cfg, ats.NewMockScorer(cfg))

	c, rec := newContext(e, http.MethodPost, "/api/v1/ats/analyze", "")
	require.NoError(t, AnalyzeResumeHandler(cfg, checker)(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateCoverLetterHandler_ValidationFailure(t *testing.T) {
	e := echo.New()
	s := store.New(store.NewMemoryPersister())

	body := `{"recipient_name":"John Smith","recipient_title":"Hiring Manager","company_name":"Acme","company_address":"abc","job_title":"Engineer","resume_id":"r1"}`
	c, rec := newContext(e, http.MethodPost, "/api/v1/cover-letter/generate", body)
	require.NoError(t, GenerateCoverLetterHandler(testConfig(), s, nil)(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Fields)
	assert.Equal(t, "company_address", resp.Fields[0].Field)
}

func TestGenerateCoverLetterHandler_UnknownResume(t *testing.T) {
	e := echo.New()
	s := store.New(store.NewMemoryPersister())

	body := `{"recipient_name":"John Smith","recipient_title":"Hiring Manager","company_name":"Acme","company_address":"1 Main Street","job_title":"Engineer","resume_id":"ghost"}`
	c, rec := newContext(e, http.MethodPost, "/api/v1/cover-letter/generate", body)
	require.NoError(t, GenerateCoverLetterHandler(testConfig(), s, nil)(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
