package resumeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/Abraxas-365/talentdesk/pkg/fsx/fsxlocal"
	"github.com/Abraxas-365/talentdesk/pkg/httpx"
	"github.com/Abraxas-365/talentdesk/pkg/iam/auth"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/resume"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/resume/resumesrv"
	"github.com/Abraxas-365/talentdesk/pkg/store"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	repo := store.NewMemoryRepository[resume.Resume](resume.Entity)
	require.NoError(t, repo.Seed(context.Background(),
		resume.Resume{ID: 118816, Name: "Kishore R", Email: "kishore@example.com", Status: resume.StatusInterviewStage, Location: "Hyderabad", Experience: "6-8 years"},
		resume.Resume{ID: 118817, Name: "Dhivakaran P", Email: "dhivakarannmut@gmail.com", Status: resume.StatusOffered, Location: "Chennai", Experience: "4-6 years"},
		resume.Resume{ID: 118820, Name: "Sivasankaran S", Email: "sivasankaran773@gmail.com", Status: resume.StatusHired, Location: "Chennai", Experience: "5-7 years"},
	))
	fs, err := fsxlocal.NewLocalFileSystem(t.TempDir())
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: httpx.ErrorHandler(false)})
	NewHandlers(resumesrv.NewService(repo, fs, 0), nil).RegisterRoutes(app.Group("/api/v1"), auth.NewMiddleware(nil, false, ""))
	return app
}

func decode(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&out))
	return out
}

func TestList_SearchByCodeAndLocation(t *testing.T) {
	app := newApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/resumes?q=rsm11881&location=chennai", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode(t, resp.Body)
	assert.EqualValues(t, 1, body["total"])
	assert.Equal(t, "Dhivakaran P", body["items"].([]any)[0].(map[string]any)["name"])
}

func TestList_ExperienceBucket(t *testing.T) {
	app := newApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/resumes?experienceMin=5-8", nil))
	require.NoError(t, err)
	body := decode(t, resp.Body)
	assert.EqualValues(t, 2, body["total"])
}

func TestUploadAndDownload(t *testing.T) {
	app := newApp(t)
	pdf := []byte("%PDF-1.4\n1 0 obj\n")

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("files", "GOWTHAMI_A.pdf")
	require.NoError(t, err)
	_, err = part.Write(pdf)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/v1/resumes/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decode(t, resp.Body)
	created := body["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "GOWTHAMI A", created["name"])
	assert.Equal(t, "NEW", created["status"])

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/resumes/118821/file", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, pdf, data)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "GOWTHAMI_A.pdf")
}

func TestUpload_MissingFiles(t *testing.T) {
	app := newApp(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("note", "nothing attached"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/v1/resumes/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, httpx.CodeMissingFile, decode(t, resp.Body)["code"])
}

func TestUpdateStatus(t *testing.T) {
	app := newApp(t)

	req := httptest.NewRequest("PATCH", "/api/v1/resumes/118816/status", bytes.NewBufferString(`{"status":"rejected"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "REJECTED", decode(t, resp.Body)["status"])

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/resumes/code/RSM118816", nil))
	require.NoError(t, err)
	assert.Equal(t, "REJECTED", decode(t, resp.Body)["status"])
}
