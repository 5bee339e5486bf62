package attachment

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-tracker/internal/handler"
	"github.com/jwalitptl/clinic-tracker/internal/middleware"
	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/service/attachment"
	"github.com/jwalitptl/clinic-tracker/pkg/errors"
)

type fakeAttachments struct {
	dir      string
	uploaded []byte
	name     string
}

func (f *fakeAttachments) Upload(ctx context.Context, taskID uuid.UUID, uploader *model.User, up attachment.Upload) (*model.Attachment, error) {
	if !model.IsAllowedFile(up.Filename) {
		return nil, errors.Validation("file type not allowed")
	}
	data, err := io.ReadAll(up.Body)
	if err != nil {
		return nil, err
	}
	f.uploaded = data
	f.name = up.Filename
	return &model.Attachment{TaskID: taskID, StoredName: "stored_" + up.Filename, OriginalName: up.Filename}, nil
}

func (f *fakeAttachments) Open(ctx context.Context, storedName string) (*model.Attachment, *os.File, error) {
	if storedName != "20250601090000_abcd1234_report.pdf" {
		return nil, nil, errors.NotFound("file", nil)
	}
	file, err := os.Open(filepath.Join(f.dir, storedName))
	if err != nil {
		return nil, nil, err
	}
	return &model.Attachment{
		StoredName:   storedName,
		OriginalName: "Q2 report.pdf",
		ContentType:  "application/pdf",
		CreatedAt:    time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}, file, nil
}

func setup(t *testing.T, limit int64) (*gin.Engine, *fakeAttachments) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := &fakeAttachments{dir: t.TempDir()}
	r := gin.New()
	r.Use(func(c *gin.Context) {
		handler.SetCurrentUser(c, &model.User{Base: model.Base{ID: uuid.New()}, Role: model.RoleAdmin})
		c.Next()
	})
	NewHandler(svc, middleware.BodyLimit(limit)).RegisterRoutes(r.Group(""))
	return r, svc
}

func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(formField, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUpload(t *testing.T) {
	r, svc := setup(t, 1<<20)
	body, ct := multipartBody(t, "report.pdf", []byte("%PDF-1.4"))

	req := httptest.NewRequest(http.MethodPost, "/tasks/"+uuid.NewString()+"/attachments", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "report.pdf", svc.name)
	assert.Equal(t, []byte("%PDF-1.4"), svc.uploaded)
}

func TestUploadRejectsDisallowedType(t *testing.T) {
	r, _ := setup(t, 1<<20)
	body, ct := multipartBody(t, "run.exe", []byte("MZ"))

	req := httptest.NewRequest(http.MethodPost, "/tasks/"+uuid.NewString()+"/attachments", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadTooLarge(t *testing.T) {
	r, svc := setup(t, 256)
	body, ct := multipartBody(t, "big.txt", bytes.Repeat([]byte("x"), 1024))

	req := httptest.NewRequest(http.MethodPost, "/tasks/"+uuid.NewString()+"/attachments", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Nil(t, svc.uploaded)
}

func TestUploadMissingFile(t *testing.T) {
	r, _ := setup(t, 1<<20)
	req := httptest.NewRequest(http.MethodPost, "/tasks/"+uuid.NewString()+"/attachments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownload(t *testing.T) {
	r, svc := setup(t, 1<<20)
	require.NoError(t, os.WriteFile(filepath.Join(svc.dir, "20250601090000_abcd1234_report.pdf"), []byte("%PDF"), 0o644))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/attachments/20250601090000_abcd1234_report.pdf", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF", w.Body.String())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Q2 report.pdf"`, w.Header().Get("Content-Disposition"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/attachments/missing.pdf", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
