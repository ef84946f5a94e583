package handler

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vimco/vimco-api/internal/modules/service"
)

func multipartBody(t *testing.T, field string, names ...string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for _, n := range names {
		fw, err := mw.CreateFormFile(field, n)
		require.NoError(t, err)
		_, err = fw.Write([]byte("data"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func TestUploadHandler_UploadFiles(t *testing.T) {
	tests := []struct {
		name           string
		field          string
		files          []string
		setup          func(*MockUploadService)
		expectedStatus int
	}{
		{
			name:  "urls in request order",
			field: "files",
			files: []string{"a.png", "b.jpg"},
			setup: func(svc *MockUploadService) {
				svc.On("Upload", mock.Anything, mock.MatchedBy(func(fs []*multipart.FileHeader) bool {
					return len(fs) == 2 && fs[0].Filename == "a.png" && fs[1].Filename == "b.jpg"
				})).Return([]string{"http://cdn/a.png", "http://cdn/b.jpg"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "wrong field name",
			field: "image",
			files: []string{"a.png"},
			setup: func(svc *MockUploadService) {
				svc.On("Upload", mock.Anything, mock.Anything).Return(nil, service.ErrNoFiles)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "unsupported type",
			field: "files",
			files: []string{"a.exe"},
			setup: func(svc *MockUploadService) {
				svc.On("Upload", mock.Anything, mock.Anything).Return(nil, service.ErrUnsupportedFile)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "storage failure",
			field: "files",
			files: []string{"a.png"},
			setup: func(svc *MockUploadService) {
				svc.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("bucket missing"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockUploadService{}
			tt.setup(svc)

			h := NewUploadHandler(svc)
			router := setupRouter()
			router.POST("/api/upload/upload-files", h.UploadFiles)

			body, ct := multipartBody(t, tt.field, tt.files...)
			req := httptest.NewRequest("POST", "/api/upload/upload-files", body)
			req.Header.Set("Content-Type", ct)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			res := envelope(t, w)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, []interface{}{"http://cdn/a.png", "http://cdn/b.jpg"}, res["urls"])
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestUploadHandler_NotMultipart(t *testing.T) {
	svc := &MockUploadService{}
	h := NewUploadHandler(svc)
	router := setupRouter()
	router.POST("/api/upload/upload-files", h.UploadFiles)

	req := httptest.NewRequest("POST", "/api/upload/upload-files", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}
