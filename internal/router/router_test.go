package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/vimco/vimco-api/internal/config"
	"github.com/vimco/vimco-api/internal/modules/handler"
	"github.com/vimco/vimco-api/internal/modules/schema"
	"github.com/vimco/vimco-api/internal/modules/service"
)

// rejectAll is an auth service whose tokens never verify.
type rejectAll struct{}

func (rejectAll) Login(ctx context.Context, email, password string) (*service.Token, error) {
	return nil, service.ErrInvalidCredentials
}

func (rejectAll) Verify(ctx context.Context, raw string) (*service.Claims, error) {
	return nil, service.ErrInvalidToken
}

func (rejectAll) Logout(ctx context.Context, claims *service.Claims) error { return nil }

func testDeps(auth service.AuthService) RouterDeps {
	cfg := &config.Config{}
	cfg.App.BodyLimitMB = 1
	cfg.Upload.Driver = "s3"
	val := schema.New()

	return RouterDeps{
		Config:             cfg,
		Log:                zap.NewNop(),
		Auth:               auth,
		CertificateHandler: handler.CertificateHandler{ResourceHandler: handler.NewResourceHandler(handler.CertificateResource, nil, val)},
		EventHandler:       handler.EventHandler{ResourceHandler: handler.NewResourceHandler(handler.EventResource, nil, val)},
		LogoHandler:        handler.LogoHandler{ResourceHandler: handler.NewResourceHandler(handler.LogoResource, nil, val)},
		ProjectHandler:     handler.ProjectHandler{ResourceHandler: handler.NewResourceHandler(handler.ProjectResource, nil, val)},
		TestimonialHandler: handler.TestimonialHandler{ResourceHandler: handler.NewResourceHandler(handler.TestimonialResource, nil, val)},
		ContactHandler:     handler.ContactHandler{ResourceHandler: handler.NewResourceHandler(handler.ContactResource, nil, val)},
		ImportHandler:      handler.NewImportHandler(nil),
		UploadHandler:      handler.NewUploadHandler(nil),
		AuthHandler:        handler.NewAuthHandler(auth),
	}
}

func TestNewRouter_Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := NewRouter(testDeps(nil))

	registered := map[string]bool{}
	for _, ri := range engine.Routes() {
		registered[ri.Method+" "+ri.Path] = true
	}

	for _, want := range []string{
		"POST /api/certificates/add-certificate",
		"GET /api/certificates/get-certificate",
		"GET /api/events/get-event-byid/:id",
		"PUT /api/logo/update-logo/:id",
		"DELETE /api/testimonial/delete-testimonial/:id",
		"POST /api/project/add-project",
		"POST /api/project/bulk-upload-project",
		"POST /api/contact-us/save-contact-us",
		"GET /api/contact-us/get-contact-us",
		"PUT /api/contact-us/update-contact-us/:id",
		"POST /api/upload/upload-files",
		"GET /health",
		"GET /swagger/*any",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
	assert.False(t, registered["POST /api/auth/login"], "auth routes need auth enabled")
	assert.False(t, registered["GET /images/*filepath"], "static images only for the local driver")
}

func TestNewRouter_AdminGuard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := NewRouter(testDeps(rejectAll{}))

	tests := []struct {
		method         string
		path           string
		expectedStatus int
	}{
		{http.MethodPost, "/api/logo/add-logo", http.StatusUnauthorized},
		{http.MethodPut, "/api/events/update-event/1", http.StatusUnauthorized},
		{http.MethodDelete, "/api/certificates/delete-certificate/1", http.StatusUnauthorized},
		{http.MethodGet, "/api/contact-us/get-contact-us", http.StatusUnauthorized},
		{http.MethodPost, "/api/project/bulk-upload-project", http.StatusUnauthorized},
		{http.MethodPost, "/api/upload/upload-files", http.StatusUnauthorized},
		{http.MethodGet, "/api/auth/me", http.StatusUnauthorized},
		{http.MethodGet, "/health", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
