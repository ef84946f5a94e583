package handler

import (
	"context"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vimco/vimco-api/internal/modules/model"
	"github.com/vimco/vimco-api/internal/modules/service"
)

// MockCrudService is a mock implementation of service.CrudService
type MockCrudService[M any] struct {
	mock.Mock
}

func (m *MockCrudService[M]) Create(ctx context.Context, item *M) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCrudService[M]) List(ctx context.Context) ([]M, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]M), args.Error(1)
}

func (m *MockCrudService[M]) Get(ctx context.Context, id uuid.UUID) (*M, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*M), args.Error(1)
}

func (m *MockCrudService[M]) Update(ctx context.Context, id uuid.UUID, columns []string, patch *M) (*M, error) {
	args := m.Called(ctx, id, columns, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*M), args.Error(1)
}

func (m *MockCrudService[M]) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProjectService adds Import to the generic mock
type MockProjectService struct {
	MockCrudService[model.Project]
}

func (m *MockProjectService) Import(ctx context.Context, rows []*model.Project) (int, error) {
	args := m.Called(ctx, rows)
	return args.Int(0), args.Error(1)
}

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Upload(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	args := m.Called(ctx, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*service.Token, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Token), args.Error(1)
}

func (m *MockAuthService) Verify(ctx context.Context, raw string) (*service.Claims, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, claims *service.Claims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// envelope decodes a JSON response body.
func envelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	out := map[string]interface{}{}
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
