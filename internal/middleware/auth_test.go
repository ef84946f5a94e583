package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/vimco/vimco-api/internal/modules/service"
)

// MockAuthService is a mock implementation of service.AuthService
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

func TestAdminAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	claims := &service.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "admin@gmail.com"}}

	tests := []struct {
		name           string
		header         string
		setup          func(*MockAuthService)
		expectedStatus int
	}{
		{
			name:           "missing header",
			setup:          func(m *MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			header:         "Basic YWRtaW46YWRtaW4=",
			setup:          func(m *MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(m *MockAuthService) {
				m.On("Verify", mock.Anything, "bad").Return(nil, service.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "revocation store down",
			header: "Bearer good",
			setup: func(m *MockAuthService) {
				m.On("Verify", mock.Anything, "good").Return(nil, errors.New("redis: connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(m *MockAuthService) {
				m.On("Verify", mock.Anything, "good").Return(claims, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockAuthService{}
			tt.setup(svc)

			router := gin.New()
			router.GET("/api/logo/get-logo", AdminAuth(svc), func(c *gin.Context) {
				got, ok := AdminClaims(c)
				assert.True(t, ok)
				c.String(http.StatusOK, got.Subject)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/logo/get-logo", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "admin@gmail.com", w.Body.String())
			} else {
				assert.True(t, strings.Contains(w.Body.String(), `"success":false`))
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestAdminAuth_DisabledPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.DELETE("/api/logo/delete-logo/:id", AdminAuth(nil), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/logo/delete-logo/1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
