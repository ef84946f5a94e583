package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/vimco/vimco-api/internal/modules/repo"
)

// MockCrudRepo is a mock implementation of repo.CrudRepo
type MockCrudRepo[M any] struct {
	mock.Mock
}

func (m *MockCrudRepo[M]) Create(ctx context.Context, item *M) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCrudRepo[M]) CreateBatch(ctx context.Context, items []*M) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockCrudRepo[M]) List(ctx context.Context, order repo.Order) ([]M, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]M), args.Error(1)
}

func (m *MockCrudRepo[M]) Get(ctx context.Context, id uuid.UUID) (*M, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*M), args.Error(1)
}

func (m *MockCrudRepo[M]) Update(ctx context.Context, id uuid.UUID, columns []string, patch *M) error {
	args := m.Called(ctx, id, columns, patch)
	return args.Error(0)
}

func (m *MockCrudRepo[M]) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishJSON(ctx context.Context, routingKey string, v interface{}) error {
	args := m.Called(ctx, routingKey, v)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) PostEvent(ctx context.Context, event string, data interface{}) error {
	args := m.Called(ctx, event, data)
	return args.Error(0)
}

type MockRevoker struct {
	mock.Mock
}

func (m *MockRevoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	args := m.Called(ctx, jti, ttl)
	return args.Error(0)
}

func (m *MockRevoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}
