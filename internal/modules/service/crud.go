package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vimco/vimco-api/internal/modules/repo"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// CrudService is the five-operation contract shared by every content resource.
type CrudService[M any] interface {
	Create(ctx context.Context, m *M) error
	List(ctx context.Context) ([]M, error)
	Get(ctx context.Context, id uuid.UUID) (*M, error)
	Update(ctx context.Context, id uuid.UUID, columns []string, patch *M) (*M, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type crudService[M any] struct {
	r     repo.CrudRepo[M]
	order repo.Order
}

func NewCrudService[M any](r repo.CrudRepo[M], order repo.Order) CrudService[M] {
	return &crudService[M]{r: r, order: order}
}

func (s *crudService[M]) Create(ctx context.Context, m *M) error {
	return s.r.Create(ctx, m)
}

func (s *crudService[M]) List(ctx context.Context) ([]M, error) {
	return s.r.List(ctx, s.order)
}

func (s *crudService[M]) Get(ctx context.Context, id uuid.UUID) (*M, error) {
	m, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return m, nil
}

func (s *crudService[M]) Update(ctx context.Context, id uuid.UUID, columns []string, patch *M) (*M, error) {
	if err := s.r.Update(ctx, id, columns, patch); err != nil {
		return nil, notFound(err)
	}
	return s.Get(ctx, id)
}

func (s *crudService[M]) Delete(ctx context.Context, id uuid.UUID) error {
	return notFound(s.r.Delete(ctx, id))
}

// notFound maps a missing row to ErrNotFound and passes other errors through untouched.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
