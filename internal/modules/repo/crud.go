package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const importBatchSize = 500

type CrudRepo[M any] interface {
	Create(ctx context.Context, m *M) error
	CreateBatch(ctx context.Context, items []*M) error
	List(ctx context.Context, order Order) ([]M, error)
	Get(ctx context.Context, id uuid.UUID) (*M, error)
	Update(ctx context.Context, id uuid.UUID, columns []string, patch *M) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type crudRepo[M any] struct{ db *gorm.DB }

func NewCrudRepo[M any](db *gorm.DB) CrudRepo[M] {
	return &crudRepo[M]{db: db}
}

func (r *crudRepo[M]) Create(ctx context.Context, m *M) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// CreateBatch inserts all items in one transaction; either every row lands or none does.
func (r *crudRepo[M]) CreateBatch(ctx context.Context, items []*M) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(items, importBatchSize).Error
	})
}

func (r *crudRepo[M]) List(ctx context.Context, order Order) ([]M, error) {
	items := make([]M, 0)
	q := r.db.WithContext(ctx)
	if len(order) > 0 {
		q = q.Order(order.Clause())
	}
	return items, q.Find(&items).Error
}

func (r *crudRepo[M]) Get(ctx context.Context, id uuid.UUID) (*M, error) {
	m := new(M)
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// Update writes only the given columns of patch; updated_at is always refreshed.
func (r *crudRepo[M]) Update(ctx context.Context, id uuid.UUID, columns []string, patch *M) error {
	cols := append(append([]string{}, columns...), "updated_at")
	res := r.db.WithContext(ctx).Model(new(M)).Where("id = ?", id).Select(cols).Updates(patch)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *crudRepo[M]) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(M))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
