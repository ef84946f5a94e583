package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vimco/vimco-api/internal/modules/model"
	"github.com/vimco/vimco-api/internal/modules/repo"
	"go.uber.org/zap"
)

var ErrNoImportData = errors.New("no project data provided")

type ProjectService interface {
	CrudService[model.Project]
	Import(ctx context.Context, rows []*model.Project) (int, error)
}

type projectService struct {
	CrudService[model.Project]
	r   repo.CrudRepo[model.Project]
	log *zap.Logger
}

func NewProjectService(r repo.CrudRepo[model.Project], log *zap.Logger) ProjectService {
	return &projectService{
		CrudService: NewCrudService(r, repo.ByNewest),
		r:           r,
		log:         log,
	}
}

// Import stores rows as given, in a single batch. Rows are not validated.
func (s *projectService) Import(ctx context.Context, rows []*model.Project) (int, error) {
	if len(rows) == 0 {
		return 0, ErrNoImportData
	}
	if err := s.r.CreateBatch(ctx, rows); err != nil {
		s.log.Error("project import failed", zap.Int("rows", len(rows)), zap.Error(err))
		return 0, fmt.Errorf("import %d projects: %w", len(rows), err)
	}
	s.log.Info("projects imported", zap.Int("rows", len(rows)))
	return len(rows), nil
}
