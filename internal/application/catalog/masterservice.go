// Package catalog implements the catalogue hierarchy services: masters,
// sub-masters, and the per-employee entity overrides layered on top.
package catalog

import (
	"context"
	"fmt"

	"learnhub/internal/domain/catalog"
	"learnhub/internal/shared/errors"
	"learnhub/internal/shared/logger"
)

type MasterInput struct {
	Name     *string
	Code     *string
	IsActive *bool
	Sequence *int
}

type MasterService struct {
	repo   catalog.MasterRepository
	logger logger.Interface
}

func NewMasterService(repo catalog.MasterRepository, log logger.Interface) *MasterService {
	return &MasterService{repo: repo, logger: log}
}

func (s *MasterService) Create(ctx context.Context, name, code string, input MasterInput) (*MasterView, error) {
	inUse, err := s.repo.CodeInUse(ctx, code, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check code uniqueness: %w", err)
	}
	if inUse {
		return nil, errors.NewConflictError(fmt.Sprintf("master code %q already in use", code))
	}

	m, err := catalog.NewMaster(name, code)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if input.IsActive != nil {
		m.SetActive(*input.IsActive)
	}
	if input.Sequence != nil {
		m.SetSequence(*input.Sequence)
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.logger.Infow("master created", "master_id", m.ID(), "code", code)

	view := NewMasterView(m)
	return &view, nil
}

func (s *MasterService) Get(ctx context.Context, id uint) (*MasterView, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.NewNotFoundError("master not found")
	}

	view := NewMasterView(m)
	return &view, nil
}

func (s *MasterService) List(ctx context.Context) ([]MasterView, error) {
	masters, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]MasterView, 0, len(masters))
	for _, m := range masters {
		views = append(views, NewMasterView(m))
	}
	return views, nil
}

func (s *MasterService) Update(ctx context.Context, id uint, input MasterInput) (*MasterView, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.NewNotFoundError("master not found")
	}

	if input.Code != nil && *input.Code != m.Code() {
		inUse, err := s.repo.CodeInUse(ctx, *input.Code, m.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to check code uniqueness: %w", err)
		}
		if inUse {
			return nil, errors.NewConflictError(fmt.Sprintf("master code %q already in use", *input.Code))
		}
		if err := m.SetCode(*input.Code); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if input.Name != nil {
		if err := m.Rename(*input.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if input.IsActive != nil {
		m.SetActive(*input.IsActive)
	}
	if input.Sequence != nil {
		m.SetSequence(*input.Sequence)
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}

	s.logger.Infow("master updated", "master_id", m.ID())

	view := NewMasterView(m)
	return &view, nil
}

func (s *MasterService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("master deleted", "master_id", id)
	return nil
}
