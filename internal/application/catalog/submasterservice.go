package catalog

import (
	"context"
	"fmt"

	"learnhub/internal/domain/catalog"
	"learnhub/internal/shared/errors"
	"learnhub/internal/shared/logger"
)

type SubMasterInput struct {
	Name     *string
	Code     *string
	MasterID *uint
	ParentID *uint
	// ClearParent detaches the node from its parent.
	ClearParent bool
	IsActive    *bool
	Sequence    *int
}

type SubMasterService struct {
	repo       catalog.SubMasterRepository
	masterRepo catalog.MasterRepository
	logger     logger.Interface
}

func NewSubMasterService(repo catalog.SubMasterRepository, masterRepo catalog.MasterRepository, log logger.Interface) *SubMasterService {
	return &SubMasterService{
		repo:       repo,
		masterRepo: masterRepo,
		logger:     log,
	}
}

func (s *SubMasterService) Create(ctx context.Context, name, code string, masterID uint, parentID *uint, input SubMasterInput) (*SubMasterView, error) {
	if err := s.validateMaster(ctx, masterID); err != nil {
		return nil, err
	}
	if parentID != nil {
		if err := s.validateParent(ctx, *parentID); err != nil {
			return nil, err
		}
	}

	inUse, err := s.repo.CodeInUse(ctx, code, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check code uniqueness: %w", err)
	}
	if inUse {
		return nil, errors.NewConflictError(fmt.Sprintf("sub-master code %q already in use", code))
	}

	sm, err := catalog.NewSubMaster(name, code, masterID, parentID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if input.IsActive != nil {
		sm.SetActive(*input.IsActive)
	}
	if input.Sequence != nil {
		sm.SetSequence(*input.Sequence)
	}

	if err := s.repo.Create(ctx, sm); err != nil {
		return nil, err
	}

	s.logger.Infow("sub-master created", "sub_master_id", sm.ID(), "master_id", masterID)

	view := NewSubMasterView(sm)
	return &view, nil
}

func (s *SubMasterService) Get(ctx context.Context, id uint) (*SubMasterView, error) {
	sm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sm == nil {
		return nil, errors.NewNotFoundError("sub-master not found")
	}

	view := NewSubMasterView(sm)
	return &view, nil
}

func (s *SubMasterService) List(ctx context.Context) ([]SubMasterView, error) {
	subMasters, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]SubMasterView, 0, len(subMasters))
	for _, sm := range subMasters {
		views = append(views, NewSubMasterView(sm))
	}
	return views, nil
}

func (s *SubMasterService) Update(ctx context.Context, id uint, input SubMasterInput) (*SubMasterView, error) {
	sm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sm == nil {
		return nil, errors.NewNotFoundError("sub-master not found")
	}

	if input.MasterID != nil && *input.MasterID != sm.MasterID() {
		if err := s.validateMaster(ctx, *input.MasterID); err != nil {
			return nil, err
		}
		if err := sm.SetMasterID(*input.MasterID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if input.ClearParent {
		if err := sm.SetParentID(nil); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	} else if input.ParentID != nil {
		if err := s.validateParent(ctx, *input.ParentID); err != nil {
			return nil, err
		}
		if err := s.ensureNoCycle(ctx, sm.ID(), *input.ParentID); err != nil {
			return nil, err
		}
		if err := sm.SetParentID(input.ParentID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if input.Code != nil && *input.Code != sm.Code() {
		inUse, err := s.repo.CodeInUse(ctx, *input.Code, sm.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to check code uniqueness: %w", err)
		}
		if inUse {
			return nil, errors.NewConflictError(fmt.Sprintf("sub-master code %q already in use", *input.Code))
		}
		if err := sm.SetCode(*input.Code); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if input.Name != nil {
		if err := sm.Rename(*input.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if input.IsActive != nil {
		sm.SetActive(*input.IsActive)
	}
	if input.Sequence != nil {
		sm.SetSequence(*input.Sequence)
	}

	if err := s.repo.Update(ctx, sm); err != nil {
		return nil, err
	}

	s.logger.Infow("sub-master updated", "sub_master_id", sm.ID())

	view := NewSubMasterView(sm)
	return &view, nil
}

func (s *SubMasterService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("sub-master deleted", "sub_master_id", id)
	return nil
}

func (s *SubMasterService) validateMaster(ctx context.Context, masterID uint) error {
	exists, err := s.masterRepo.Exists(ctx, masterID)
	if err != nil {
		return fmt.Errorf("failed to check master existence: %w", err)
	}
	if !exists {
		return errors.NewNotFoundError("master not found")
	}
	return nil
}

func (s *SubMasterService) validateParent(ctx context.Context, parentID uint) error {
	exists, err := s.repo.Exists(ctx, parentID)
	if err != nil {
		return fmt.Errorf("failed to check parent existence: %w", err)
	}
	if !exists {
		return errors.NewNotFoundError("parent sub-master not found")
	}
	return nil
}

// maxParentDepth bounds the cycle walk so corrupt data cannot hang a request.
const maxParentDepth = 1000

// ensureNoCycle walks the parent chain upward from the proposed parent.
// If the chain reaches the node being updated, attaching would close a
// loop.
func (s *SubMasterService) ensureNoCycle(ctx context.Context, nodeID, parentID uint) error {
	current := parentID
	for depth := 0; depth < maxParentDepth; depth++ {
		if current == nodeID {
			return errors.NewValidationError("sub-master parent chain must not contain cycles")
		}

		next, err := s.repo.GetParentID(ctx, current)
		if err != nil {
			return err
		}
		if next == nil {
			return nil
		}
		current = *next
	}
	return errors.NewValidationError("sub-master parent chain too deep")
}
