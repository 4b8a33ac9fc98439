package services

import (
	"context"

	"github.com/finapp/backend/internal/dto"
	"github.com/finapp/backend/internal/errs"
	"github.com/finapp/backend/internal/models"
	"github.com/finapp/backend/pkg/helpers"
)

type goalStore interface {
	List(ctx context.Context, uid string) ([]models.Goal, error)
	Create(ctx context.Context, uid string, req dto.CreateGoalRequest) (*models.Goal, error)
	Update(ctx context.Context, uid, id string, req dto.CreateGoalRequest) ([]models.Goal, error)
	Delete(ctx context.Context, uid, id string) error
}

type goalService struct {
	store goalStore
}

func NewGoalService(store goalStore) *goalService {
	return &goalService{store: store}
}

func (s *goalService) List(ctx context.Context, uid string) ([]models.Goal, error) {
	return s.store.List(ctx, uid)
}

func (s *goalService) Create(ctx context.Context, uid string, req dto.CreateGoalRequest) (*models.Goal, error) {
	if err := validateGoal(req); err != nil {
		return nil, err
	}
	applyGoalDefaults(&req)
	return s.store.Create(ctx, uid, req)
}

func (s *goalService) Update(ctx context.Context, uid, id string, req dto.CreateGoalRequest) (*models.Goal, error) {
	if err := validateGoal(req); err != nil {
		return nil, err
	}
	applyGoalDefaults(&req)

	rows, err := s.store.Update(ctx, uid, id, req)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errs.NewNotFoundError("goal not found")
	}
	return &rows[0], nil
}

func (s *goalService) Delete(ctx context.Context, uid, id string) error {
	return s.store.Delete(ctx, uid, id)
}

func validateGoal(req dto.CreateGoalRequest) error {
	if req.Name == "" {
		return errs.NewValidationError("name is required")
	}
	if req.TargetAmount == nil {
		return errs.NewValidationError("target_amount is required")
	}
	return nil
}

func applyGoalDefaults(req *dto.CreateGoalRequest) {
	if req.Icon == nil {
		req.Icon = helpers.Ptr("target")
	}
}
