package services

import (
	"context"

	"github.com/finapp/backend/internal/dto"
	"github.com/finapp/backend/internal/errs"
	"github.com/finapp/backend/internal/models"
)

type budgetStore interface {
	List(ctx context.Context, uid string) ([]models.Budget, error)
	Create(ctx context.Context, uid string, req dto.CreateBudgetRequest) (*models.Budget, error)
	Update(ctx context.Context, uid, id string, req dto.CreateBudgetRequest) ([]models.Budget, error)
	Delete(ctx context.Context, uid, id string) error
}

type budgetService struct {
	store budgetStore
}

func NewBudgetService(store budgetStore) *budgetService {
	return &budgetService{store: store}
}

func (s *budgetService) List(ctx context.Context, uid string) ([]models.Budget, error) {
	return s.store.List(ctx, uid)
}

func (s *budgetService) Create(ctx context.Context, uid string, req dto.CreateBudgetRequest) (*models.Budget, error) {
	if err := validateBudget(req); err != nil {
		return nil, err
	}
	return s.store.Create(ctx, uid, req)
}

// Update never touches spent_amount; the patch carries only the budget shape.
func (s *budgetService) Update(ctx context.Context, uid, id string, req dto.CreateBudgetRequest) (*models.Budget, error) {
	if err := validateBudget(req); err != nil {
		return nil, err
	}
	rows, err := s.store.Update(ctx, uid, id, req)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errs.NewNotFoundError("budget not found")
	}
	return &rows[0], nil
}

func (s *budgetService) Delete(ctx context.Context, uid, id string) error {
	return s.store.Delete(ctx, uid, id)
}

func validateBudget(req dto.CreateBudgetRequest) error {
	if req.CategoryID == "" {
		return errs.NewValidationError("category_id is required")
	}
	if req.LimitAmount == nil {
		return errs.NewValidationError("limit_amount is required")
	}
	if req.PeriodMonth == nil {
		return errs.NewValidationError("period_month is required")
	}
	if req.PeriodYear == nil {
		return errs.NewValidationError("period_year is required")
	}
	return nil
}
