package services

import (
	"context"

	"github.com/finapp/backend/internal/dto"
	"github.com/finapp/backend/internal/errs"
	"github.com/finapp/backend/internal/models"
	"github.com/finapp/backend/pkg/helpers"
)

type recurringStore interface {
	List(ctx context.Context, uid string) ([]models.RecurringRule, error)
	Create(ctx context.Context, uid string, req dto.CreateRecurringRequest) (*models.RecurringRule, error)
	Update(ctx context.Context, uid, id string, req dto.CreateRecurringRequest) ([]models.RecurringRule, error)
	Delete(ctx context.Context, uid, id string) error
}

type recurringService struct {
	store recurringStore
}

func NewRecurringService(store recurringStore) *recurringService {
	return &recurringService{store: store}
}

func (s *recurringService) List(ctx context.Context, uid string) ([]models.RecurringRule, error) {
	return s.store.List(ctx, uid)
}

func (s *recurringService) Create(ctx context.Context, uid string, req dto.CreateRecurringRequest) (*models.RecurringRule, error) {
	if err := validateRecurring(req); err != nil {
		return nil, err
	}
	if req.Active == nil {
		req.Active = helpers.Ptr(true)
	}
	return s.store.Create(ctx, uid, req)
}

func (s *recurringService) Update(ctx context.Context, uid, id string, req dto.CreateRecurringRequest) (*models.RecurringRule, error) {
	if err := validateRecurring(req); err != nil {
		return nil, err
	}
	if req.Active == nil {
		req.Active = helpers.Ptr(true)
	}

	rows, err := s.store.Update(ctx, uid, id, req)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errs.NewNotFoundError("recurring rule not found")
	}
	return &rows[0], nil
}

func (s *recurringService) Delete(ctx context.Context, uid, id string) error {
	return s.store.Delete(ctx, uid, id)
}

// DayOfMonth is stored as sent; it is not range-checked, and no process
// materializes due rules into transactions.
func validateRecurring(req dto.CreateRecurringRequest) error {
	if req.Description == "" {
		return errs.NewValidationError("description is required")
	}
	if req.Amount == nil {
		return errs.NewValidationError("amount is required")
	}
	if req.TxType == "" {
		return errs.NewValidationError("tx_type is required")
	}
	if req.DayOfMonth == nil {
		return errs.NewValidationError("day_of_month is required")
	}
	return nil
}
