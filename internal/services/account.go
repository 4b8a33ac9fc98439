package services

import (
	"context"

	"github.com/finapp/backend/internal/dto"
	"github.com/finapp/backend/internal/errs"
	"github.com/finapp/backend/internal/models"
	"github.com/finapp/backend/pkg/helpers"
	"github.com/finapp/backend/pkg/logger"
)

type accountStore interface {
	List(ctx context.Context, uid string) ([]models.Account, error)
	Create(ctx context.Context, uid string, req dto.CreateAccountRequest) (*models.Account, error)
	Update(ctx context.Context, uid, id string, req dto.CreateAccountRequest) ([]models.Account, error)
	Delete(ctx context.Context, uid, id string) error
}

type accountService struct {
	store accountStore
}

func NewAccountService(store accountStore) *accountService {
	return &accountService{store: store}
}

func (s *accountService) List(ctx context.Context, uid string) ([]models.Account, error) {
	return s.store.List(ctx, uid)
}

func (s *accountService) Create(ctx context.Context, uid string, req dto.CreateAccountRequest) (*models.Account, error) {
	if err := validateAccount(req); err != nil {
		return nil, err
	}
	applyAccountDefaults(&req)

	acc, err := s.store.Create(ctx, uid, req)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("account created", "account_id", acc.ID)
	return acc, nil
}

func (s *accountService) Update(ctx context.Context, uid, id string, req dto.CreateAccountRequest) (*models.Account, error) {
	if err := validateAccount(req); err != nil {
		return nil, err
	}
	applyAccountDefaults(&req)

	rows, err := s.store.Update(ctx, uid, id, req)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		// either the id doesn't exist or it belongs to someone else
		return nil, errs.NewNotFoundError("account not found")
	}
	return &rows[0], nil
}

// Delete is idempotent: a missing row is not distinguished from a deleted one.
func (s *accountService) Delete(ctx context.Context, uid, id string) error {
	return s.store.Delete(ctx, uid, id)
}

func validateAccount(req dto.CreateAccountRequest) error {
	if req.Name == "" {
		return errs.NewValidationError("name is required")
	}
	if req.AccountType == "" {
		return errs.NewValidationError("account_type is required")
	}
	return nil
}

func applyAccountDefaults(req *dto.CreateAccountRequest) {
	if req.Icon == nil {
		req.Icon = helpers.Ptr("wallet")
	}
	if req.Color == nil {
		req.Color = helpers.Ptr("#10b981")
	}
}
