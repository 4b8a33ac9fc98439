package services

import (
	"context"
	"errors"
	"testing"

	"github.com/finapp/backend/internal/dto"
	"github.com/finapp/backend/internal/errs"
	"github.com/finapp/backend/internal/models"
	"github.com/finapp/backend/pkg/helpers"
)

type fakeAccountStore struct {
	accounts   []models.Account
	updateRows []models.Account
	err        error

	lastUID string
	lastID  string
	lastReq dto.CreateAccountRequest

	deleteCalled bool
}

func (f *fakeAccountStore) List(ctx context.Context, uid string) ([]models.Account, error) {
	f.lastUID = uid
	return f.accounts, f.err
}

func (f *fakeAccountStore) Create(ctx context.Context, uid string, req dto.CreateAccountRequest) (*models.Account, error) {
	f.lastUID = uid
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.Account{
		ID:          "acc-1",
		UserID:      uid,
		Name:        req.Name,
		AccountType: req.AccountType,
		Balance:     req.Balance,
		Icon:        helpers.Value(req.Icon),
		Color:       helpers.Value(req.Color),
	}, nil
}

func (f *fakeAccountStore) Update(ctx context.Context, uid, id string, req dto.CreateAccountRequest) ([]models.Account, error) {
	f.lastUID = uid
	f.lastID = id
	f.lastReq = req
	return f.updateRows, f.err
}

func (f *fakeAccountStore) Delete(ctx context.Context, uid, id string) error {
	f.deleteCalled = true
	f.lastUID = uid
	f.lastID = id
	return f.err
}

func TestAccountCreateInjectsOwner(t *testing.T) {
	store := &fakeAccountStore{}
	svc := NewAccountService(store)

	acc, err := svc.Create(helpers.TestCtx(), "caller-uid", dto.CreateAccountRequest{
		Name:        "Checking",
		AccountType: "bank",
		Balance:     100,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if store.lastUID != "caller-uid" {
		t.Fatalf("store received wrong uid: %q", store.lastUID)
	}
	if acc.UserID != "caller-uid" {
		t.Fatalf("owner mismatch: %q", acc.UserID)
	}
}

func TestAccountCreateDefaults(t *testing.T) {
	store := &fakeAccountStore{}
	svc := NewAccountService(store)

	_, err := svc.Create(helpers.TestCtx(), "u1", dto.CreateAccountRequest{
		Name:        "Wallet",
		AccountType: "cash",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got := helpers.Value(store.lastReq.Icon); got != "wallet" {
		t.Fatalf("icon default mismatch: %q", got)
	}
	if got := helpers.Value(store.lastReq.Color); got != "#10b981" {
		t.Fatalf("color default mismatch: %q", got)
	}
}

func TestAccountCreateValidation(t *testing.T) {
	store := &fakeAccountStore{}
	svc := NewAccountService(store)

	_, err := svc.Create(helpers.TestCtx(), "u1", dto.CreateAccountRequest{AccountType: "bank"})
	var verr *errs.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}

	_, err = svc.Create(helpers.TestCtx(), "u1", dto.CreateAccountRequest{Name: "Checking"})
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
}

func TestAccountUpdateNotFound(t *testing.T) {
	store := &fakeAccountStore{updateRows: []models.Account{}}
	svc := NewAccountService(store)

	_, err := svc.Update(helpers.TestCtx(), "other-uid", "acc-1", dto.CreateAccountRequest{
		Name:        "Checking",
		AccountType: "bank",
	})
	var nferr *errs.NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected NotFoundError, got %T", err)
	}
	if store.lastUID != "other-uid" || store.lastID != "acc-1" {
		t.Fatalf("update filter mismatch: uid=%q id=%q", store.lastUID, store.lastID)
	}
}

func TestAccountDeleteIdempotent(t *testing.T) {
	store := &fakeAccountStore{}
	svc := NewAccountService(store)

	// the store reports nothing about affected rows; missing ids succeed too
	if err := svc.Delete(helpers.TestCtx(), "u1", "does-not-exist"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if !store.deleteCalled {
		t.Fatal("expected delete to reach the store")
	}
}

func TestAccountListPassesThroughStoreError(t *testing.T) {
	store := &fakeAccountStore{err: errs.NewStoreError("connection refused")}
	svc := NewAccountService(store)

	_, err := svc.List(helpers.TestCtx(), "u1")
	var serr *errs.StoreError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StoreError, got %T", err)
	}
	if serr.Message != "connection refused" {
		t.Fatalf("message not passed through verbatim: %q", serr.Message)
	}
}
