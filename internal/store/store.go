package store

import (
	"encoding/json"

	"github.com/supabase-community/postgrest-go"

	"github.com/finapp/backend/internal/errs"
)

// Client is the slice of the platform client the stores consume. The stores
// never issue raw SQL; they only compose the filter, order, and range
// primitives the builder exposes.
type Client interface {
	From(table string) *postgrest.QueryBuilder
}

// execute runs a composed query and decodes the returned rows. Transport and
// decode failures both surface as StoreError with the message intact.
func execute[T any](fb *postgrest.FilterBuilder) ([]T, error) {
	data, _, err := fb.Execute()
	if err != nil {
		return nil, errs.NewStoreError(err.Error())
	}
	var rows []T
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, errs.NewStoreError(err.Error())
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

// executeDiscard runs a query whose response body is irrelevant (deletes).
func executeDiscard(fb *postgrest.FilterBuilder) error {
	if _, _, err := fb.Execute(); err != nil {
		return errs.NewStoreError(err.Error())
	}
	return nil
}

func first[T any](rows []T, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errs.NewStoreError("insert returned no rows")
	}
	return &rows[0], nil
}
