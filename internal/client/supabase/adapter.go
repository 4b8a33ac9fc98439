package supabaseclient

import (
	"context"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
)

// Adapter wraps the platform client behind the two capabilities this service
// needs: token verification and filtered table access.
type Adapter struct {
	client *supabase.Client
}

func NewAdapter(url, key string) (*Adapter, error) {
	client, err := supabase.NewClient(url, key, &supabase.ClientOptions{})
	if err != nil {
		return nil, err
	}
	return &Adapter{client: client}, nil
}

// From returns the query builder for a table.
func (a *Adapter) From(table string) *postgrest.QueryBuilder {
	return a.client.From(table)
}

// Verify asks the identity service who the token belongs to. The gotrue client
// carries no context; ctx is accepted for interface symmetry.
func (a *Adapter) Verify(ctx context.Context, token string) (string, error) {
	user, err := a.client.Auth.WithToken(token).GetUser()
	if err != nil {
		return "", err
	}
	return user.ID.String(), nil
}
