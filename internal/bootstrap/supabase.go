package bootstrap

import (
	supabaseclient "github.com/finapp/backend/internal/client/supabase"
	"github.com/finapp/backend/internal/config"
)

func InitSupabase(cfg *config.Config) (*supabaseclient.Adapter, error) {
	return supabaseclient.NewAdapter(cfg.SupabaseURL, cfg.SupabaseKey)
}
