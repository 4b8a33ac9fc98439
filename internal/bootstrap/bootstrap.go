package bootstrap

import (
	"log/slog"

	supabaseclient "github.com/finapp/backend/internal/client/supabase"
	"github.com/finapp/backend/internal/config"
	"github.com/finapp/backend/pkg/logger"
)

type Bootstrap struct {
	Log      *slog.Logger
	Supabase *supabaseclient.Adapter
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewEventHandler)
	if err = cfg.Validate(); err != nil {
		return bs, err
	}
	bs.Supabase, err = InitSupabase(cfg)
	if err != nil {
		return bs, err
	}

	return bs, nil
}
