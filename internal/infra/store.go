package infra

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/chars222/lista-compras/internal/config"
	"github.com/chars222/lista-compras/internal/tabular"
	"github.com/chars222/lista-compras/internal/tabular/gormstore"
	"github.com/chars222/lista-compras/internal/tabular/gsheets"
	"github.com/chars222/lista-compras/internal/tabular/redisstore"
)

// NuevoStore builds the tabular backend the config asks for. This is the
// only place that knows all the backends; everything above it sees just a
// tabular.Store.
func NuevoStore(ctx context.Context, cfg *config.Config) (tabular.Store, error) {
	switch cfg.Backend {
	case config.BackendMemoria:
		log.Warn().Msg("Backend en memoria: los datos se pierden al apagar")
		return tabular.NewMemory(), nil

	case config.BackendSQLite:
		db, err := NewSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return gormstore.New(db)

	case config.BackendPostgres:
		db, err := NewPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return gormstore.New(db)

	case config.BackendRedis:
		rdb, err := NewRedis(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return redisstore.New(rdb, cfg.RedisClave), nil

	case config.BackendGSheets:
		svc, err := NewSheetsService(ctx, cfg.GSheetsCredenciales)
		if err != nil {
			return nil, err
		}
		return gsheets.New(svc, cfg.GSheetsSpreadsheetID, cfg.GSheetsHoja), nil

	default:
		return nil, fmt.Errorf("backend desconocido: %q", cfg.Backend)
	}
}
