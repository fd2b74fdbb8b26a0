// Package redisstore implements tabular.Store on a single Redis list. Each
// element is one JSON-encoded row; list order is row order. It exists for
// deployments that already run Redis and want the lista data to live there
// instead of a spreadsheet or SQL database.
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/chars222/lista-compras/internal/tabular"
)

// ClavePorDefecto is the Redis key used when the config does not name one.
const ClavePorDefecto = "lista-compras:filas"

type Store struct {
	rdb   *redis.Client
	clave string
}

var _ tabular.Store = (*Store)(nil)

func New(rdb *redis.Client, clave string) *Store {
	if clave == "" {
		clave = ClavePorDefecto
	}
	return &Store{rdb: rdb, clave: clave}
}

func (s *Store) ReadAllRows(ctx context.Context) ([][]string, error) {
	vals, err := s.rdb.LRange(ctx, s.clave, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", s.clave, err)
	}
	rows := make([][]string, 0, len(vals))
	for i, v := range vals {
		var celdas []string
		if err := json.Unmarshal([]byte(v), &celdas); err != nil {
			return nil, fmt.Errorf("decodificar fila %d: %w", i, err)
		}
		rows = append(rows, celdas)
	}
	return rows, nil
}

// WriteRows swaps the whole list atomically: DEL and RPUSH travel in one
// MULTI/EXEC, so no reader ever sees the table half-written.
func (s *Store) WriteRows(ctx context.Context, rows [][]string) error {
	elems, err := aElementos(rows)
	if err != nil {
		return err
	}
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, s.clave)
	if len(elems) > 0 {
		pipe.RPush(ctx, s.clave, elems...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("escribir %s: %w", s.clave, err)
	}
	return nil
}

func (s *Store) AppendRows(ctx context.Context, rows [][]string) error {
	elems, err := aElementos(rows)
	if err != nil {
		return err
	}
	if len(elems) == 0 {
		return nil
	}
	if err := s.rdb.RPush(ctx, s.clave, elems...).Err(); err != nil {
		return fmt.Errorf("agregar a %s: %w", s.clave, err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.clave).Err(); err != nil {
		return fmt.Errorf("vaciar %s: %w", s.clave, err)
	}
	return nil
}

func aElementos(rows [][]string) ([]interface{}, error) {
	elems := make([]interface{}, 0, len(rows))
	for i, celdas := range rows {
		b, err := json.Marshal(celdas)
		if err != nil {
			return nil, fmt.Errorf("codificar fila %d: %w", i, err)
		}
		elems = append(elems, string(b))
	}
	return elems, nil
}
