package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier operaciones comunes a *pgxpool.Pool y pgx.Tx: los repositorios funcionan igual dentro y fuera de una tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// idsToJSON serializa una lista de ids para una columna JSONB (nunca null).
func idsToJSON(ids []int64) ([]byte, error) {
	if ids == nil {
		ids = []int64{}
	}
	return json.Marshal(ids)
}

// idsFromJSON deserializa una columna JSONB de ids.
func idsFromJSON(raw []byte) ([]int64, error) {
	ids := []int64{}
	if len(raw) == 0 {
		return ids, nil
	}
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("decodificar ids: %w", err)
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}
