package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"instock/internal/repository"

	"github.com/doug-martin/goqu/v9"
)

// PostgresGateway keeps every snapshot in a single key/jsonb table,
// overwritten wholesale on each write.
type PostgresGateway struct {
	repository *repository.Repository
}

func NewPostgresGateway(r *repository.Repository) *PostgresGateway {
	return &PostgresGateway{repository: r}
}

func (g *PostgresGateway) Put(ctx context.Context, key string, data []byte) error {
	query := g.repository.GoquDBWrapper.Insert("snapshots").
		Rows(goqu.Record{
			"key":        key,
			"data":       data,
			"updated_at": goqu.L("now()"),
		}).
		OnConflict(
			goqu.DoUpdate(
				"key",
				goqu.Record{
					"data":       data,
					"updated_at": goqu.L("now()"),
				},
			),
		)

	if _, err := query.Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to write snapshot %q: %w", key, err)
	}

	return nil
}

func (g *PostgresGateway) PutAll(ctx context.Context, blobs map[string][]byte) error {
	return repository.WithTransaction(g.repository.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		for key, data := range blobs {
			query := tx.Insert("snapshots").
				Rows(goqu.Record{
					"key":        key,
					"data":       data,
					"updated_at": goqu.L("now()"),
				}).
				OnConflict(
					goqu.DoUpdate(
						"key",
						goqu.Record{
							"data":       data,
							"updated_at": goqu.L("now()"),
						},
					),
				)

			if _, err := query.Executor().ExecContext(ctx); err != nil {
				return fmt.Errorf("failed to write snapshot %q: %w", key, err)
			}
		}
		return nil
	})
}

func (g *PostgresGateway) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	query := g.repository.GoquDBWrapper.Select("data").
		From("snapshots").
		Where(goqu.Ex{"key": key})

	found, err := query.Executor().ScanValContext(ctx, &data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot %q: %w", key, err)
	}
	if !found {
		return nil, nil
	}

	return data, nil
}
