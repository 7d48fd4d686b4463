package storeinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/Abraxas-365/talentdesk/pkg/errx"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
	"github.com/Abraxas-365/talentdesk/pkg/store"
	"github.com/jmoiron/sqlx"
)

// PostgresRepository implementación de PostgreSQL para store.Repository.
// Cada entidad se guarda como JSONB en ats_records; el orden de inserción
// lo conserva la columna position.
type PostgresRepository[T store.Entity[T]] struct {
	db     *sqlx.DB
	entity string
}

// NewPostgresRepository crea un repositorio para una colección
func NewPostgresRepository[T store.Entity[T]](db *sqlx.DB, entity string) *PostgresRepository[T] {
	return &PostgresRepository[T]{db: db, entity: entity}
}

type recordRow struct {
	ID   int64  `db:"id"`
	Data []byte `db:"data"`
}

func (r *PostgresRepository[T]) Entity() string {
	return r.entity
}

// List devuelve los registros en orden de inserción
func (r *PostgresRepository[T]) List(ctx context.Context) ([]T, error) {
	query := `
		SELECT id, data
		FROM ats_records
		WHERE entity = $1
		ORDER BY position ASC`

	var rows []recordRow
	if err := r.db.SelectContext(ctx, &rows, query, r.entity); err != nil {
		return nil, errx.Wrap(err, "failed to list records", errx.TypeInternal).
			WithDetail("entity", r.entity)
	}

	items := make([]T, 0, len(rows))
	for _, row := range rows {
		item, err := r.decode(row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Get busca un registro por ID
func (r *PostgresRepository[T]) Get(ctx context.Context, id kernel.RecordID) (T, error) {
	query := `
		SELECT id, data
		FROM ats_records
		WHERE entity = $1 AND id = $2`

	var zero T
	var row recordRow
	if err := r.db.GetContext(ctx, &row, query, r.entity, int64(id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, store.ErrNotFound(r.entity, id)
		}
		return zero, errx.Wrap(err, "failed to get record", errx.TypeInternal).
			WithDetail("entity", r.entity).
			WithDetail("id", int64(id))
	}
	return r.decode(row)
}

// Create reserva el siguiente ID de la secuencia y guarda el registro
func (r *PostgresRepository[T]) Create(ctx context.Context, item T) (T, error) {
	var zero T

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return zero, errx.Wrap(err, "failed to begin transaction", errx.TypeInternal)
	}
	defer func() { _ = tx.Rollback() }()

	var next int64
	nextQuery := `
		INSERT INTO ats_sequences (entity, last_id)
		VALUES ($1, 1)
		ON CONFLICT (entity) DO UPDATE SET last_id = ats_sequences.last_id + 1
		RETURNING last_id`
	if err := tx.GetContext(ctx, &next, nextQuery, r.entity); err != nil {
		return zero, errx.Wrap(err, "failed to allocate record id", errx.TypeInternal).
			WithDetail("entity", r.entity)
	}

	created := item.WithID(kernel.RecordID(next))
	data, err := json.Marshal(created)
	if err != nil {
		return zero, errx.Wrap(err, "failed to encode record", errx.TypeInternal).
			WithDetail("entity", r.entity)
	}

	insertQuery := `
		INSERT INTO ats_records (entity, id, data)
		VALUES ($1, $2, $3)`
	if _, err := tx.ExecContext(ctx, insertQuery, r.entity, next, data); err != nil {
		return zero, errx.Wrap(err, "failed to insert record", errx.TypeInternal).
			WithDetail("entity", r.entity).
			WithDetail("id", next)
	}

	if err := tx.Commit(); err != nil {
		return zero, errx.Wrap(err, "failed to commit record", errx.TypeInternal)
	}
	return created, nil
}

// Update reemplaza el registro manteniendo su posición
func (r *PostgresRepository[T]) Update(ctx context.Context, item T) (T, error) {
	var zero T
	id := item.GetID()

	data, err := json.Marshal(item)
	if err != nil {
		return zero, errx.Wrap(err, "failed to encode record", errx.TypeInternal).
			WithDetail("entity", r.entity)
	}

	query := `
		UPDATE ats_records
		SET data = $3, updated_at = NOW()
		WHERE entity = $1 AND id = $2`

	res, err := r.db.ExecContext(ctx, query, r.entity, int64(id), data)
	if err != nil {
		return zero, errx.Wrap(err, "failed to update record", errx.TypeInternal).
			WithDetail("entity", r.entity).
			WithDetail("id", int64(id))
	}
	if err := r.requireAffected(res, id); err != nil {
		return zero, err
	}
	return item, nil
}

// Delete elimina un registro; su ID no vuelve a asignarse
func (r *PostgresRepository[T]) Delete(ctx context.Context, id kernel.RecordID) error {
	query := `DELETE FROM ats_records WHERE entity = $1 AND id = $2`

	res, err := r.db.ExecContext(ctx, query, r.entity, int64(id))
	if err != nil {
		return errx.Wrap(err, "failed to delete record", errx.TypeInternal).
			WithDetail("entity", r.entity).
			WithDetail("id", int64(id))
	}
	return r.requireAffected(res, id)
}

// Seed inserta registros conservando sus IDs; los existentes se ignoran
func (r *PostgresRepository[T]) Seed(ctx context.Context, items ...T) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errx.Wrap(err, "failed to begin transaction", errx.TypeInternal)
	}
	defer func() { _ = tx.Rollback() }()

	insertQuery := `
		INSERT INTO ats_records (entity, id, data)
		VALUES ($1, $2, $3)
		ON CONFLICT (entity, id) DO NOTHING`
	bumpQuery := `
		INSERT INTO ats_sequences (entity, last_id)
		VALUES ($1, $2)
		ON CONFLICT (entity) DO UPDATE SET last_id = GREATEST(ats_sequences.last_id, EXCLUDED.last_id)`

	for _, item := range items {
		id := item.GetID()
		if id.IsZero() {
			return store.ErrMissingID(r.entity)
		}

		data, err := json.Marshal(item)
		if err != nil {
			return errx.Wrap(err, "failed to encode record", errx.TypeInternal).
				WithDetail("entity", r.entity)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, r.entity, int64(id), data); err != nil {
			return errx.Wrap(err, "failed to seed record", errx.TypeInternal).
				WithDetail("entity", r.entity).
				WithDetail("id", int64(id))
		}
		if _, err := tx.ExecContext(ctx, bumpQuery, r.entity, int64(id)); err != nil {
			return errx.Wrap(err, "failed to bump sequence", errx.TypeInternal).
				WithDetail("entity", r.entity)
		}
	}

	if err := tx.Commit(); err != nil {
		return errx.Wrap(err, "failed to commit seed", errx.TypeInternal)
	}
	return nil
}

// Count cuenta los registros de la colección
func (r *PostgresRepository[T]) Count(ctx context.Context) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM ats_records WHERE entity = $1`
	if err := r.db.GetContext(ctx, &n, query, r.entity); err != nil {
		return 0, errx.Wrap(err, "failed to count records", errx.TypeInternal).
			WithDetail("entity", r.entity)
	}
	return n, nil
}

func (r *PostgresRepository[T]) decode(row recordRow) (T, error) {
	var item T
	if err := json.Unmarshal(row.Data, &item); err != nil {
		return item, errx.Wrap(err, "failed to decode record", errx.TypeInternal).
			WithDetail("entity", r.entity).
			WithDetail("id", row.ID)
	}
	return item.WithID(kernel.RecordID(row.ID)), nil
}

func (r *PostgresRepository[T]) requireAffected(res sql.Result, id kernel.RecordID) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to read affected rows", errx.TypeInternal)
	}
	if n == 0 {
		return store.ErrNotFound(r.entity, id)
	}
	return nil
}
