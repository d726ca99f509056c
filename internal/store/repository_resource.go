package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/ametelin/fintrack/internal/logger"
)

// RowScanner abstracts *sql.Row and *sql.Rows so one scan function per
// schema serves both single- and multi-row queries.
type RowScanner interface {
	Scan(dest ...any) error
}

// Schema describes the table layout of one resource kind. It is the only
// per-kind knowledge the generic repository needs: everything else is the
// same five-operation CRUD contract.
type Schema[T any] struct {
	// Table is the table name.
	Table string

	// IDColumn is the primary key column.
	IDColumn string

	// Columns is the full select list, in scan order.
	Columns []string

	// SortColumn orders ListByUser results (descending).
	SortColumn string

	// Scan reads one row in Columns order into a record.
	Scan func(row RowScanner) (T, error)
}

// resourceRepository is the PostgreSQL-backed implementation of
// [ResourceRepository]. A single generic implementation serves all four
// resource kinds; queries are built with squirrel from the [Schema].
type resourceRepository[T any] struct {
	db     *DB
	schema Schema[T]
	logger *logger.Logger
}

// NewResourceRepository constructs a [ResourceRepository] for the given
// schema, backed by the provided database connection and logger.
func NewResourceRepository[T any](db *DB, schema Schema[T], logger *logger.Logger) ResourceRepository[T] {
	logger.Debug().Str("table", schema.Table).Msg("creating resource repository")
	return &resourceRepository[T]{
		db:     db,
		schema: schema,
		logger: logger,
	}
}

// ListByUser returns every record owned by userID, newest first according to
// the schema's sort column.
func (r *resourceRepository[T]) ListByUser(ctx context.Context, userID int64) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select(r.schema.Columns...).
		From(r.schema.Table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy(r.schema.SortColumn + " DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "resourceRepository.ListByUser").
			Str("table", r.schema.Table).
			Int64("user_id", userID).
			Msg("failed to execute list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]T, 0, 16)

	for rows.Next() {
		record, scanErr := r.schema.Scan(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "resourceRepository.ListByUser").
				Str("table", r.schema.Table).
				Int64("user_id", userID).
				Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "resourceRepository.ListByUser").
			Str("table", r.schema.Table).
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// Create inserts a record built from the given column/value map and returns
// the stored row, including server-assigned id and created_at.
func (r *resourceRepository[T]) Create(ctx context.Context, fields map[string]any) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	query, args, err := psql.
		Insert(r.schema.Table).
		SetMap(fields).
		Suffix("RETURNING " + strings.Join(r.schema.Columns, ", ")).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := r.schema.Scan(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "resourceRepository.Create").
			Str("table", r.schema.Table).
			Msg("failed to insert record")
		return zero, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return record, nil
}

// GetByID returns the record with the given primary key.
func (r *resourceRepository[T]) GetByID(ctx context.Context, id int64) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	query, args, err := psql.
		Select(r.schema.Columns...).
		From(r.schema.Table).
		Where(sq.Eq{r.schema.IDColumn: id}).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := r.schema.Scan(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrResourceNotFound
		}

		log.Err(err).
			Str("func", "resourceRepository.GetByID").
			Str("table", r.schema.Table).
			Int64("id", id).
			Msg("failed to fetch record")
		return zero, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}

// Update applies the given column/value changes to the record and returns
// the updated row. The changes map must be non-empty; partial semantics are
// the caller's concern — a column absent from changes keeps its stored value.
func (r *resourceRepository[T]) Update(ctx context.Context, id int64, changes map[string]any) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	if len(changes) == 0 {
		return zero, fmt.Errorf("%w: empty set clause", ErrBuildingSQLQuery)
	}

	query, args, err := psql.
		Update(r.schema.Table).
		SetMap(changes).
		Where(sq.Eq{r.schema.IDColumn: id}).
		Suffix("RETURNING " + strings.Join(r.schema.Columns, ", ")).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := r.schema.Scan(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrResourceNotFound
		}

		log.Err(err).
			Str("func", "resourceRepository.Update").
			Str("table", r.schema.Table).
			Int64("id", id).
			Msg("failed to update record")
		return zero, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return record, nil
}

// Delete removes the record permanently. A delete that affects no rows
// reports [ErrResourceNotFound]; the record may have been removed by a
// concurrent request after the caller's existence check.
func (r *resourceRepository[T]) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Delete(r.schema.Table).
		Where(sq.Eq{r.schema.IDColumn: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "resourceRepository.Delete").
			Str("table", r.schema.Table).
			Int64("id", id).
			Msg("failed to delete record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrResourceNotFound
	}

	return nil
}
