package repository

import (
	"context"

	"github.com/deppfellow/pokemon-review/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

const (
	tableCategories = "categories"
	tableCountries  = "countries"
	tableOwners     = "owners"
	tablePokemon    = "pokemon"
	tableReviews    = "reviews"
	tableReviewers  = "reviewers"
)

// collectAll runs query and scans every row into a T by column name. An
// empty result is an empty, non-nil slice so it encodes as [].
func collectAll[T any](ctx context.Context, db DBTX, query string, args ...any) ([]T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query")
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, errors.Wrap(err, "collect rows")
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// collectOne scans exactly one row. No row is sqlerr.NotFound(table).
func collectOne[T any](ctx context.Context, db DBTX, table, query string, args ...any) (*T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query")
	}

	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sqlerr.NotFound(table)
		}
		return nil, errors.Wrap(err, "collect row")
	}
	return item, nil
}

// findOne is collectOne with (nil, nil) for no row.
func findOne[T any](ctx context.Context, db DBTX, table, query string, args ...any) (*T, error) {
	item, err := collectOne[T](ctx, db, table, query, args...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return item, err
}

func exists(ctx context.Context, db DBTX, table string, id int) (bool, error) {
	var found bool
	err := db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM "+table+" WHERE id = $1)", id).Scan(&found)
	if err != nil {
		return false, errors.Wrapf(err, "check %s exists", table)
	}
	return found, nil
}

// execOne runs a statement that must touch at least one row of table.
func execOne(ctx context.Context, db DBTX, table, query string, args ...any) error {
	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return errors.Wrapf(err, "exec on %s", table)
	}
	if tag.RowsAffected() == 0 {
		return sqlerr.NotFound(table)
	}
	return nil
}

// insertReturningID runs an INSERT ... RETURNING id and stores the id.
func insertReturningID(ctx context.Context, db DBTX, table string, id *int, query string, args ...any) error {
	if err := db.QueryRow(ctx, query, args...).Scan(id); err != nil {
		return errors.Wrapf(err, "insert into %s", table)
	}
	return nil
}

// updateReturningID is insertReturningID for UPDATE; no row is NotFound.
func updateReturningID(ctx context.Context, db DBTX, table string, query string, args ...any) error {
	var id int
	err := db.QueryRow(ctx, query, args...).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return sqlerr.NotFound(table)
	}
	if err != nil {
		return errors.Wrapf(err, "update %s", table)
	}
	return nil
}
