// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, runs the
// existence-gated mutation workflow, and calls repository
// methods to interact with the data.
//
// Every mutation follows the same steps: check that referenced
// records exist (404), reject name collisions on create (422),
// apply the change, and report a store failure as a 500 whose
// message names the failed step. Checks and mutations are
// separate store calls, so a concurrent writer can slip in
// between them.
package service

import (
	"context"
	"strings"

	"github.com/deppfellow/pokemon-review/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type existsFunc func(ctx context.Context, id int) (bool, error)

// requireExists returns a 404 naming entity when id is absent.
func requireExists(ctx context.Context, exists existsFunc, id int, entity string) error {
	found, err := exists(ctx, id)
	if err != nil {
		return errors.Wrapf(err, "check %s exists", strings.ToLower(entity))
	}
	if !found {
		return errs.NewNotFoundError(entity+" not found", true, nil)
	}
	return nil
}

func duplicate(entity string) error {
	return errs.NewUnprocessableEntityError(entity+" already exists", true)
}

// storeFailure logs err and hides it behind a 500 carrying message. A row
// that vanished since the existence check stays a not-found.
func storeFailure(ctx context.Context, err error, message string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	zerolog.Ctx(ctx).Error().Stack().Err(err).Msg(message)
	return errs.NewStoreFailureError(message)
}
