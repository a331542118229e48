package repository

import (
	"context"

	"github.com/deppfellow/pokemon-review/internal/model"
)

type ReviewerRepo struct {
	db DBTX
}

func NewReviewerRepository(db DBTX) *ReviewerRepo {
	return &ReviewerRepo{db: db}
}

func (r *ReviewerRepo) GetReviewers(ctx context.Context) ([]model.Reviewer, error) {
	return collectAll[model.Reviewer](ctx, r.db,
		`SELECT id, first_name, last_name FROM reviewers ORDER BY id`)
}

func (r *ReviewerRepo) GetReviewer(ctx context.Context, id int) (*model.Reviewer, error) {
	return collectOne[model.Reviewer](ctx, r.db, tableReviewers,
		`SELECT id, first_name, last_name FROM reviewers WHERE id = $1`, id)
}

func (r *ReviewerRepo) FindReviewerByLastName(ctx context.Context, lastName string) (*model.Reviewer, error) {
	return findOne[model.Reviewer](ctx, r.db, tableReviewers, `
		SELECT id, first_name, last_name FROM reviewers
		WHERE upper(trim(last_name)) = upper(trim($1))
		ORDER BY id LIMIT 1`, lastName)
}

func (r *ReviewerRepo) ReviewerExists(ctx context.Context, id int) (bool, error) {
	return exists(ctx, r.db, tableReviewers, id)
}

func (r *ReviewerRepo) CreateReviewer(ctx context.Context, reviewer *model.Reviewer) error {
	return insertReturningID(ctx, r.db, tableReviewers, &reviewer.ID,
		`INSERT INTO reviewers (first_name, last_name) VALUES ($1, $2) RETURNING id`,
		reviewer.FirstName, reviewer.LastName)
}

func (r *ReviewerRepo) UpdateReviewer(ctx context.Context, reviewer *model.Reviewer) error {
	return execOne(ctx, r.db, tableReviewers,
		`UPDATE reviewers SET first_name = $2, last_name = $3 WHERE id = $1`,
		reviewer.ID, reviewer.FirstName, reviewer.LastName)
}

// DeleteReviewer fails with a foreign key violation while reviews still
// reference the reviewer.
func (r *ReviewerRepo) DeleteReviewer(ctx context.Context, id int) error {
	return execOne(ctx, r.db, tableReviewers, `DELETE FROM reviewers WHERE id = $1`, id)
}
