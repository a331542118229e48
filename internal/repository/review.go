package repository

import (
	"context"

	"github.com/deppfellow/pokemon-review/internal/model"
	"github.com/pkg/errors"
)

const reviewColumns = `id, title, text, rating, pokemon_id, reviewer_id`

type ReviewRepo struct {
	db DBTX
}

func NewReviewRepository(db DBTX) *ReviewRepo {
	return &ReviewRepo{db: db}
}

func (r *ReviewRepo) GetReviews(ctx context.Context) ([]model.Review, error) {
	return collectAll[model.Review](ctx, r.db, `SELECT `+reviewColumns+` FROM reviews ORDER BY id`)
}

func (r *ReviewRepo) GetReview(ctx context.Context, id int) (*model.Review, error) {
	return collectOne[model.Review](ctx, r.db, tableReviews,
		`SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id)
}

func (r *ReviewRepo) FindReviewByTitle(ctx context.Context, title string) (*model.Review, error) {
	return findOne[model.Review](ctx, r.db, tableReviews,
		`SELECT `+reviewColumns+` FROM reviews WHERE upper(trim(title)) = upper(trim($1)) ORDER BY id LIMIT 1`, title)
}

func (r *ReviewRepo) ReviewExists(ctx context.Context, id int) (bool, error) {
	return exists(ctx, r.db, tableReviews, id)
}

func (r *ReviewRepo) GetReviewsOfAPokemon(ctx context.Context, pokemonID int) ([]model.Review, error) {
	return collectAll[model.Review](ctx, r.db,
		`SELECT `+reviewColumns+` FROM reviews WHERE pokemon_id = $1 ORDER BY id`, pokemonID)
}

func (r *ReviewRepo) GetReviewsByReviewer(ctx context.Context, reviewerID int) ([]model.Review, error) {
	return collectAll[model.Review](ctx, r.db,
		`SELECT `+reviewColumns+` FROM reviews WHERE reviewer_id = $1 ORDER BY id`, reviewerID)
}

func (r *ReviewRepo) CreateReview(ctx context.Context, review *model.Review) error {
	return insertReturningID(ctx, r.db, tableReviews, &review.ID, `
		INSERT INTO reviews (title, text, rating, pokemon_id, reviewer_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		review.Title, review.Text, review.Rating, review.PokemonID, review.ReviewerID)
}

// UpdateReview changes title, text and rating; the pokemon and reviewer of a
// review are fixed at creation.
func (r *ReviewRepo) UpdateReview(ctx context.Context, review *model.Review) error {
	return execOne(ctx, r.db, tableReviews,
		`UPDATE reviews SET title = $2, text = $3, rating = $4 WHERE id = $1`,
		review.ID, review.Title, review.Text, review.Rating)
}

func (r *ReviewRepo) DeleteReview(ctx context.Context, id int) error {
	return execOne(ctx, r.db, tableReviews, `DELETE FROM reviews WHERE id = $1`, id)
}

func (r *ReviewRepo) DeleteReviews(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = ANY($1)`, ids); err != nil {
		return errors.Wrap(err, "delete reviews")
	}
	return nil
}

func (r *ReviewRepo) DeleteReviewsOfPokemon(ctx context.Context, pokemonID int) (int, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE pokemon_id = $1`, pokemonID)
	if err != nil {
		return 0, errors.Wrap(err, "delete reviews of pokemon")
	}
	return int(tag.RowsAffected()), nil
}
