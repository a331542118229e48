package memory

import (
	"context"

	"github.com/deppfellow/pokemon-review/internal/model"
	"github.com/deppfellow/pokemon-review/internal/sqlerr"
)

const tableReviews = "reviews"

type ReviewRepo struct {
	s *Store
}

func (r *ReviewRepo) GetReviews(_ context.Context) ([]model.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return sortedValues(r.s.reviews, reviewKey), nil
}

func (r *ReviewRepo) GetReview(_ context.Context, id int) (*model.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	review, ok := r.s.reviews[id]
	if !ok {
		return nil, sqlerr.NotFound(tableReviews)
	}
	return &review, nil
}

func (r *ReviewRepo) FindReviewByTitle(_ context.Context, title string) (*model.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return findFirst(r.s.reviews, reviewKey, func(review model.Review) bool { return sameName(review.Title, title) }), nil
}

func (r *ReviewRepo) ReviewExists(_ context.Context, id int) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.reviews[id]
	return ok, nil
}

func (r *ReviewRepo) GetReviewsOfAPokemon(_ context.Context, pokemonID int) ([]model.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filterSorted(r.s.reviews, reviewKey, func(review model.Review) bool { return review.PokemonID == pokemonID }), nil
}

func (r *ReviewRepo) GetReviewsByReviewer(_ context.Context, reviewerID int) ([]model.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filterSorted(r.s.reviews, reviewKey, func(review model.Review) bool { return review.ReviewerID == reviewerID }), nil
}

// checkReview applies the reviews table constraints. Callers hold mu.
func (r *ReviewRepo) checkReview(review *model.Review) error {
	if review.Rating < model.MinRating || review.Rating > model.MaxRating {
		return checkViolation(tableReviews, "rating", "reviews_rating_check")
	}
	if _, ok := r.s.pokemon[review.PokemonID]; !ok {
		return foreignKeyViolation(tableReviews, "pokemon_id", "reviews_pokemon_id_fkey")
	}
	if _, ok := r.s.reviewers[review.ReviewerID]; !ok {
		return foreignKeyViolation(tableReviews, "reviewer_id", "reviews_reviewer_id_fkey")
	}
	return nil
}

func (r *ReviewRepo) CreateReview(_ context.Context, review *model.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkReview(review); err != nil {
		return err
	}
	review.ID = r.s.allocID(tableReviews)
	r.s.reviews[review.ID] = *review
	return nil
}

func (r *ReviewRepo) UpdateReview(_ context.Context, review *model.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.reviews[review.ID]
	if !ok {
		return sqlerr.NotFound(tableReviews)
	}

	current.Title = review.Title
	current.Text = review.Text
	current.Rating = review.Rating
	if err := r.checkReview(&current); err != nil {
		return err
	}
	r.s.reviews[review.ID] = current
	return nil
}

func (r *ReviewRepo) DeleteReview(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.reviews[id]; !ok {
		return sqlerr.NotFound(tableReviews)
	}
	delete(r.s.reviews, id)
	return nil
}

func (r *ReviewRepo) DeleteReviews(_ context.Context, ids []int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, id := range ids {
		delete(r.s.reviews, id)
	}
	return nil
}

func (r *ReviewRepo) DeleteReviewsOfPokemon(_ context.Context, pokemonID int) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	removed := 0
	for id, review := range r.s.reviews {
		if review.PokemonID == pokemonID {
			delete(r.s.reviews, id)
			removed++
		}
	}
	return removed, nil
}
