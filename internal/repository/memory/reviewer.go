package memory

import (
	"context"

	"github.com/deppfellow/pokemon-review/internal/model"
	"github.com/deppfellow/pokemon-review/internal/sqlerr"
)

const tableReviewers = "reviewers"

type ReviewerRepo struct {
	s *Store
}

func (r *ReviewerRepo) GetReviewers(_ context.Context) ([]model.Reviewer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return sortedValues(r.s.reviewers, reviewerKey), nil
}

func (r *ReviewerRepo) GetReviewer(_ context.Context, id int) (*model.Reviewer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	reviewer, ok := r.s.reviewers[id]
	if !ok {
		return nil, sqlerr.NotFound(tableReviewers)
	}
	return &reviewer, nil
}

func (r *ReviewerRepo) FindReviewerByLastName(_ context.Context, lastName string) (*model.Reviewer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return findFirst(r.s.reviewers, reviewerKey, func(rv model.Reviewer) bool { return sameName(rv.LastName, lastName) }), nil
}

func (r *ReviewerRepo) ReviewerExists(_ context.Context, id int) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.reviewers[id]
	return ok, nil
}

func (r *ReviewerRepo) CreateReviewer(_ context.Context, reviewer *model.Reviewer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	reviewer.ID = r.s.allocID(tableReviewers)
	r.s.reviewers[reviewer.ID] = *reviewer
	return nil
}

func (r *ReviewerRepo) UpdateReviewer(_ context.Context, reviewer *model.Reviewer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.reviewers[reviewer.ID]; !ok {
		return sqlerr.NotFound(tableReviewers)
	}
	r.s.reviewers[reviewer.ID] = *reviewer
	return nil
}

func (r *ReviewerRepo) DeleteReviewer(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.reviewers[id]; !ok {
		return sqlerr.NotFound(tableReviewers)
	}
	for _, review := range r.s.reviews {
		if review.ReviewerID == id {
			return foreignKeyViolation(tableReviews, "reviewer_id", "reviews_reviewer_id_fkey")
		}
	}
	delete(r.s.reviewers, id)
	return nil
}
