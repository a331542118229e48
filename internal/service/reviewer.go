package service

import (
	"context"

	"github.com/deppfellow/pokemon-review/internal/dto"
	"github.com/deppfellow/pokemon-review/internal/mapping"
	"github.com/deppfellow/pokemon-review/internal/repository"
	"github.com/deppfellow/pokemon-review/internal/server"
	"github.com/rs/zerolog"
)

type ReviewerService struct {
	server  *server.Server
	repos   *repository.Repositories
	reviews *ReviewService
}

func NewReviewerService(s *server.Server, repos *repository.Repositories, reviews *ReviewService) *ReviewerService {
	return &ReviewerService{server: s, repos: repos, reviews: reviews}
}

func (s *ReviewerService) GetReviewers(ctx context.Context) ([]dto.ReviewerDto, error) {
	reviewers, err := s.repos.Reviewer.GetReviewers(ctx)
	if err != nil {
		return nil, err
	}
	return mapping.ReviewersToDto(reviewers), nil
}

func (s *ReviewerService) GetReviewer(ctx context.Context, id int) (*dto.ReviewerDto, error) {
	if err := requireExists(ctx, s.repos.Reviewer.ReviewerExists, id, "Reviewer"); err != nil {
		return nil, err
	}

	reviewer, err := s.repos.Reviewer.GetReviewer(ctx, id)
	if err != nil {
		return nil, err
	}
	out := mapping.ReviewerToDto(*reviewer)
	return &out, nil
}

func (s *ReviewerService) GetReviewsByReviewer(ctx context.Context, reviewerID int) ([]dto.ReviewDto, error) {
	return s.reviews.GetReviewsByReviewer(ctx, reviewerID)
}

// CreateReviewer rejects a last name that is already taken.
func (s *ReviewerService) CreateReviewer(ctx context.Context, create dto.ReviewerDto) error {
	existing, err := s.repos.Reviewer.FindReviewerByLastName(ctx, create.LastName)
	if err != nil {
		return err
	}
	if existing != nil {
		return duplicate("Reviewer")
	}

	reviewer := mapping.ReviewerFromDto(create)
	reviewer.ID = 0
	if err := s.repos.Reviewer.CreateReviewer(ctx, &reviewer); err != nil {
		return storeFailure(ctx, err, "Something went wrong while saving")
	}
	return nil
}

func (s *ReviewerService) UpdateReviewer(ctx context.Context, update dto.ReviewerDto) error {
	if err := requireExists(ctx, s.repos.Reviewer.ReviewerExists, update.ID, "Reviewer"); err != nil {
		return err
	}

	reviewer := mapping.ReviewerFromDto(update)
	if err := s.repos.Reviewer.UpdateReviewer(ctx, &reviewer); err != nil {
		return storeFailure(ctx, err, "Something went wrong updating reviewer")
	}
	return nil
}

// DeleteReviewer removes the reviewer's reviews first. A failed review
// deletion is logged; the reviewer deletion is attempted regardless and the
// store refuses it while reviews still point at the reviewer.
func (s *ReviewerService) DeleteReviewer(ctx context.Context, id int) error {
	if err := requireExists(ctx, s.repos.Reviewer.ReviewerExists, id, "Reviewer"); err != nil {
		return err
	}

	if err := s.reviews.deleteReviewsByReviewer(ctx, id); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int("reviewer_id", id).Msg("Something went wrong when deleting reviews")
	}

	if err := s.repos.Reviewer.DeleteReviewer(ctx, id); err != nil {
		return storeFailure(ctx, err, "Something went wrong deleting reviewer")
	}
	return nil
}
