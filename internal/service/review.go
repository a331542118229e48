package service

import (
	"context"

	"github.com/deppfellow/pokemon-review/internal/dto"
	"github.com/deppfellow/pokemon-review/internal/mapping"
	"github.com/deppfellow/pokemon-review/internal/model"
	"github.com/deppfellow/pokemon-review/internal/repository"
	"github.com/deppfellow/pokemon-review/internal/server"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type ReviewService struct {
	server *server.Server
	repos  *repository.Repositories
}

func NewReviewService(s *server.Server, repos *repository.Repositories) *ReviewService {
	return &ReviewService{server: s, repos: repos}
}

func (s *ReviewService) GetReviews(ctx context.Context) ([]dto.ReviewDto, error) {
	reviews, err := s.repos.Review.GetReviews(ctx)
	if err != nil {
		return nil, err
	}
	return mapping.ReviewsToDto(reviews), nil
}

func (s *ReviewService) GetReview(ctx context.Context, id int) (*dto.ReviewDto, error) {
	if err := requireExists(ctx, s.repos.Review.ReviewExists, id, "Review"); err != nil {
		return nil, err
	}

	review, err := s.repos.Review.GetReview(ctx, id)
	if err != nil {
		return nil, err
	}
	out := mapping.ReviewToDto(*review)
	return &out, nil
}

func (s *ReviewService) GetReviewsOfAPokemon(ctx context.Context, pokemonID int) ([]dto.ReviewDto, error) {
	if err := requireExists(ctx, s.repos.Pokemon.PokemonExists, pokemonID, "Pokemon"); err != nil {
		return nil, err
	}

	reviews, err := s.repos.Review.GetReviewsOfAPokemon(ctx, pokemonID)
	if err != nil {
		return nil, err
	}
	return mapping.ReviewsToDto(reviews), nil
}

func (s *ReviewService) GetReviewsByReviewer(ctx context.Context, reviewerID int) ([]dto.ReviewDto, error) {
	if err := requireExists(ctx, s.repos.Reviewer.ReviewerExists, reviewerID, "Reviewer"); err != nil {
		return nil, err
	}

	reviews, err := s.repos.Review.GetReviewsByReviewer(ctx, reviewerID)
	if err != nil {
		return nil, err
	}
	return mapping.ReviewsToDto(reviews), nil
}

func (s *ReviewService) CreateReview(ctx context.Context, reviewerID, pokemonID int, create dto.ReviewDto) error {
	existing, err := s.repos.Review.FindReviewByTitle(ctx, create.Title)
	if err != nil {
		return err
	}
	if existing != nil {
		return duplicate("Review")
	}

	if err := requireExists(ctx, s.repos.Reviewer.ReviewerExists, reviewerID, "Reviewer"); err != nil {
		return err
	}
	if err := requireExists(ctx, s.repos.Pokemon.PokemonExists, pokemonID, "Pokemon"); err != nil {
		return err
	}

	review := mapping.ReviewFromDto(create)
	review.ID = 0
	review.ReviewerID = reviewerID
	review.PokemonID = pokemonID
	if err := s.repos.Review.CreateReview(ctx, &review); err != nil {
		return storeFailure(ctx, err, "Something went wrong while saving")
	}
	return nil
}

// UpdateReview changes title, text and rating; the reviewer and pokemon of
// a review are fixed at creation.
func (s *ReviewService) UpdateReview(ctx context.Context, update dto.ReviewDto) error {
	if err := requireExists(ctx, s.repos.Review.ReviewExists, update.ID, "Review"); err != nil {
		return err
	}

	review := mapping.ReviewFromDto(update)
	if err := s.repos.Review.UpdateReview(ctx, &review); err != nil {
		return storeFailure(ctx, err, "Something went wrong updating review")
	}
	return nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, id int) error {
	if err := requireExists(ctx, s.repos.Review.ReviewExists, id, "Review"); err != nil {
		return err
	}

	if err := s.repos.Review.DeleteReview(ctx, id); err != nil {
		return storeFailure(ctx, err, "Something went wrong deleting review")
	}
	return nil
}

// DeleteReviewsByReviewer removes every review the reviewer wrote.
func (s *ReviewService) DeleteReviewsByReviewer(ctx context.Context, reviewerID int) error {
	if err := requireExists(ctx, s.repos.Reviewer.ReviewerExists, reviewerID, "Reviewer"); err != nil {
		return err
	}

	if err := s.deleteReviewsByReviewer(ctx, reviewerID); err != nil {
		return storeFailure(ctx, err, "Something went wrong when deleting reviews")
	}
	return nil
}

// PurgeReviewsOfPokemon is the review:purge job body. It removes whatever
// reviews still reference the pokemon.
func (s *ReviewService) PurgeReviewsOfPokemon(ctx context.Context, pokemonID int) (int, error) {
	removed, err := s.repos.Review.DeleteReviewsOfPokemon(ctx, pokemonID)
	if err != nil {
		return 0, errors.Wrapf(err, "purge reviews of pokemon %d", pokemonID)
	}

	zerolog.Ctx(ctx).Info().
		Int("pokemon_id", pokemonID).
		Int("removed", removed).
		Msg("purged reviews")

	return removed, nil
}

func (s *ReviewService) deleteReviewsOfPokemon(ctx context.Context, pokemonID int) error {
	reviews, err := s.repos.Review.GetReviewsOfAPokemon(ctx, pokemonID)
	if err != nil {
		return errors.Wrap(err, "list reviews of pokemon")
	}
	return s.deleteAll(ctx, reviews)
}

func (s *ReviewService) deleteReviewsByReviewer(ctx context.Context, reviewerID int) error {
	reviews, err := s.repos.Review.GetReviewsByReviewer(ctx, reviewerID)
	if err != nil {
		return errors.Wrap(err, "list reviews of reviewer")
	}
	return s.deleteAll(ctx, reviews)
}

func (s *ReviewService) deleteAll(ctx context.Context, reviews []model.Review) error {
	if len(reviews) == 0 {
		return nil
	}

	ids := make([]int, len(reviews))
	for i, r := range reviews {
		ids[i] = r.ID
	}
	return errors.Wrap(s.repos.Review.DeleteReviews(ctx, ids), "delete reviews")
}
