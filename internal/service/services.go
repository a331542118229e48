package service

import (
	"context"

	"github.com/deppfellow/pokemon-review/internal/lib/job"
	"github.com/deppfellow/pokemon-review/internal/repository"
	"github.com/deppfellow/pokemon-review/internal/server"
)

// ReviewPurgeQueue schedules a background retry of a failed review cascade.
type ReviewPurgeQueue interface {
	EnqueueReviewPurge(ctx context.Context, pokemonID int) error
}

type Services struct {
	Category *CategoryService
	Country  *CountryService
	Owner    *OwnerService
	Pokemon  *PokemonService
	Review   *ReviewService
	Reviewer *ReviewerService
	Job      *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	var queue ReviewPurgeQueue
	if s.Job != nil {
		queue = s.Job
	}

	reviews := NewReviewService(s, repos)

	return &Services{
		Category: NewCategoryService(s, repos),
		Country:  NewCountryService(s, repos),
		Owner:    NewOwnerService(s, repos),
		Pokemon:  NewPokemonService(s, repos, reviews, queue),
		Review:   reviews,
		Reviewer: NewReviewerService(s, repos, reviews),
		Job:      s.Job,
	}
}
