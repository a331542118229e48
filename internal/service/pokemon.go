package service

import (
	"context"

	"github.com/deppfellow/pokemon-review/internal/dto"
	"github.com/deppfellow/pokemon-review/internal/mapping"
	"github.com/deppfellow/pokemon-review/internal/repository"
	"github.com/deppfellow/pokemon-review/internal/server"
	"github.com/rs/zerolog"
)

type PokemonService struct {
	server  *server.Server
	repos   *repository.Repositories
	reviews *ReviewService
	queue   ReviewPurgeQueue
}

// NewPokemonService wires the pokemon operations. queue may be nil, in which
// case a failed review cascade is only logged.
func NewPokemonService(s *server.Server, repos *repository.Repositories, reviews *ReviewService, queue ReviewPurgeQueue) *PokemonService {
	return &PokemonService{server: s, repos: repos, reviews: reviews, queue: queue}
}

func (s *PokemonService) GetPokemons(ctx context.Context) ([]dto.PokemonDto, error) {
	pokemons, err := s.repos.Pokemon.GetPokemons(ctx)
	if err != nil {
		return nil, err
	}
	return mapping.PokemonsToDto(pokemons), nil
}

func (s *PokemonService) GetPokemon(ctx context.Context, id int) (*dto.PokemonDto, error) {
	if err := requireExists(ctx, s.repos.Pokemon.PokemonExists, id, "Pokemon"); err != nil {
		return nil, err
	}

	pokemon, err := s.repos.Pokemon.GetPokemon(ctx, id)
	if err != nil {
		return nil, err
	}
	out := mapping.PokemonToDto(*pokemon)
	return &out, nil
}

func (s *PokemonService) GetPokemonRating(ctx context.Context, id int) (dto.RatingDto, error) {
	if err := requireExists(ctx, s.repos.Pokemon.PokemonExists, id, "Pokemon"); err != nil {
		return "", err
	}

	rating, err := s.repos.Pokemon.GetPokemonRating(ctx, id)
	if err != nil {
		return "", err
	}
	return mapping.RatingToDto(rating), nil
}

func (s *PokemonService) CreatePokemon(ctx context.Context, ownerID, categoryID int, create dto.PokemonDto) error {
	existing, err := s.repos.Pokemon.FindPokemonByName(ctx, create.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return duplicate("Pokemon")
	}

	if err := requireExists(ctx, s.repos.Owner.OwnerExists, ownerID, "Owner"); err != nil {
		return err
	}
	if err := requireExists(ctx, s.repos.Category.CategoryExists, categoryID, "Category"); err != nil {
		return err
	}

	pokemon := mapping.PokemonFromDto(create)
	pokemon.ID = 0
	if err := s.repos.Pokemon.CreatePokemon(ctx, ownerID, categoryID, &pokemon); err != nil {
		return storeFailure(ctx, err, "Something went wrong while saving")
	}

	zerolog.Ctx(ctx).Info().Int("pokemon_id", pokemon.ID).Msg("pokemon created")
	return nil
}

// UpdatePokemon rewrites name and birth date. A non-zero ownerID or
// categoryID adds that link; existing links are kept.
func (s *PokemonService) UpdatePokemon(ctx context.Context, ownerID, categoryID int, update dto.PokemonDto) error {
	if err := requireExists(ctx, s.repos.Pokemon.PokemonExists, update.ID, "Pokemon"); err != nil {
		return err
	}
	if ownerID > 0 {
		if err := requireExists(ctx, s.repos.Owner.OwnerExists, ownerID, "Owner"); err != nil {
			return err
		}
	}
	if categoryID > 0 {
		if err := requireExists(ctx, s.repos.Category.CategoryExists, categoryID, "Category"); err != nil {
			return err
		}
	}

	pokemon := mapping.PokemonFromDto(update)
	if err := s.repos.Pokemon.UpdatePokemon(ctx, ownerID, categoryID, &pokemon); err != nil {
		return storeFailure(ctx, err, "Something went wrong updating pokemon")
	}
	return nil
}

// DeletePokemon removes the pokemon's reviews and then the pokemon. The two
// steps are independent: a failed review deletion is logged, handed to the
// purge queue when one is configured, and the pokemon deletion still runs.
func (s *PokemonService) DeletePokemon(ctx context.Context, id int) error {
	if err := requireExists(ctx, s.repos.Pokemon.PokemonExists, id, "Pokemon"); err != nil {
		return err
	}

	logger := zerolog.Ctx(ctx).With().Int("pokemon_id", id).Logger()

	if err := s.reviews.deleteReviewsOfPokemon(ctx, id); err != nil {
		logger.Warn().Err(err).Msg("Something went wrong when deleting reviews")
		s.enqueuePurge(ctx, id)
	}

	if err := s.repos.Pokemon.DeletePokemon(ctx, id); err != nil {
		return storeFailure(ctx, err, "Something went wrong deleting pokemon")
	}

	logger.Info().Msg("pokemon deleted")
	return nil
}

func (s *PokemonService) enqueuePurge(ctx context.Context, pokemonID int) {
	if s.queue == nil {
		return
	}
	if err := s.queue.EnqueueReviewPurge(ctx, pokemonID); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int("pokemon_id", pokemonID).Msg("failed to enqueue review purge")
	}
}
