package service

import (
	"context"

	"github.com/deppfellow/pokemon-review/internal/dto"
	"github.com/deppfellow/pokemon-review/internal/mapping"
	"github.com/deppfellow/pokemon-review/internal/repository"
	"github.com/deppfellow/pokemon-review/internal/server"
)

type OwnerService struct {
	server *server.Server
	repos  *repository.Repositories
}

func NewOwnerService(s *server.Server, repos *repository.Repositories) *OwnerService {
	return &OwnerService{server: s, repos: repos}
}

func (s *OwnerService) GetOwners(ctx context.Context) ([]dto.OwnerDto, error) {
	owners, err := s.repos.Owner.GetOwners(ctx)
	if err != nil {
		return nil, err
	}
	return mapping.OwnersToDto(owners), nil
}

func (s *OwnerService) GetOwner(ctx context.Context, id int) (*dto.OwnerDto, error) {
	if err := requireExists(ctx, s.repos.Owner.OwnerExists, id, "Owner"); err != nil {
		return nil, err
	}

	owner, err := s.repos.Owner.GetOwner(ctx, id)
	if err != nil {
		return nil, err
	}
	out := mapping.OwnerToDto(*owner)
	return &out, nil
}

func (s *OwnerService) GetPokemonByOwner(ctx context.Context, ownerID int) ([]dto.PokemonDto, error) {
	if err := requireExists(ctx, s.repos.Owner.OwnerExists, ownerID, "Owner"); err != nil {
		return nil, err
	}

	pokemons, err := s.repos.Owner.GetPokemonByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return mapping.PokemonsToDto(pokemons), nil
}

func (s *OwnerService) GetOwnersOfAPokemon(ctx context.Context, pokemonID int) ([]dto.OwnerDto, error) {
	if err := requireExists(ctx, s.repos.Pokemon.PokemonExists, pokemonID, "Pokemon"); err != nil {
		return nil, err
	}

	owners, err := s.repos.Owner.GetOwnersOfAPokemon(ctx, pokemonID)
	if err != nil {
		return nil, err
	}
	return mapping.OwnersToDto(owners), nil
}

func (s *OwnerService) CreateOwner(ctx context.Context, countryID int, create dto.OwnerDto) error {
	existing, err := s.repos.Owner.FindOwnerByName(ctx, create.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return duplicate("Owner")
	}

	if err := requireExists(ctx, s.repos.Country.CountryExists, countryID, "Country"); err != nil {
		return err
	}

	owner := mapping.OwnerFromDto(create)
	owner.ID = 0
	owner.CountryID = countryID
	if err := s.repos.Owner.CreateOwner(ctx, &owner); err != nil {
		return storeFailure(ctx, err, "Something went wrong while saving")
	}
	return nil
}

func (s *OwnerService) UpdateOwner(ctx context.Context, countryID int, update dto.OwnerDto) error {
	if err := requireExists(ctx, s.repos.Owner.OwnerExists, update.ID, "Owner"); err != nil {
		return err
	}
	if err := requireExists(ctx, s.repos.Country.CountryExists, countryID, "Country"); err != nil {
		return err
	}

	owner := mapping.OwnerFromDto(update)
	owner.CountryID = countryID
	if err := s.repos.Owner.UpdateOwner(ctx, &owner); err != nil {
		return storeFailure(ctx, err, "Something went wrong updating owner")
	}
	return nil
}

func (s *OwnerService) DeleteOwner(ctx context.Context, id int) error {
	if err := requireExists(ctx, s.repos.Owner.OwnerExists, id, "Owner"); err != nil {
		return err
	}

	if err := s.repos.Owner.DeleteOwner(ctx, id); err != nil {
		return storeFailure(ctx, err, "Something went wrong deleting owner")
	}
	return nil
}
