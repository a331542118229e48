package service

import (
	"context"

	"github.com/deppfellow/pokemon-review/internal/dto"
	"github.com/deppfellow/pokemon-review/internal/mapping"
	"github.com/deppfellow/pokemon-review/internal/model"
	"github.com/deppfellow/pokemon-review/internal/repository"
	"github.com/deppfellow/pokemon-review/internal/server"
)

type CountryService struct {
	server *server.Server
	repos  *repository.Repositories
}

func NewCountryService(s *server.Server, repos *repository.Repositories) *CountryService {
	return &CountryService{server: s, repos: repos}
}

func (s *CountryService) GetCountries(ctx context.Context) ([]dto.CountryDto, error) {
	countries, err := s.repos.Country.GetCountries(ctx)
	if err != nil {
		return nil, err
	}
	return mapping.CountriesToDto(countries), nil
}

func (s *CountryService) GetCountry(ctx context.Context, id int) (*dto.CountryDto, error) {
	if err := requireExists(ctx, s.repos.Country.CountryExists, id, "Country"); err != nil {
		return nil, err
	}

	country, err := s.repos.Country.GetCountry(ctx, id)
	if err != nil {
		return nil, err
	}
	out := mapping.CountryToDto(*country)
	return &out, nil
}

func (s *CountryService) GetCountryOfAnOwner(ctx context.Context, ownerID int) (*dto.CountryDto, error) {
	if err := requireExists(ctx, s.repos.Owner.OwnerExists, ownerID, "Owner"); err != nil {
		return nil, err
	}

	country, err := s.repos.Country.GetCountryByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := mapping.CountryToDto(*country)
	return &out, nil
}

func (s *CountryService) GetOwnersFromACountry(ctx context.Context, countryID int) ([]dto.OwnerDto, error) {
	if err := requireExists(ctx, s.repos.Country.CountryExists, countryID, "Country"); err != nil {
		return nil, err
	}

	owners, err := s.repos.Country.GetOwnersFromCountry(ctx, countryID)
	if err != nil {
		return nil, err
	}
	return mapping.OwnersToDto(owners), nil
}

func (s *CountryService) CreateCountry(ctx context.Context, name string) error {
	existing, err := s.repos.Country.FindCountryByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil {
		return duplicate("Country")
	}

	country := model.Country{Name: name}
	if err := s.repos.Country.CreateCountry(ctx, &country); err != nil {
		return storeFailure(ctx, err, "Something went wrong while saving")
	}
	return nil
}

func (s *CountryService) UpdateCountry(ctx context.Context, update dto.CountryDto) error {
	if err := requireExists(ctx, s.repos.Country.CountryExists, update.ID, "Country"); err != nil {
		return err
	}

	country := mapping.CountryFromDto(update)
	if err := s.repos.Country.UpdateCountry(ctx, &country); err != nil {
		return storeFailure(ctx, err, "Something went wrong updating country")
	}
	return nil
}

// DeleteCountry fails with a 500 while owners still belong to the country.
func (s *CountryService) DeleteCountry(ctx context.Context, id int) error {
	if err := requireExists(ctx, s.repos.Country.CountryExists, id, "Country"); err != nil {
		return err
	}

	if err := s.repos.Country.DeleteCountry(ctx, id); err != nil {
		return storeFailure(ctx, err, "Something went wrong deleting country")
	}
	return nil
}
