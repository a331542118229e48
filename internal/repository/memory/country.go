package memory

import (
	"context"

	"github.com/deppfellow/pokemon-review/internal/model"
	"github.com/deppfellow/pokemon-review/internal/sqlerr"
)

const tableCountries = "countries"

type CountryRepo struct {
	s *Store
}

func (r *CountryRepo) GetCountries(_ context.Context) ([]model.Country, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return sortedValues(r.s.countries, countryKey), nil
}

func (r *CountryRepo) GetCountry(_ context.Context, id int) (*model.Country, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.countries[id]
	if !ok {
		return nil, sqlerr.NotFound(tableCountries)
	}
	return &c, nil
}

func (r *CountryRepo) FindCountryByName(_ context.Context, name string) (*model.Country, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return findFirst(r.s.countries, countryKey, func(c model.Country) bool { return sameName(c.Name, name) }), nil
}

func (r *CountryRepo) CountryExists(_ context.Context, id int) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.countries[id]
	return ok, nil
}

func (r *CountryRepo) GetCountryByOwner(_ context.Context, ownerID int) (*model.Country, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.owners[ownerID]
	if !ok {
		return nil, sqlerr.NotFound(tableCountries)
	}
	c, ok := r.s.countries[o.CountryID]
	if !ok {
		return nil, sqlerr.NotFound(tableCountries)
	}
	return &c, nil
}

func (r *CountryRepo) GetOwnersFromCountry(_ context.Context, countryID int) ([]model.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filterSorted(r.s.owners, ownerKey, func(o model.Owner) bool { return o.CountryID == countryID }), nil
}

func (r *CountryRepo) CreateCountry(_ context.Context, country *model.Country) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	country.ID = r.s.allocID(tableCountries)
	r.s.countries[country.ID] = *country
	return nil
}

func (r *CountryRepo) UpdateCountry(_ context.Context, country *model.Country) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.countries[country.ID]; !ok {
		return sqlerr.NotFound(tableCountries)
	}
	r.s.countries[country.ID] = *country
	return nil
}

func (r *CountryRepo) DeleteCountry(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.countries[id]; !ok {
		return sqlerr.NotFound(tableCountries)
	}
	for _, o := range r.s.owners {
		if o.CountryID == id {
			return foreignKeyViolation(tableOwners, "country_id", "owners_country_id_fkey")
		}
	}
	delete(r.s.countries, id)
	return nil
}
