package repository

import (
	"context"

	"github.com/deppfellow/pokemon-review/internal/model"
)

type CountryRepo struct {
	db DBTX
}

func NewCountryRepository(db DBTX) *CountryRepo {
	return &CountryRepo{db: db}
}

func (r *CountryRepo) GetCountries(ctx context.Context) ([]model.Country, error) {
	return collectAll[model.Country](ctx, r.db, `SELECT id, name FROM countries ORDER BY id`)
}

func (r *CountryRepo) GetCountry(ctx context.Context, id int) (*model.Country, error) {
	return collectOne[model.Country](ctx, r.db, tableCountries,
		`SELECT id, name FROM countries WHERE id = $1`, id)
}

func (r *CountryRepo) FindCountryByName(ctx context.Context, name string) (*model.Country, error) {
	return findOne[model.Country](ctx, r.db, tableCountries,
		`SELECT id, name FROM countries WHERE upper(trim(name)) = upper(trim($1)) ORDER BY id LIMIT 1`, name)
}

func (r *CountryRepo) CountryExists(ctx context.Context, id int) (bool, error) {
	return exists(ctx, r.db, tableCountries, id)
}

// GetCountryByOwner returns the owner's country, or NotFound on countries
// when the owner does not exist.
func (r *CountryRepo) GetCountryByOwner(ctx context.Context, ownerID int) (*model.Country, error) {
	return collectOne[model.Country](ctx, r.db, tableCountries, `
		SELECT c.id, c.name
		FROM countries c
		JOIN owners o ON o.country_id = c.id
		WHERE o.id = $1`, ownerID)
}

func (r *CountryRepo) GetOwnersFromCountry(ctx context.Context, countryID int) ([]model.Owner, error) {
	return collectAll[model.Owner](ctx, r.db,
		`SELECT id, name, gender, country_id FROM owners WHERE country_id = $1 ORDER BY id`, countryID)
}

func (r *CountryRepo) CreateCountry(ctx context.Context, country *model.Country) error {
	return insertReturningID(ctx, r.db, tableCountries, &country.ID,
		`INSERT INTO countries (name) VALUES ($1) RETURNING id`, country.Name)
}

func (r *CountryRepo) UpdateCountry(ctx context.Context, country *model.Country) error {
	return execOne(ctx, r.db, tableCountries,
		`UPDATE countries SET name = $2 WHERE id = $1`, country.ID, country.Name)
}

// DeleteCountry fails with a foreign key violation while owners reference
// the country.
func (r *CountryRepo) DeleteCountry(ctx context.Context, id int) error {
	return execOne(ctx, r.db, tableCountries, `DELETE FROM countries WHERE id = $1`, id)
}
