package repository

import (
	"context"

	"github.com/deppfellow/pokemon-review/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type PokemonRepo struct {
	db DBTX
}

func NewPokemonRepository(db DBTX) *PokemonRepo {
	return &PokemonRepo{db: db}
}

func (r *PokemonRepo) GetPokemons(ctx context.Context) ([]model.Pokemon, error) {
	return collectAll[model.Pokemon](ctx, r.db, `SELECT id, name, birth_date FROM pokemon ORDER BY id`)
}

func (r *PokemonRepo) GetPokemon(ctx context.Context, id int) (*model.Pokemon, error) {
	return collectOne[model.Pokemon](ctx, r.db, tablePokemon,
		`SELECT id, name, birth_date FROM pokemon WHERE id = $1`, id)
}

func (r *PokemonRepo) FindPokemonByName(ctx context.Context, name string) (*model.Pokemon, error) {
	return findOne[model.Pokemon](ctx, r.db, tablePokemon, `
		SELECT id, name, birth_date FROM pokemon
		WHERE upper(trim(name)) = upper(trim($1))
		ORDER BY id LIMIT 1`, name)
}

func (r *PokemonRepo) PokemonExists(ctx context.Context, id int) (bool, error) {
	return exists(ctx, r.db, tablePokemon, id)
}

// GetPokemonRating averages the ratings of the pokemon's reviews. A pokemon
// with no reviews, or no row at all, rates zero.
func (r *PokemonRepo) GetPokemonRating(ctx context.Context, id int) (decimal.Decimal, error) {
	rows, err := r.db.Query(ctx, `SELECT rating FROM reviews WHERE pokemon_id = $1`, id)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "query ratings")
	}

	ratings, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "collect ratings")
	}

	return model.AverageRating(ratings), nil
}

// CreatePokemon inserts the pokemon and both links in one statement.
func (r *PokemonRepo) CreatePokemon(ctx context.Context, ownerID, categoryID int, pokemon *model.Pokemon) error {
	return insertReturningID(ctx, r.db, tablePokemon, &pokemon.ID, `
		WITH p AS (
			INSERT INTO pokemon (name, birth_date) VALUES ($1, $2) RETURNING id
		), o AS (
			INSERT INTO pokemon_owners (pokemon_id, owner_id) SELECT id, $3::bigint FROM p
		), c AS (
			INSERT INTO pokemon_categories (pokemon_id, category_id) SELECT id, $4::bigint FROM p
		)
		SELECT id FROM p`,
		pokemon.Name, pokemon.BirthDate, ownerID, categoryID)
}

func (r *PokemonRepo) UpdatePokemon(ctx context.Context, ownerID, categoryID int, pokemon *model.Pokemon) error {
	return updateReturningID(ctx, r.db, tablePokemon, `
		WITH p AS (
			UPDATE pokemon SET name = $2, birth_date = $3 WHERE id = $1 RETURNING id
		), o AS (
			INSERT INTO pokemon_owners (pokemon_id, owner_id)
			SELECT id, $4::bigint FROM p WHERE $4::bigint > 0
			ON CONFLICT DO NOTHING
		), c AS (
			INSERT INTO pokemon_categories (pokemon_id, category_id)
			SELECT id, $5::bigint FROM p WHERE $5::bigint > 0
			ON CONFLICT DO NOTHING
		)
		SELECT id FROM p`,
		pokemon.ID, pokemon.Name, pokemon.BirthDate, ownerID, categoryID)
}

// DeletePokemon removes the pokemon and its links. It fails with a foreign
// key violation while reviews still reference the pokemon.
func (r *PokemonRepo) DeletePokemon(ctx context.Context, id int) error {
	return execOne(ctx, r.db, tablePokemon, `DELETE FROM pokemon WHERE id = $1`, id)
}
