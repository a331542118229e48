package repository

import (
	"context"

	"github.com/deppfellow/pokemon-review/internal/model"
)

type OwnerRepo struct {
	db DBTX
}

func NewOwnerRepository(db DBTX) *OwnerRepo {
	return &OwnerRepo{db: db}
}

func (r *OwnerRepo) GetOwners(ctx context.Context) ([]model.Owner, error) {
	return collectAll[model.Owner](ctx, r.db,
		`SELECT id, name, gender, country_id FROM owners ORDER BY id`)
}

func (r *OwnerRepo) GetOwner(ctx context.Context, id int) (*model.Owner, error) {
	return collectOne[model.Owner](ctx, r.db, tableOwners,
		`SELECT id, name, gender, country_id FROM owners WHERE id = $1`, id)
}

func (r *OwnerRepo) FindOwnerByName(ctx context.Context, name string) (*model.Owner, error) {
	return findOne[model.Owner](ctx, r.db, tableOwners, `
		SELECT id, name, gender, country_id FROM owners
		WHERE upper(trim(name)) = upper(trim($1))
		ORDER BY id LIMIT 1`, name)
}

func (r *OwnerRepo) OwnerExists(ctx context.Context, id int) (bool, error) {
	return exists(ctx, r.db, tableOwners, id)
}

func (r *OwnerRepo) GetOwnersOfAPokemon(ctx context.Context, pokemonID int) ([]model.Owner, error) {
	return collectAll[model.Owner](ctx, r.db, `
		SELECT o.id, o.name, o.gender, o.country_id
		FROM owners o
		JOIN pokemon_owners po ON po.owner_id = o.id
		WHERE po.pokemon_id = $1
		ORDER BY o.id`, pokemonID)
}

func (r *OwnerRepo) GetPokemonByOwner(ctx context.Context, ownerID int) ([]model.Pokemon, error) {
	return collectAll[model.Pokemon](ctx, r.db, `
		SELECT p.id, p.name, p.birth_date
		FROM pokemon p
		JOIN pokemon_owners po ON po.pokemon_id = p.id
		WHERE po.owner_id = $1
		ORDER BY p.id`, ownerID)
}

func (r *OwnerRepo) CreateOwner(ctx context.Context, owner *model.Owner) error {
	return insertReturningID(ctx, r.db, tableOwners, &owner.ID,
		`INSERT INTO owners (name, gender, country_id) VALUES ($1, $2, $3) RETURNING id`,
		owner.Name, owner.Gender, owner.CountryID)
}

func (r *OwnerRepo) UpdateOwner(ctx context.Context, owner *model.Owner) error {
	return execOne(ctx, r.db, tableOwners,
		`UPDATE owners SET name = $2, gender = $3, country_id = $4 WHERE id = $1`,
		owner.ID, owner.Name, owner.Gender, owner.CountryID)
}

// DeleteOwner also drops the owner's pokemon_owners links.
func (r *OwnerRepo) DeleteOwner(ctx context.Context, id int) error {
	return execOne(ctx, r.db, tableOwners, `DELETE FROM owners WHERE id = $1`, id)
}
