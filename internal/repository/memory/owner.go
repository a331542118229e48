package memory

import (
	"context"

	"github.com/deppfellow/pokemon-review/internal/model"
	"github.com/deppfellow/pokemon-review/internal/sqlerr"
)

const tableOwners = "owners"

type OwnerRepo struct {
	s *Store
}

func (r *OwnerRepo) GetOwners(_ context.Context) ([]model.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return sortedValues(r.s.owners, ownerKey), nil
}

func (r *OwnerRepo) GetOwner(_ context.Context, id int) (*model.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.owners[id]
	if !ok {
		return nil, sqlerr.NotFound(tableOwners)
	}
	return &o, nil
}

func (r *OwnerRepo) FindOwnerByName(_ context.Context, name string) (*model.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return findFirst(r.s.owners, ownerKey, func(o model.Owner) bool { return sameName(o.Name, name) }), nil
}

func (r *OwnerRepo) OwnerExists(_ context.Context, id int) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.owners[id]
	return ok, nil
}

func (r *OwnerRepo) GetOwnersOfAPokemon(_ context.Context, pokemonID int) ([]model.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filterSorted(r.s.owners, ownerKey, func(o model.Owner) bool {
		_, linked := r.s.pokemonOwners[link{pokemonID: pokemonID, otherID: o.ID}]
		return linked
	}), nil
}

func (r *OwnerRepo) GetPokemonByOwner(_ context.Context, ownerID int) ([]model.Pokemon, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filterSorted(r.s.pokemon, pokemonKey, func(p model.Pokemon) bool {
		_, linked := r.s.pokemonOwners[link{pokemonID: p.ID, otherID: ownerID}]
		return linked
	}), nil
}

func (r *OwnerRepo) CreateOwner(_ context.Context, owner *model.Owner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.countries[owner.CountryID]; !ok {
		return foreignKeyViolation(tableOwners, "country_id", "owners_country_id_fkey")
	}
	owner.ID = r.s.allocID(tableOwners)
	r.s.owners[owner.ID] = *owner
	return nil
}

func (r *OwnerRepo) UpdateOwner(_ context.Context, owner *model.Owner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.owners[owner.ID]; !ok {
		return sqlerr.NotFound(tableOwners)
	}
	if _, ok := r.s.countries[owner.CountryID]; !ok {
		return foreignKeyViolation(tableOwners, "country_id", "owners_country_id_fkey")
	}
	r.s.owners[owner.ID] = *owner
	return nil
}

func (r *OwnerRepo) DeleteOwner(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.owners[id]; !ok {
		return sqlerr.NotFound(tableOwners)
	}
	delete(r.s.owners, id)
	for l := range r.s.pokemonOwners {
		if l.otherID == id {
			delete(r.s.pokemonOwners, l)
		}
	}
	return nil
}
