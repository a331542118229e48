package memory

import (
	"context"

	"github.com/deppfellow/pokemon-review/internal/model"
	"github.com/deppfellow/pokemon-review/internal/sqlerr"
	"github.com/shopspring/decimal"
)

const tablePokemon = "pokemon"

type PokemonRepo struct {
	s *Store
}

func (r *PokemonRepo) GetPokemons(_ context.Context) ([]model.Pokemon, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return sortedValues(r.s.pokemon, pokemonKey), nil
}

func (r *PokemonRepo) GetPokemon(_ context.Context, id int) (*model.Pokemon, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pokemon[id]
	if !ok {
		return nil, sqlerr.NotFound(tablePokemon)
	}
	return &p, nil
}

func (r *PokemonRepo) FindPokemonByName(_ context.Context, name string) (*model.Pokemon, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return findFirst(r.s.pokemon, pokemonKey, func(p model.Pokemon) bool { return sameName(p.Name, name) }), nil
}

func (r *PokemonRepo) PokemonExists(_ context.Context, id int) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.pokemon[id]
	return ok, nil
}

func (r *PokemonRepo) GetPokemonRating(_ context.Context, id int) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var ratings []int
	for _, review := range r.s.reviews {
		if review.PokemonID == id {
			ratings = append(ratings, review.Rating)
		}
	}
	return model.AverageRating(ratings), nil
}

func (r *PokemonRepo) CreatePokemon(_ context.Context, ownerID, categoryID int, pokemon *model.Pokemon) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.owners[ownerID]; !ok {
		return foreignKeyViolation("pokemon_owners", "owner_id", "pokemon_owners_owner_id_fkey")
	}
	if _, ok := r.s.categories[categoryID]; !ok {
		return foreignKeyViolation("pokemon_categories", "category_id", "pokemon_categories_category_id_fkey")
	}

	pokemon.ID = r.s.allocID(tablePokemon)
	r.s.pokemon[pokemon.ID] = *pokemon
	r.s.pokemonOwners[link{pokemonID: pokemon.ID, otherID: ownerID}] = struct{}{}
	r.s.pokemonCategories[link{pokemonID: pokemon.ID, otherID: categoryID}] = struct{}{}
	return nil
}

func (r *PokemonRepo) UpdatePokemon(_ context.Context, ownerID, categoryID int, pokemon *model.Pokemon) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pokemon[pokemon.ID]; !ok {
		return sqlerr.NotFound(tablePokemon)
	}
	if ownerID > 0 {
		if _, ok := r.s.owners[ownerID]; !ok {
			return foreignKeyViolation("pokemon_owners", "owner_id", "pokemon_owners_owner_id_fkey")
		}
	}
	if categoryID > 0 {
		if _, ok := r.s.categories[categoryID]; !ok {
			return foreignKeyViolation("pokemon_categories", "category_id", "pokemon_categories_category_id_fkey")
		}
	}

	r.s.pokemon[pokemon.ID] = *pokemon
	if ownerID > 0 {
		r.s.pokemonOwners[link{pokemonID: pokemon.ID, otherID: ownerID}] = struct{}{}
	}
	if categoryID > 0 {
		r.s.pokemonCategories[link{pokemonID: pokemon.ID, otherID: categoryID}] = struct{}{}
	}
	return nil
}

func (r *PokemonRepo) DeletePokemon(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pokemon[id]; !ok {
		return sqlerr.NotFound(tablePokemon)
	}
	for _, review := range r.s.reviews {
		if review.PokemonID == id {
			return foreignKeyViolation(tableReviews, "pokemon_id", "reviews_pokemon_id_fkey")
		}
	}

	delete(r.s.pokemon, id)
	for l := range r.s.pokemonOwners {
		if l.pokemonID == id {
			delete(r.s.pokemonOwners, l)
		}
	}
	for l := range r.s.pokemonCategories {
		if l.pokemonID == id {
			delete(r.s.pokemonCategories, l)
		}
	}
	return nil
}
