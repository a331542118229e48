package memory

import (
	"context"

	"github.com/deppfellow/pokemon-review/internal/model"
	"github.com/deppfellow/pokemon-review/internal/sqlerr"
)

const tableCategories = "categories"

type CategoryRepo struct {
	s *Store
}

func (r *CategoryRepo) GetCategories(_ context.Context) ([]model.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return sortedValues(r.s.categories, categoryKey), nil
}

func (r *CategoryRepo) GetCategory(_ context.Context, id int) (*model.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.categories[id]
	if !ok {
		return nil, sqlerr.NotFound(tableCategories)
	}
	return &c, nil
}

func (r *CategoryRepo) FindCategoryByName(_ context.Context, name string) (*model.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return findFirst(r.s.categories, categoryKey, func(c model.Category) bool { return sameName(c.Name, name) }), nil
}

func (r *CategoryRepo) CategoryExists(_ context.Context, id int) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.categories[id]
	return ok, nil
}

func (r *CategoryRepo) GetPokemonsByCategory(_ context.Context, categoryID int) ([]model.Pokemon, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filterSorted(r.s.pokemon, pokemonKey, func(p model.Pokemon) bool {
		_, linked := r.s.pokemonCategories[link{pokemonID: p.ID, otherID: categoryID}]
		return linked
	}), nil
}

func (r *CategoryRepo) CreateCategory(_ context.Context, category *model.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	category.ID = r.s.allocID(tableCategories)
	r.s.categories[category.ID] = *category
	return nil
}

func (r *CategoryRepo) UpdateCategory(_ context.Context, category *model.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[category.ID]; !ok {
		return sqlerr.NotFound(tableCategories)
	}
	r.s.categories[category.ID] = *category
	return nil
}

func (r *CategoryRepo) DeleteCategory(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[id]; !ok {
		return sqlerr.NotFound(tableCategories)
	}
	delete(r.s.categories, id)
	for l := range r.s.pokemonCategories {
		if l.otherID == id {
			delete(r.s.pokemonCategories, l)
		}
	}
	return nil
}
