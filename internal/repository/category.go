package repository

import (
	"context"

	"github.com/deppfellow/pokemon-review/internal/model"
)

type CategoryRepo struct {
	db DBTX
}

func NewCategoryRepository(db DBTX) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) GetCategories(ctx context.Context) ([]model.Category, error) {
	return collectAll[model.Category](ctx, r.db, `SELECT id, name FROM categories ORDER BY id`)
}

func (r *CategoryRepo) GetCategory(ctx context.Context, id int) (*model.Category, error) {
	return collectOne[model.Category](ctx, r.db, tableCategories,
		`SELECT id, name FROM categories WHERE id = $1`, id)
}

func (r *CategoryRepo) FindCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	return findOne[model.Category](ctx, r.db, tableCategories,
		`SELECT id, name FROM categories WHERE upper(trim(name)) = upper(trim($1)) ORDER BY id LIMIT 1`, name)
}

func (r *CategoryRepo) CategoryExists(ctx context.Context, id int) (bool, error) {
	return exists(ctx, r.db, tableCategories, id)
}

func (r *CategoryRepo) GetPokemonsByCategory(ctx context.Context, categoryID int) ([]model.Pokemon, error) {
	return collectAll[model.Pokemon](ctx, r.db, `
		SELECT p.id, p.name, p.birth_date
		FROM pokemon p
		JOIN pokemon_categories pc ON pc.pokemon_id = p.id
		WHERE pc.category_id = $1
		ORDER BY p.id`, categoryID)
}

func (r *CategoryRepo) CreateCategory(ctx context.Context, category *model.Category) error {
	return insertReturningID(ctx, r.db, tableCategories, &category.ID,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`, category.Name)
}

func (r *CategoryRepo) UpdateCategory(ctx context.Context, category *model.Category) error {
	return execOne(ctx, r.db, tableCategories,
		`UPDATE categories SET name = $2 WHERE id = $1`, category.ID, category.Name)
}

func (r *CategoryRepo) DeleteCategory(ctx context.Context, id int) error {
	return execOne(ctx, r.db, tableCategories, `DELETE FROM categories WHERE id = $1`, id)
}
