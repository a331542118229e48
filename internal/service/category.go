package service

import (
	"context"

	"github.com/deppfellow/pokemon-review/internal/dto"
	"github.com/deppfellow/pokemon-review/internal/mapping"
	"github.com/deppfellow/pokemon-review/internal/model"
	"github.com/deppfellow/pokemon-review/internal/repository"
	"github.com/deppfellow/pokemon-review/internal/server"
)

type CategoryService struct {
	server *server.Server
	repos  *repository.Repositories
}

func NewCategoryService(s *server.Server, repos *repository.Repositories) *CategoryService {
	return &CategoryService{server: s, repos: repos}
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]dto.CategoryDto, error) {
	categories, err := s.repos.Category.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	return mapping.CategoriesToDto(categories), nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id int) (*dto.CategoryDto, error) {
	category, err := s.repos.Category.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	out := mapping.CategoryToDto(*category)
	return &out, nil
}

// GetPokemonsByCategory lists the pokemon in a category; an unknown
// category simply has none.
func (s *CategoryService) GetPokemonsByCategory(ctx context.Context, categoryID int) ([]dto.PokemonDto, error) {
	pokemons, err := s.repos.Category.GetPokemonsByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return mapping.PokemonsToDto(pokemons), nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, name string) error {
	existing, err := s.repos.Category.FindCategoryByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil {
		return duplicate("Category")
	}

	category := model.Category{Name: name}
	if err := s.repos.Category.CreateCategory(ctx, &category); err != nil {
		return storeFailure(ctx, err, "Something went wrong while saving")
	}
	return nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, update dto.CategoryDto) error {
	if err := requireExists(ctx, s.repos.Category.CategoryExists, update.ID, "Category"); err != nil {
		return err
	}

	category := mapping.CategoryFromDto(update)
	if err := s.repos.Category.UpdateCategory(ctx, &category); err != nil {
		return storeFailure(ctx, err, "Something went wrong updating category")
	}
	return nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id int) error {
	if err := requireExists(ctx, s.repos.Category.CategoryExists, id, "Category"); err != nil {
		return err
	}

	if err := s.repos.Category.DeleteCategory(ctx, id); err != nil {
		return storeFailure(ctx, err, "Something went wrong deleting category")
	}
	return nil
}
