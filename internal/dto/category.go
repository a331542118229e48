package dto

import "github.com/deppfellow/pokemon-review/internal/validation"

type CategoryDto struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CategoryIDRequest struct {
	CategoryID int `param:"categoryId" json:"-" validate:"required,min=1"`
}

func (r *CategoryIDRequest) Validate() error { return validation.Struct(r) }

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"notblank,max=100"`
}

func (r *CreateCategoryRequest) Validate() error { return validation.Struct(r) }

type UpdateCategoryRequest struct {
	CategoryID int    `param:"categoryId" json:"-" validate:"required,min=1"`
	ID         int    `json:"id" validate:"required,min=1"`
	Name       string `json:"name" validate:"notblank,max=100"`
}

func (r *UpdateCategoryRequest) Validate() error {
	return matchIDs(r, "categoryId", r.CategoryID, r.ID)
}
