package dto

import "github.com/deppfellow/pokemon-review/internal/validation"

type CountryDto struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CountryIDRequest struct {
	CountryID int `param:"countryId" json:"-" validate:"required,min=1"`
}

func (r *CountryIDRequest) Validate() error { return validation.Struct(r) }

type CreateCountryRequest struct {
	Name string `json:"name" validate:"notblank,max=100"`
}

func (r *CreateCountryRequest) Validate() error { return validation.Struct(r) }

type UpdateCountryRequest struct {
	CountryID int    `param:"countryId" json:"-" validate:"required,min=1"`
	ID        int    `json:"id" validate:"required,min=1"`
	Name      string `json:"name" validate:"notblank,max=100"`
}

func (r *UpdateCountryRequest) Validate() error {
	return matchIDs(r, "countryId", r.CountryID, r.ID)
}
