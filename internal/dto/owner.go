package dto

import "github.com/deppfellow/pokemon-review/internal/validation"

type OwnerDto struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Gender string `json:"gender"`
}

type OwnerIDRequest struct {
	OwnerID int `param:"ownerId" json:"-" validate:"required,min=1"`
}

func (r *OwnerIDRequest) Validate() error { return validation.Struct(r) }

// CreateOwnerRequest is POST /api/owner?countryId=.
type CreateOwnerRequest struct {
	CountryID int    `query:"countryId" json:"-" validate:"required,min=1"`
	Name      string `json:"name" validate:"notblank,max=100"`
	Gender    string `json:"gender" validate:"max=20"`
}

func (r *CreateOwnerRequest) Validate() error { return validation.Struct(r) }

// UpdateOwnerRequest is PUT /api/owner/{ownerId}?countryId=.
type UpdateOwnerRequest struct {
	OwnerID   int    `param:"ownerId" json:"-" validate:"required,min=1"`
	CountryID int    `query:"countryId" json:"-" validate:"required,min=1"`
	ID        int    `json:"id" validate:"required,min=1"`
	Name      string `json:"name" validate:"notblank,max=100"`
	Gender    string `json:"gender" validate:"max=20"`
}

func (r *UpdateOwnerRequest) Validate() error {
	return matchIDs(r, "ownerId", r.OwnerID, r.ID)
}
