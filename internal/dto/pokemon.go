package dto

import (
	"encoding/json"
	"time"

	"github.com/deppfellow/pokemon-review/internal/validation"
)

type PokemonDto struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birthDate"`
}

// RatingDto is the average rating as a bare JSON number, e.g. 4.67.
type RatingDto = json.Number

type PokemonIDRequest struct {
	PokeID int `param:"pokeId" json:"-" validate:"required,min=1"`
}

func (r *PokemonIDRequest) Validate() error { return validation.Struct(r) }

// CreatePokemonRequest is POST /api/pokemon?ownerId=&categoryId=.
type CreatePokemonRequest struct {
	OwnerID    int       `query:"ownerId" json:"-" validate:"required,min=1"`
	CategoryID int       `query:"categoryId" json:"-" validate:"required,min=1"`
	Name       string    `json:"name" validate:"notblank,max=100"`
	BirthDate  time.Time `json:"birthDate"`
}

func (r *CreatePokemonRequest) Validate() error { return validation.Struct(r) }

// UpdatePokemonRequest is PUT /api/pokemon/{pokeId}?ownerId=&categoryId=.
// A zero ownerId or categoryId leaves that link alone.
type UpdatePokemonRequest struct {
	PokeID     int       `param:"pokeId" json:"-" validate:"required,min=1"`
	OwnerID    int       `query:"ownerId" json:"-" validate:"min=0"`
	CategoryID int       `query:"categoryId" json:"-" validate:"min=0"`
	ID         int       `json:"id" validate:"required,min=1"`
	Name       string    `json:"name" validate:"notblank,max=100"`
	BirthDate  time.Time `json:"birthDate"`
}

func (r *UpdatePokemonRequest) Validate() error {
	return matchIDs(r, "pokeId", r.PokeID, r.ID)
}
