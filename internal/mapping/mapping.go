// Package mapping converts between persistence records and transfer
// objects. Every function is pure.
package mapping

import (
	"encoding/json"

	"github.com/deppfellow/pokemon-review/internal/dto"
	"github.com/deppfellow/pokemon-review/internal/model"
	"github.com/shopspring/decimal"
)

// mapAll applies fn to every element; nil input maps to an empty slice.
func mapAll[S, D any](in []S, fn func(S) D) []D {
	out := make([]D, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

func CategoryToDto(c model.Category) dto.CategoryDto {
	return dto.CategoryDto{ID: c.ID, Name: c.Name}
}

func CategoriesToDto(cs []model.Category) []dto.CategoryDto {
	return mapAll(cs, CategoryToDto)
}

func CategoryFromDto(d dto.CategoryDto) model.Category {
	return model.Category{ID: d.ID, Name: d.Name}
}

func CountryToDto(c model.Country) dto.CountryDto {
	return dto.CountryDto{ID: c.ID, Name: c.Name}
}

func CountriesToDto(cs []model.Country) []dto.CountryDto {
	return mapAll(cs, CountryToDto)
}

func CountryFromDto(d dto.CountryDto) model.Country {
	return model.Country{ID: d.ID, Name: d.Name}
}

func OwnerToDto(o model.Owner) dto.OwnerDto {
	return dto.OwnerDto{ID: o.ID, Name: o.Name, Gender: o.Gender}
}

func OwnersToDto(owners []model.Owner) []dto.OwnerDto {
	return mapAll(owners, OwnerToDto)
}

// OwnerFromDto leaves CountryID zero; the country comes from the query
// string, not the body.
func OwnerFromDto(d dto.OwnerDto) model.Owner {
	return model.Owner{ID: d.ID, Name: d.Name, Gender: d.Gender}
}

func PokemonToDto(p model.Pokemon) dto.PokemonDto {
	return dto.PokemonDto{ID: p.ID, Name: p.Name, BirthDate: p.BirthDate}
}

func PokemonsToDto(ps []model.Pokemon) []dto.PokemonDto {
	return mapAll(ps, PokemonToDto)
}

func PokemonFromDto(d dto.PokemonDto) model.Pokemon {
	return model.Pokemon{ID: d.ID, Name: d.Name, BirthDate: d.BirthDate}
}

// RatingToDto renders the rating with its decimal digits, never in
// exponent form.
func RatingToDto(r decimal.Decimal) dto.RatingDto {
	return json.Number(r.String())
}

func ReviewToDto(r model.Review) dto.ReviewDto {
	return dto.ReviewDto{ID: r.ID, Title: r.Title, Text: r.Text, Rating: r.Rating}
}

func ReviewsToDto(rs []model.Review) []dto.ReviewDto {
	return mapAll(rs, ReviewToDto)
}

// ReviewFromDto leaves PokemonID and ReviewerID zero; both come from the
// query string.
func ReviewFromDto(d dto.ReviewDto) model.Review {
	return model.Review{ID: d.ID, Title: d.Title, Text: d.Text, Rating: d.Rating}
}

func ReviewerToDto(r model.Reviewer) dto.ReviewerDto {
	return dto.ReviewerDto{ID: r.ID, FirstName: r.FirstName, LastName: r.LastName}
}

func ReviewersToDto(rs []model.Reviewer) []dto.ReviewerDto {
	return mapAll(rs, ReviewerToDto)
}

func ReviewerFromDto(d dto.ReviewerDto) model.Reviewer {
	return model.Reviewer{ID: d.ID, FirstName: d.FirstName, LastName: d.LastName}
}
