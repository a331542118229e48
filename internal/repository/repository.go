// Package repository handles all interactions with the store.
//
// Each entity family has an interface here and two implementations: the
// pgx-backed ones in this package and the in-memory ones in
// repository/memory. Both report a missing row as sqlerr.NotFound(table),
// which sqlerr.HandleError turns into "<Entity> not found".
//
// Find* lookups return (nil, nil) when nothing matches.
package repository

import (
	"context"

	"github.com/deppfellow/pokemon-review/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type CategoryRepository interface {
	GetCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id int) (*model.Category, error)
	FindCategoryByName(ctx context.Context, name string) (*model.Category, error)
	CategoryExists(ctx context.Context, id int) (bool, error)
	GetPokemonsByCategory(ctx context.Context, categoryID int) ([]model.Pokemon, error)
	CreateCategory(ctx context.Context, category *model.Category) error
	UpdateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, id int) error
}

type CountryRepository interface {
	GetCountries(ctx context.Context) ([]model.Country, error)
	GetCountry(ctx context.Context, id int) (*model.Country, error)
	FindCountryByName(ctx context.Context, name string) (*model.Country, error)
	CountryExists(ctx context.Context, id int) (bool, error)
	GetCountryByOwner(ctx context.Context, ownerID int) (*model.Country, error)
	GetOwnersFromCountry(ctx context.Context, countryID int) ([]model.Owner, error)
	CreateCountry(ctx context.Context, country *model.Country) error
	UpdateCountry(ctx context.Context, country *model.Country) error
	DeleteCountry(ctx context.Context, id int) error
}

type OwnerRepository interface {
	GetOwners(ctx context.Context) ([]model.Owner, error)
	GetOwner(ctx context.Context, id int) (*model.Owner, error)
	FindOwnerByName(ctx context.Context, name string) (*model.Owner, error)
	OwnerExists(ctx context.Context, id int) (bool, error)
	GetOwnersOfAPokemon(ctx context.Context, pokemonID int) ([]model.Owner, error)
	GetPokemonByOwner(ctx context.Context, ownerID int) ([]model.Pokemon, error)
	CreateOwner(ctx context.Context, owner *model.Owner) error
	UpdateOwner(ctx context.Context, owner *model.Owner) error
	DeleteOwner(ctx context.Context, id int) error
}

// PokemonRepository also maintains the pokemon_owners and
// pokemon_categories links. CreatePokemon links the new row to one owner and
// one category; UpdatePokemon adds those links when the ids are non-zero and
// never removes existing ones.
type PokemonRepository interface {
	GetPokemons(ctx context.Context) ([]model.Pokemon, error)
	GetPokemon(ctx context.Context, id int) (*model.Pokemon, error)
	FindPokemonByName(ctx context.Context, name string) (*model.Pokemon, error)
	PokemonExists(ctx context.Context, id int) (bool, error)
	GetPokemonRating(ctx context.Context, id int) (decimal.Decimal, error)
	CreatePokemon(ctx context.Context, ownerID, categoryID int, pokemon *model.Pokemon) error
	UpdatePokemon(ctx context.Context, ownerID, categoryID int, pokemon *model.Pokemon) error
	DeletePokemon(ctx context.Context, id int) error
}

type ReviewRepository interface {
	GetReviews(ctx context.Context) ([]model.Review, error)
	GetReview(ctx context.Context, id int) (*model.Review, error)
	FindReviewByTitle(ctx context.Context, title string) (*model.Review, error)
	ReviewExists(ctx context.Context, id int) (bool, error)
	GetReviewsOfAPokemon(ctx context.Context, pokemonID int) ([]model.Review, error)
	GetReviewsByReviewer(ctx context.Context, reviewerID int) ([]model.Review, error)
	CreateReview(ctx context.Context, review *model.Review) error
	UpdateReview(ctx context.Context, review *model.Review) error
	DeleteReview(ctx context.Context, id int) error
	// DeleteReviews removes the listed reviews; ids already gone are skipped.
	DeleteReviews(ctx context.Context, ids []int) error
	// DeleteReviewsOfPokemon removes every review of a pokemon and returns
	// how many rows went.
	DeleteReviewsOfPokemon(ctx context.Context, pokemonID int) (int, error)
}

type ReviewerRepository interface {
	GetReviewers(ctx context.Context) ([]model.Reviewer, error)
	GetReviewer(ctx context.Context, id int) (*model.Reviewer, error)
	FindReviewerByLastName(ctx context.Context, lastName string) (*model.Reviewer, error)
	ReviewerExists(ctx context.Context, id int) (bool, error)
	CreateReviewer(ctx context.Context, reviewer *model.Reviewer) error
	UpdateReviewer(ctx context.Context, reviewer *model.Reviewer) error
	DeleteReviewer(ctx context.Context, id int) error
}
