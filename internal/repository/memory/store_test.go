package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/deppfellow/pokemon-review/internal/model"
	"github.com/deppfellow/pokemon-review/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    *Store
	owner    model.Owner
	category model.Category
	reviewer model.Reviewer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	s := NewStore()

	country := model.Country{Name: "Kanto"}
	require.NoError(t, s.Countries().CreateCountry(ctx, &country))

	owner := model.Owner{Name: "Ash", Gender: "male", CountryID: country.ID}
	require.NoError(t, s.Owners().CreateOwner(ctx, &owner))

	category := model.Category{Name: "Electric"}
	require.NoError(t, s.Categories().CreateCategory(ctx, &category))

	reviewer := model.Reviewer{FirstName: "Gary", LastName: "Oak"}
	require.NoError(t, s.Reviewers().CreateReviewer(ctx, &reviewer))

	return &fixture{store: s, owner: owner, category: category, reviewer: reviewer}
}

func (f *fixture) createPokemon(t *testing.T, name string) model.Pokemon {
	t.Helper()
	p := model.Pokemon{Name: name, BirthDate: time.Date(1996, 2, 27, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, f.store.Pokemons().CreatePokemon(context.Background(), f.owner.ID, f.category.ID, &p))
	return p
}

func (f *fixture) createReview(t *testing.T, pokemonID, rating int) model.Review {
	t.Helper()
	r := model.Review{Title: "review", Text: "text", Rating: rating, PokemonID: pokemonID, ReviewerID: f.reviewer.ID}
	require.NoError(t, f.store.Reviews().CreateReview(context.Background(), &r))
	return r
}

func TestStore_AllocatesSerialIDs(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	a := model.Category{Name: "Fire"}
	b := model.Category{Name: "Water"}
	require.NoError(t, s.Categories().CreateCategory(ctx, &a))
	require.NoError(t, s.Categories().CreateCategory(ctx, &b))

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)

	all, err := s.Categories().GetCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Category{a, b}, all)
}

func TestStore_GetMissingIsNotFound(t *testing.T) {
	_, err := NewStore().Pokemons().GetPokemon(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pgx.ErrNoRows))
	var notFound *sqlerr.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "pokemon", notFound.Table)
}

func TestStore_FindByNameIgnoresCaseAndSpace(t *testing.T) {
	f := newFixture(t)
	created := f.createPokemon(t, "Pikachu")

	found, err := f.store.Pokemons().FindPokemonByName(context.Background(), "  pIKACHU ")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	missing, err := f.store.Pokemons().FindPokemonByName(context.Background(), "Raichu")
	require.NoError(t, err)
	assert.Nil(t, missing)

	tabbed, err := f.store.Pokemons().FindPokemonByName(context.Background(), "Pikachu\t")
	require.NoError(t, err)
	assert.Nil(t, tabbed)
}

func TestStore_CreatePokemonLinksOwnerAndCategory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.createPokemon(t, "Pikachu")

	byCategory, err := f.store.Categories().GetPokemonsByCategory(ctx, f.category.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.Pokemon{p}, byCategory)

	owners, err := f.store.Owners().GetOwnersOfAPokemon(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.Owner{f.owner}, owners)
}

func TestStore_CreatePokemonRejectsMissingOwner(t *testing.T) {
	f := newFixture(t)
	p := model.Pokemon{Name: "Mew"}

	err := f.store.Pokemons().CreatePokemon(context.Background(), 404, f.category.ID, &p)
	assert.Equal(t, sqlerr.ForeignKeyViolation, sqlerr.ErrCode(convert(err)))
}

func TestStore_PokemonRating(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.createPokemon(t, "Pikachu")

	rating, err := f.store.Pokemons().GetPokemonRating(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, rating.IsZero())

	f.createReview(t, p.ID, 4)
	f.createReview(t, p.ID, 5)
	f.createReview(t, p.ID, 5)

	rating, err = f.store.Pokemons().GetPokemonRating(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "4.67", rating.String())
}

func TestStore_DeletePokemonBlockedByReviews(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.createPokemon(t, "Pikachu")
	f.createReview(t, p.ID, 3)

	err := f.store.Pokemons().DeletePokemon(ctx, p.ID)
	assert.Equal(t, sqlerr.ForeignKeyViolation, sqlerr.ErrCode(convert(err)))

	removed, err := f.store.Reviews().DeleteReviewsOfPokemon(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	require.NoError(t, f.store.Pokemons().DeletePokemon(ctx, p.ID))

	byCategory, err := f.store.Categories().GetPokemonsByCategory(ctx, f.category.ID)
	require.NoError(t, err)
	assert.Empty(t, byCategory)
}

func TestStore_UpdatePokemonAddsLinks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.createPokemon(t, "Pikachu")

	other := model.Category{Name: "Mouse"}
	require.NoError(t, f.store.Categories().CreateCategory(ctx, &other))

	p.Name = "Pikachu Libre"
	require.NoError(t, f.store.Pokemons().UpdatePokemon(ctx, 0, other.ID, &p))

	for _, categoryID := range []int{f.category.ID, other.ID} {
		list, err := f.store.Categories().GetPokemonsByCategory(ctx, categoryID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Pikachu Libre", list[0].Name)
	}
}

func TestStore_ReviewRatingCheck(t *testing.T) {
	f := newFixture(t)
	p := f.createPokemon(t, "Pikachu")

	r := model.Review{Title: "t", Rating: 6, PokemonID: p.ID, ReviewerID: f.reviewer.ID}
	err := f.store.Reviews().CreateReview(context.Background(), &r)
	assert.Equal(t, sqlerr.CheckViolation, sqlerr.ErrCode(convert(err)))
}

func TestStore_DeleteCountryWithOwnersFails(t *testing.T) {
	f := newFixture(t)
	err := f.store.Countries().DeleteCountry(context.Background(), f.owner.CountryID)
	assert.Equal(t, sqlerr.ForeignKeyViolation, sqlerr.ErrCode(convert(err)))
}

func TestStore_DeleteOwnerDropsLinks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.createPokemon(t, "Pikachu")

	require.NoError(t, f.store.Owners().DeleteOwner(ctx, f.owner.ID))

	owners, err := f.store.Owners().GetOwnersOfAPokemon(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, owners)
}

func TestStore_ReviewsByReviewer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.createPokemon(t, "Pikachu")
	mine := f.createReview(t, p.ID, 2)

	other := model.Reviewer{FirstName: "Misty", LastName: "Waterflower"}
	require.NoError(t, f.store.Reviewers().CreateReviewer(ctx, &other))
	theirs := model.Review{Title: "x", Rating: 5, PokemonID: p.ID, ReviewerID: other.ID}
	require.NoError(t, f.store.Reviews().CreateReview(ctx, &theirs))

	got, err := f.store.Reviews().GetReviewsByReviewer(ctx, f.reviewer.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.Review{mine}, got)
}

// convert normalizes a driver error the way the error handler does.
func convert(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return sqlerr.ConvertPgError(pgErr)
	}
	return err
}
