package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/pokemon-review/internal/config"
	"github.com/deppfellow/pokemon-review/internal/dto"
	"github.com/deppfellow/pokemon-review/internal/errs"
	"github.com/deppfellow/pokemon-review/internal/repository"
	"github.com/deppfellow/pokemon-review/internal/repository/memory"
	"github.com/deppfellow/pokemon-review/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeQueue struct {
	enqueued []int
}

func (q *fakeQueue) EnqueueReviewPurge(_ context.Context, pokemonID int) error {
	q.enqueued = append(q.enqueued, pokemonID)
	return nil
}

// failingReviews breaks bulk review deletion.
type failingReviews struct {
	repository.ReviewRepository
}

func (failingReviews) DeleteReviews(context.Context, []int) error {
	return errors.New("connection reset")
}

type testEnv struct {
	ctx      context.Context
	repos    *repository.Repositories
	queue    *fakeQueue
	services *Services

	ownerID    int
	categoryID int
	reviewerID int
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	repos := repository.NewMemoryRepositories(memory.NewStore())
	return newTestEnvWithRepos(t, repos)
}

func newTestEnvWithRepos(t *testing.T, repos *repository.Repositories) *testEnv {
	t.Helper()

	logger := zerolog.Nop()
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.StoreDriverMemory}}
	s := server.NewBare(cfg, &logger)

	queue := &fakeQueue{}
	services := NewServices(s, repos)
	services.Pokemon = NewPokemonService(s, repos, services.Review, queue)

	env := &testEnv{
		ctx:      logger.WithContext(context.Background()),
		repos:    repos,
		queue:    queue,
		services: services,
	}
	env.seed(t)
	return env
}

func (e *testEnv) seed(t *testing.T) {
	t.Helper()

	require.NoError(t, e.services.Country.CreateCountry(e.ctx, "Kanto"))
	countries, err := e.services.Country.GetCountries(e.ctx)
	require.NoError(t, err)
	require.Len(t, countries, 1)

	require.NoError(t, e.services.Owner.CreateOwner(e.ctx, countries[0].ID, dto.OwnerDto{Name: "Ash", Gender: "male"}))
	require.NoError(t, e.services.Category.CreateCategory(e.ctx, "Electric"))
	require.NoError(t, e.services.Reviewer.CreateReviewer(e.ctx, dto.ReviewerDto{FirstName: "Gary", LastName: "Oak"}))

	owners, err := e.services.Owner.GetOwners(e.ctx)
	require.NoError(t, err)
	categories, err := e.services.Category.GetCategories(e.ctx)
	require.NoError(t, err)
	reviewers, err := e.services.Reviewer.GetReviewers(e.ctx)
	require.NoError(t, err)

	e.ownerID = owners[0].ID
	e.categoryID = categories[0].ID
	e.reviewerID = reviewers[0].ID
}

func (e *testEnv) createPokemon(t *testing.T, name string) dto.PokemonDto {
	t.Helper()

	create := dto.PokemonDto{Name: name, BirthDate: time.Date(1996, 2, 27, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, e.services.Pokemon.CreatePokemon(e.ctx, e.ownerID, e.categoryID, create))

	existing, err := e.repos.Pokemon.FindPokemonByName(e.ctx, name)
	require.NoError(t, err)
	require.NotNil(t, existing)
	return dto.PokemonDto{ID: existing.ID, Name: existing.Name, BirthDate: existing.BirthDate}
}

func (e *testEnv) createReview(t *testing.T, pokemonID int, title string, rating int) {
	t.Helper()
	review := dto.ReviewDto{Title: title, Text: "text", Rating: rating}
	require.NoError(t, e.services.Review.CreateReview(e.ctx, e.reviewerID, pokemonID, review))
}

func requireStatus(t *testing.T, err error, status int) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %v", err)
	assert.Equal(t, status, httpErr.Status)
	return httpErr
}

func TestPokemonService_DuplicateNameIsCaseAndSpaceInsensitive(t *testing.T) {
	env := newTestEnv(t)
	env.createPokemon(t, "Pikachu")

	err := env.services.Pokemon.CreatePokemon(env.ctx, env.ownerID, env.categoryID, dto.PokemonDto{Name: " pikachu "})
	httpErr := requireStatus(t, err, http.StatusUnprocessableEntity)
	assert.Equal(t, "Pokemon already exists", httpErr.Message)

	all, err := env.services.Pokemon.GetPokemons(env.ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPokemonService_CreateRequiresOwnerAndCategory(t *testing.T) {
	env := newTestEnv(t)

	err := env.services.Pokemon.CreatePokemon(env.ctx, 99, env.categoryID, dto.PokemonDto{Name: "Eevee"})
	httpErr := requireStatus(t, err, http.StatusNotFound)
	assert.Equal(t, "Owner not found", httpErr.Message)

	err = env.services.Pokemon.CreatePokemon(env.ctx, env.ownerID, 99, dto.PokemonDto{Name: "Eevee"})
	httpErr = requireStatus(t, err, http.StatusNotFound)
	assert.Equal(t, "Category not found", httpErr.Message)
}

func TestPokemonService_Rating(t *testing.T) {
	env := newTestEnv(t)
	p := env.createPokemon(t, "Pikachu")

	rating, err := env.services.Pokemon.GetPokemonRating(env.ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.RatingDto("0"), rating)

	env.createReview(t, p.ID, "great", 4)
	env.createReview(t, p.ID, "superb", 5)
	env.createReview(t, p.ID, "perfect", 5)

	rating, err = env.services.Pokemon.GetPokemonRating(env.ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.RatingDto("4.67"), rating)

	_, err = env.services.Pokemon.GetPokemonRating(env.ctx, 99)
	requireStatus(t, err, http.StatusNotFound)
}

func TestPokemonService_DeleteCascadesReviews(t *testing.T) {
	env := newTestEnv(t)
	p := env.createPokemon(t, "Pikachu")
	other := env.createPokemon(t, "Bulbasaur")

	env.createReview(t, p.ID, "great", 4)
	env.createReview(t, p.ID, "fine", 3)
	env.createReview(t, other.ID, "leafy", 5)

	require.NoError(t, env.services.Pokemon.DeletePokemon(env.ctx, p.ID))

	_, err := env.services.Pokemon.GetPokemon(env.ctx, p.ID)
	requireStatus(t, err, http.StatusNotFound)

	reviews, err := env.services.Review.GetReviews(env.ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "leafy", reviews[0].Title)
	assert.Empty(t, env.queue.enqueued)
}

func TestPokemonService_DeleteMissingLeavesStoreUnchanged(t *testing.T) {
	env := newTestEnv(t)
	env.createPokemon(t, "Pikachu")

	err := env.services.Pokemon.DeletePokemon(env.ctx, 99)
	requireStatus(t, err, http.StatusNotFound)

	all, err := env.services.Pokemon.GetPokemons(env.ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPokemonService_DeleteWithFailingReviewCascade(t *testing.T) {
	store := memory.NewStore()
	repos := repository.NewMemoryRepositories(store)
	repos.Review = failingReviews{ReviewRepository: repos.Review}
	env := newTestEnvWithRepos(t, repos)

	p := env.createPokemon(t, "Pikachu")
	env.createReview(t, p.ID, "great", 4)

	err := env.services.Pokemon.DeletePokemon(env.ctx, p.ID)
	httpErr := requireStatus(t, err, http.StatusInternalServerError)
	assert.Equal(t, "Something went wrong deleting pokemon", httpErr.Message)
	assert.Equal(t, []int{p.ID}, env.queue.enqueued)

	removed, err := env.services.Review.PurgeReviewsOfPokemon(env.ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	require.NoError(t, env.services.Pokemon.DeletePokemon(env.ctx, p.ID))
}

func TestPokemonService_UpdateAddsLinks(t *testing.T) {
	env := newTestEnv(t)
	p := env.createPokemon(t, "Pikachu")

	require.NoError(t, env.services.Category.CreateCategory(env.ctx, "Mouse"))
	mouse, err := env.repos.Category.FindCategoryByName(env.ctx, "mouse")
	require.NoError(t, err)
	require.NotNil(t, mouse)

	p.Name = "Raichu"
	require.NoError(t, env.services.Pokemon.UpdatePokemon(env.ctx, 0, mouse.ID, p))

	got, err := env.services.Pokemon.GetPokemon(env.ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Raichu", got.Name)

	for _, categoryID := range []int{env.categoryID, mouse.ID} {
		pokemons, err := env.services.Category.GetPokemonsByCategory(env.ctx, categoryID)
		require.NoError(t, err)
		require.Len(t, pokemons, 1)
		assert.Equal(t, p.ID, pokemons[0].ID)
	}

	err = env.services.Pokemon.UpdatePokemon(env.ctx, 99, 0, p)
	requireStatus(t, err, http.StatusNotFound)
}

func TestReviewerService_ReviewsBelongToReviewer(t *testing.T) {
	env := newTestEnv(t)
	p := env.createPokemon(t, "Pikachu")
	env.createReview(t, p.ID, "great", 4)

	require.NoError(t, env.services.Reviewer.CreateReviewer(env.ctx, dto.ReviewerDto{FirstName: "Misty", LastName: "Waterflower"}))
	misty, err := env.repos.Reviewer.FindReviewerByLastName(env.ctx, "Waterflower")
	require.NoError(t, err)
	require.NoError(t, env.services.Review.CreateReview(env.ctx, misty.ID, p.ID, dto.ReviewDto{Title: "wet", Rating: 2}))

	reviews, err := env.services.Reviewer.GetReviewsByReviewer(env.ctx, misty.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "wet", reviews[0].Title)

	_, err = env.services.Reviewer.GetReviewsByReviewer(env.ctx, 99)
	requireStatus(t, err, http.StatusNotFound)
}

func TestReviewerService_DuplicateLastName(t *testing.T) {
	env := newTestEnv(t)

	err := env.services.Reviewer.CreateReviewer(env.ctx, dto.ReviewerDto{FirstName: "Blue", LastName: " OAK"})
	httpErr := requireStatus(t, err, http.StatusUnprocessableEntity)
	assert.Equal(t, "Reviewer already exists", httpErr.Message)
}

func TestReviewerService_DeleteCascadesReviews(t *testing.T) {
	env := newTestEnv(t)
	p := env.createPokemon(t, "Pikachu")
	env.createReview(t, p.ID, "great", 4)
	env.createReview(t, p.ID, "fine", 3)

	require.NoError(t, env.services.Reviewer.DeleteReviewer(env.ctx, env.reviewerID))

	reviews, err := env.services.Review.GetReviews(env.ctx)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	_, err = env.services.Reviewer.GetReviewer(env.ctx, env.reviewerID)
	requireStatus(t, err, http.StatusNotFound)
}

func TestReviewService_DuplicateTitleAndMissingRefs(t *testing.T) {
	env := newTestEnv(t)
	p := env.createPokemon(t, "Pikachu")
	env.createReview(t, p.ID, "great", 4)

	err := env.services.Review.CreateReview(env.ctx, env.reviewerID, p.ID, dto.ReviewDto{Title: "GREAT", Rating: 1})
	requireStatus(t, err, http.StatusUnprocessableEntity)

	err = env.services.Review.CreateReview(env.ctx, 99, p.ID, dto.ReviewDto{Title: "new", Rating: 1})
	httpErr := requireStatus(t, err, http.StatusNotFound)
	assert.Equal(t, "Reviewer not found", httpErr.Message)

	err = env.services.Review.CreateReview(env.ctx, env.reviewerID, 99, dto.ReviewDto{Title: "new", Rating: 1})
	httpErr = requireStatus(t, err, http.StatusNotFound)
	assert.Equal(t, "Pokemon not found", httpErr.Message)
}

func TestReviewService_DeleteReviewsByReviewer(t *testing.T) {
	env := newTestEnv(t)
	p := env.createPokemon(t, "Pikachu")
	env.createReview(t, p.ID, "great", 4)

	require.NoError(t, env.services.Review.DeleteReviewsByReviewer(env.ctx, env.reviewerID))
	reviews, err := env.services.Review.GetReviewsOfAPokemon(env.ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	err = env.services.Review.DeleteReviewsByReviewer(env.ctx, 99)
	requireStatus(t, err, http.StatusNotFound)
}

func TestCountryService_DeleteWhileOwnersReferenceIt(t *testing.T) {
	env := newTestEnv(t)
	countries, err := env.services.Country.GetCountries(env.ctx)
	require.NoError(t, err)

	err = env.services.Country.DeleteCountry(env.ctx, countries[0].ID)
	httpErr := requireStatus(t, err, http.StatusInternalServerError)
	assert.Equal(t, "Something went wrong deleting country", httpErr.Message)

	country, err := env.services.Country.GetCountryOfAnOwner(env.ctx, env.ownerID)
	require.NoError(t, err)
	assert.Equal(t, "Kanto", country.Name)
}

func TestCategoryService_UpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)

	err := env.services.Category.UpdateCategory(env.ctx, dto.CategoryDto{ID: 99, Name: "x"})
	requireStatus(t, err, http.StatusNotFound)

	require.NoError(t, env.services.Category.UpdateCategory(env.ctx, dto.CategoryDto{ID: env.categoryID, Name: "Thunder"}))
	got, err := env.services.Category.GetCategory(env.ctx, env.categoryID)
	require.NoError(t, err)
	assert.Equal(t, "Thunder", got.Name)

	require.NoError(t, env.services.Category.DeleteCategory(env.ctx, env.categoryID))
	err = env.services.Category.DeleteCategory(env.ctx, env.categoryID)
	requireStatus(t, err, http.StatusNotFound)
}

func TestOwnerService_CreateRequiresCountry(t *testing.T) {
	env := newTestEnv(t)

	err := env.services.Owner.CreateOwner(env.ctx, 99, dto.OwnerDto{Name: "Brock"})
	httpErr := requireStatus(t, err, http.StatusNotFound)
	assert.Equal(t, "Country not found", httpErr.Message)

	err = env.services.Owner.CreateOwner(env.ctx, 1, dto.OwnerDto{Name: "ash"})
	requireStatus(t, err, http.StatusUnprocessableEntity)
}
