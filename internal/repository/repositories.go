package repository

import (
	"github.com/deppfellow/pokemon-review/internal/repository/memory"
	"github.com/deppfellow/pokemon-review/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Category CategoryRepository
	Country  CountryRepository
	Owner    OwnerRepository
	Pokemon  PokemonRepository
	Review   ReviewRepository
	Reviewer ReviewerRepository
}

// NewRepositories picks the implementation matching the server: pgx
// repositories over s.DB.Pool when a database is connected, the in-memory
// store otherwise.
func NewRepositories(s *server.Server) *Repositories {
	if s.DB != nil {
		return NewPostgresRepositories(s.DB.Pool)
	}
	return NewMemoryRepositories(memory.NewStore())
}

// NewPostgresRepositories builds every repository over one DBTX.
func NewPostgresRepositories(db DBTX) *Repositories {
	return &Repositories{
		Category: NewCategoryRepository(db),
		Country:  NewCountryRepository(db),
		Owner:    NewOwnerRepository(db),
		Pokemon:  NewPokemonRepository(db),
		Review:   NewReviewRepository(db),
		Reviewer: NewReviewerRepository(db),
	}
}

// NewMemoryRepositories exposes a memory.Store through the repository
// interfaces.
func NewMemoryRepositories(store *memory.Store) *Repositories {
	return &Repositories{
		Category: store.Categories(),
		Country:  store.Countries(),
		Owner:    store.Owners(),
		Pokemon:  store.Pokemons(),
		Review:   store.Reviews(),
		Reviewer: store.Reviewers(),
	}
}
