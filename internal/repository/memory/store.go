// Package memory is an in-process store implementing the repository
// interfaces. It keeps the relational rules of the Postgres schema: missing
// rows come back as sqlerr.NotFound and broken references as the same
// pgconn.PgError codes Postgres would raise, so the layers above cannot tell
// the drivers apart.
package memory

import (
	"cmp"
	"slices"
	"strings"
	"sync"

	"github.com/deppfellow/pokemon-review/internal/model"
	"github.com/deppfellow/pokemon-review/internal/sqlerr"
	"github.com/jackc/pgx/v5/pgconn"
)

type link struct {
	pokemonID int
	otherID   int
}

// Store holds every table behind one lock.
type Store struct {
	mu sync.RWMutex

	categories map[int]model.Category
	countries  map[int]model.Country
	owners     map[int]model.Owner
	pokemon    map[int]model.Pokemon
	reviews    map[int]model.Review
	reviewers  map[int]model.Reviewer

	pokemonOwners     map[link]struct{}
	pokemonCategories map[link]struct{}

	nextID map[string]int
}

func NewStore() *Store {
	return &Store{
		categories:        make(map[int]model.Category),
		countries:         make(map[int]model.Country),
		owners:            make(map[int]model.Owner),
		pokemon:           make(map[int]model.Pokemon),
		reviews:           make(map[int]model.Review),
		reviewers:         make(map[int]model.Reviewer),
		pokemonOwners:     make(map[link]struct{}),
		pokemonCategories: make(map[link]struct{}),
		nextID:            make(map[string]int),
	}
}

func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }
func (s *Store) Countries() *CountryRepo   { return &CountryRepo{s: s} }
func (s *Store) Owners() *OwnerRepo        { return &OwnerRepo{s: s} }
func (s *Store) Pokemons() *PokemonRepo    { return &PokemonRepo{s: s} }
func (s *Store) Reviews() *ReviewRepo      { return &ReviewRepo{s: s} }
func (s *Store) Reviewers() *ReviewerRepo  { return &ReviewerRepo{s: s} }

// allocID hands out serial ids per table, starting at 1. Callers hold mu.
func (s *Store) allocID(table string) int {
	s.nextID[table]++
	return s.nextID[table]
}

// sameName compares names the way the Postgres repositories do:
// upper(trim(a)) = upper(trim(b)). trim drops spaces only, not tabs or
// newlines.
func sameName(a, b string) bool {
	return strings.EqualFold(strings.Trim(a, " "), strings.Trim(b, " "))
}

// sortedValues returns the map values ordered by id.
func sortedValues[T any](m map[int]T, id func(T) int) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b T) int { return cmp.Compare(id(a), id(b)) })
	return out
}

func filterSorted[T any](m map[int]T, id func(T) int, keep func(T) bool) []T {
	out := make([]T, 0)
	for _, v := range m {
		if keep(v) {
			out = append(out, v)
		}
	}
	slices.SortFunc(out, func(a, b T) int { return cmp.Compare(id(a), id(b)) })
	return out
}

func findFirst[T any](m map[int]T, id func(T) int, match func(T) bool) *T {
	matches := filterSorted(m, id, match)
	if len(matches) == 0 {
		return nil
	}
	return &matches[0]
}

// foreignKeyViolation mirrors the error Postgres raises for a broken
// reference from table.column.
func foreignKeyViolation(table, column, constraint string) error {
	return &pgconn.PgError{
		Severity:       string(sqlerr.SeverityError),
		Code:           "23503",
		Message:        "violates foreign key constraint \"" + constraint + "\"",
		TableName:      table,
		ColumnName:     column,
		ConstraintName: constraint,
	}
}

func checkViolation(table, column, constraint string) error {
	return &pgconn.PgError{
		Severity:       string(sqlerr.SeverityError),
		Code:           "23514",
		Message:        "violates check constraint \"" + constraint + "\"",
		TableName:      table,
		ColumnName:     column,
		ConstraintName: constraint,
	}
}

func categoryKey(c model.Category) int { return c.ID }
func countryKey(c model.Country) int   { return c.ID }
func ownerKey(o model.Owner) int       { return o.ID }
func pokemonKey(p model.Pokemon) int   { return p.ID }
func reviewKey(r model.Review) int     { return r.ID }
func reviewerKey(r model.Reviewer) int { return r.ID }
