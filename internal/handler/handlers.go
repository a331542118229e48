// Package handler is the first layer after the router.
//
// It binds path, query and body input into dto request types,
// validates them through the validation package and calls the
// service layer. Errors are returned to the global error handler.
package handler

import (
	"github.com/deppfellow/pokemon-review/internal/server"
	"github.com/deppfellow/pokemon-review/internal/service"
)

// Handlers groups every HTTP handler so the router takes a single value.
type Handlers struct {
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	Category *CategoryHandler
	Country  *CountryHandler
	Owner    *OwnerHandler
	Pokemon  *PokemonHandler
	Review   *ReviewHandler
	Reviewer *ReviewerHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
		Category: NewCategoryHandler(s, services.Category),
		Country:  NewCountryHandler(s, services.Country),
		Owner:    NewOwnerHandler(s, services.Owner),
		Pokemon:  NewPokemonHandler(s, services.Pokemon),
		Review:   NewReviewHandler(s, services.Review),
		Reviewer: NewReviewerHandler(s, services.Reviewer),
	}
}
