package handler

import (
	"net/http"

	"github.com/deppfellow/pokemon-review/internal/dto"
	"github.com/deppfellow/pokemon-review/internal/server"
	"github.com/deppfellow/pokemon-review/internal/service"
	"github.com/labstack/echo/v4"
)

type PokemonHandler struct {
	Handler
	pokemonService *service.PokemonService
}

func NewPokemonHandler(s *server.Server, pokemonService *service.PokemonService) *PokemonHandler {
	return &PokemonHandler{
		Handler:        NewHandler(s),
		pokemonService: pokemonService,
	}
}

func (h *PokemonHandler) GetPokemons(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *dto.ListRequest) ([]dto.PokemonDto, error) {
		return h.pokemonService.GetPokemons(c.Request().Context())
	}, http.StatusOK, &dto.ListRequest{})(c)
}

func (h *PokemonHandler) GetPokemon(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.PokemonIDRequest) (*dto.PokemonDto, error) {
		return h.pokemonService.GetPokemon(c.Request().Context(), req.PokeID)
	}, http.StatusOK, &dto.PokemonIDRequest{})(c)
}

// GetPokemonRating answers with a bare JSON number such as 4.67.
func (h *PokemonHandler) GetPokemonRating(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.PokemonIDRequest) (dto.RatingDto, error) {
		return h.pokemonService.GetPokemonRating(c.Request().Context(), req.PokeID)
	}, http.StatusOK, &dto.PokemonIDRequest{})(c)
}

func (h *PokemonHandler) CreatePokemon(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.CreatePokemonRequest) (string, error) {
		create := dto.PokemonDto{Name: req.Name, BirthDate: req.BirthDate}
		if err := h.pokemonService.CreatePokemon(c.Request().Context(), req.OwnerID, req.CategoryID, create); err != nil {
			return "", err
		}
		return dto.MsgCreated, nil
	}, http.StatusOK, &dto.CreatePokemonRequest{})(c)
}

func (h *PokemonHandler) UpdatePokemon(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.UpdatePokemonRequest) (string, error) {
		update := dto.PokemonDto{ID: req.ID, Name: req.Name, BirthDate: req.BirthDate}
		if err := h.pokemonService.UpdatePokemon(c.Request().Context(), req.OwnerID, req.CategoryID, update); err != nil {
			return "", err
		}
		return dto.MsgUpdated, nil
	}, http.StatusOK, &dto.UpdatePokemonRequest{})(c)
}

func (h *PokemonHandler) DeletePokemon(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.PokemonIDRequest) (string, error) {
		if err := h.pokemonService.DeletePokemon(c.Request().Context(), req.PokeID); err != nil {
			return "", err
		}
		return dto.MsgDeleted, nil
	}, http.StatusOK, &dto.PokemonIDRequest{})(c)
}
