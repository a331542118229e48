package handler

import (
	"net/http"

	"github.com/deppfellow/pokemon-review/internal/dto"
	"github.com/deppfellow/pokemon-review/internal/server"
	"github.com/deppfellow/pokemon-review/internal/service"
	"github.com/labstack/echo/v4"
)

type OwnerHandler struct {
	Handler
	ownerService *service.OwnerService
}

func NewOwnerHandler(s *server.Server, ownerService *service.OwnerService) *OwnerHandler {
	return &OwnerHandler{
		Handler:      NewHandler(s),
		ownerService: ownerService,
	}
}

func (h *OwnerHandler) GetOwners(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *dto.ListRequest) ([]dto.OwnerDto, error) {
		return h.ownerService.GetOwners(c.Request().Context())
	}, http.StatusOK, &dto.ListRequest{})(c)
}

func (h *OwnerHandler) GetOwner(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.OwnerIDRequest) (*dto.OwnerDto, error) {
		return h.ownerService.GetOwner(c.Request().Context(), req.OwnerID)
	}, http.StatusOK, &dto.OwnerIDRequest{})(c)
}

func (h *OwnerHandler) GetPokemonByOwner(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.OwnerIDRequest) ([]dto.PokemonDto, error) {
		return h.ownerService.GetPokemonByOwner(c.Request().Context(), req.OwnerID)
	}, http.StatusOK, &dto.OwnerIDRequest{})(c)
}

func (h *OwnerHandler) GetOwnersOfAPokemon(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.PokemonIDRequest) ([]dto.OwnerDto, error) {
		return h.ownerService.GetOwnersOfAPokemon(c.Request().Context(), req.PokeID)
	}, http.StatusOK, &dto.PokemonIDRequest{})(c)
}

func (h *OwnerHandler) CreateOwner(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.CreateOwnerRequest) (string, error) {
		create := dto.OwnerDto{Name: req.Name, Gender: req.Gender}
		if err := h.ownerService.CreateOwner(c.Request().Context(), req.CountryID, create); err != nil {
			return "", err
		}
		return dto.MsgCreated, nil
	}, http.StatusOK, &dto.CreateOwnerRequest{})(c)
}

func (h *OwnerHandler) UpdateOwner(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.UpdateOwnerRequest) (string, error) {
		update := dto.OwnerDto{ID: req.ID, Name: req.Name, Gender: req.Gender}
		if err := h.ownerService.UpdateOwner(c.Request().Context(), req.CountryID, update); err != nil {
			return "", err
		}
		return dto.MsgUpdated, nil
	}, http.StatusOK, &dto.UpdateOwnerRequest{})(c)
}

func (h *OwnerHandler) DeleteOwner(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.OwnerIDRequest) (string, error) {
		if err := h.ownerService.DeleteOwner(c.Request().Context(), req.OwnerID); err != nil {
			return "", err
		}
		return dto.MsgDeleted, nil
	}, http.StatusOK, &dto.OwnerIDRequest{})(c)
}
