package handler

import (
	"net/http"

	"github.com/deppfellow/pokemon-review/internal/dto"
	"github.com/deppfellow/pokemon-review/internal/server"
	"github.com/deppfellow/pokemon-review/internal/service"
	"github.com/labstack/echo/v4"
)

type CountryHandler struct {
	Handler
	countryService *service.CountryService
}

func NewCountryHandler(s *server.Server, countryService *service.CountryService) *CountryHandler {
	return &CountryHandler{
		Handler:        NewHandler(s),
		countryService: countryService,
	}
}

func (h *CountryHandler) GetCountries(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *dto.ListRequest) ([]dto.CountryDto, error) {
		return h.countryService.GetCountries(c.Request().Context())
	}, http.StatusOK, &dto.ListRequest{})(c)
}

func (h *CountryHandler) GetCountry(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.CountryIDRequest) (*dto.CountryDto, error) {
		return h.countryService.GetCountry(c.Request().Context(), req.CountryID)
	}, http.StatusOK, &dto.CountryIDRequest{})(c)
}

func (h *CountryHandler) GetCountryOfAnOwner(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.OwnerIDRequest) (*dto.CountryDto, error) {
		return h.countryService.GetCountryOfAnOwner(c.Request().Context(), req.OwnerID)
	}, http.StatusOK, &dto.OwnerIDRequest{})(c)
}

func (h *CountryHandler) GetOwnersFromACountry(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.CountryIDRequest) ([]dto.OwnerDto, error) {
		return h.countryService.GetOwnersFromACountry(c.Request().Context(), req.CountryID)
	}, http.StatusOK, &dto.CountryIDRequest{})(c)
}

func (h *CountryHandler) CreateCountry(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.CreateCountryRequest) (string, error) {
		if err := h.countryService.CreateCountry(c.Request().Context(), req.Name); err != nil {
			return "", err
		}
		return dto.MsgCreated, nil
	}, http.StatusOK, &dto.CreateCountryRequest{})(c)
}

func (h *CountryHandler) UpdateCountry(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.UpdateCountryRequest) (string, error) {
		update := dto.CountryDto{ID: req.ID, Name: req.Name}
		if err := h.countryService.UpdateCountry(c.Request().Context(), update); err != nil {
			return "", err
		}
		return dto.MsgUpdated, nil
	}, http.StatusOK, &dto.UpdateCountryRequest{})(c)
}

func (h *CountryHandler) DeleteCountry(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.CountryIDRequest) (string, error) {
		if err := h.countryService.DeleteCountry(c.Request().Context(), req.CountryID); err != nil {
			return "", err
		}
		return dto.MsgDeleted, nil
	}, http.StatusOK, &dto.CountryIDRequest{})(c)
}
