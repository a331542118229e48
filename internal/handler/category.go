package handler

import (
	"net/http"

	"github.com/deppfellow/pokemon-review/internal/dto"
	"github.com/deppfellow/pokemon-review/internal/server"
	"github.com/deppfellow/pokemon-review/internal/service"
	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	Handler
	categoryService *service.CategoryService
}

func NewCategoryHandler(s *server.Server, categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		Handler:         NewHandler(s),
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) GetCategories(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *dto.ListRequest) ([]dto.CategoryDto, error) {
		return h.categoryService.GetCategories(c.Request().Context())
	}, http.StatusOK, &dto.ListRequest{})(c)
}

func (h *CategoryHandler) GetCategory(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.CategoryIDRequest) (*dto.CategoryDto, error) {
		return h.categoryService.GetCategory(c.Request().Context(), req.CategoryID)
	}, http.StatusOK, &dto.CategoryIDRequest{})(c)
}

func (h *CategoryHandler) GetPokemonsByCategory(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.CategoryIDRequest) ([]dto.PokemonDto, error) {
		return h.categoryService.GetPokemonsByCategory(c.Request().Context(), req.CategoryID)
	}, http.StatusOK, &dto.CategoryIDRequest{})(c)
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.CreateCategoryRequest) (string, error) {
		if err := h.categoryService.CreateCategory(c.Request().Context(), req.Name); err != nil {
			return "", err
		}
		return dto.MsgCreated, nil
	}, http.StatusOK, &dto.CreateCategoryRequest{})(c)
}

func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.UpdateCategoryRequest) (string, error) {
		update := dto.CategoryDto{ID: req.ID, Name: req.Name}
		if err := h.categoryService.UpdateCategory(c.Request().Context(), update); err != nil {
			return "", err
		}
		return dto.MsgUpdated, nil
	}, http.StatusOK, &dto.UpdateCategoryRequest{})(c)
}

func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.CategoryIDRequest) (string, error) {
		if err := h.categoryService.DeleteCategory(c.Request().Context(), req.CategoryID); err != nil {
			return "", err
		}
		return dto.MsgDeleted, nil
	}, http.StatusOK, &dto.CategoryIDRequest{})(c)
}
