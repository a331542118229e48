package handler

import (
	"net/http"

	"github.com/deppfellow/pokemon-review/internal/dto"
	"github.com/deppfellow/pokemon-review/internal/server"
	"github.com/deppfellow/pokemon-review/internal/service"
	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	Handler
	reviewService *service.ReviewService
}

func NewReviewHandler(s *server.Server, reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		Handler:       NewHandler(s),
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) GetReviews(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *dto.ListRequest) ([]dto.ReviewDto, error) {
		return h.reviewService.GetReviews(c.Request().Context())
	}, http.StatusOK, &dto.ListRequest{})(c)
}

func (h *ReviewHandler) GetReview(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.ReviewIDRequest) (*dto.ReviewDto, error) {
		return h.reviewService.GetReview(c.Request().Context(), req.ReviewID)
	}, http.StatusOK, &dto.ReviewIDRequest{})(c)
}

func (h *ReviewHandler) GetReviewsOfAPokemon(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.PokemonIDRequest) ([]dto.ReviewDto, error) {
		return h.reviewService.GetReviewsOfAPokemon(c.Request().Context(), req.PokeID)
	}, http.StatusOK, &dto.PokemonIDRequest{})(c)
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.CreateReviewRequest) (string, error) {
		create := dto.ReviewDto{Title: req.Title, Text: req.Text, Rating: req.Rating}
		if err := h.reviewService.CreateReview(c.Request().Context(), req.ReviewerID, req.PokeID, create); err != nil {
			return "", err
		}
		return dto.MsgCreated, nil
	}, http.StatusOK, &dto.CreateReviewRequest{})(c)
}

func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.UpdateReviewRequest) (string, error) {
		update := dto.ReviewDto{ID: req.ID, Title: req.Title, Text: req.Text, Rating: req.Rating}
		if err := h.reviewService.UpdateReview(c.Request().Context(), update); err != nil {
			return "", err
		}
		return dto.MsgUpdated, nil
	}, http.StatusOK, &dto.UpdateReviewRequest{})(c)
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.ReviewIDRequest) (string, error) {
		if err := h.reviewService.DeleteReview(c.Request().Context(), req.ReviewID); err != nil {
			return "", err
		}
		return dto.MsgDeleted, nil
	}, http.StatusOK, &dto.ReviewIDRequest{})(c)
}

func (h *ReviewHandler) DeleteReviewsByReviewer(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.ReviewerIDRequest) (string, error) {
		if err := h.reviewService.DeleteReviewsByReviewer(c.Request().Context(), req.ReviewerID); err != nil {
			return "", err
		}
		return dto.MsgDeleted, nil
	}, http.StatusOK, &dto.ReviewerIDRequest{})(c)
}
