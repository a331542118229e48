package handler

import (
	"net/http"

	"github.com/deppfellow/pokemon-review/internal/dto"
	"github.com/deppfellow/pokemon-review/internal/server"
	"github.com/deppfellow/pokemon-review/internal/service"
	"github.com/labstack/echo/v4"
)

type ReviewerHandler struct {
	Handler
	reviewerService *service.ReviewerService
}

func NewReviewerHandler(s *server.Server, reviewerService *service.ReviewerService) *ReviewerHandler {
	return &ReviewerHandler{
		Handler:         NewHandler(s),
		reviewerService: reviewerService,
	}
}

func (h *ReviewerHandler) GetReviewers(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *dto.ListRequest) ([]dto.ReviewerDto, error) {
		return h.reviewerService.GetReviewers(c.Request().Context())
	}, http.StatusOK, &dto.ListRequest{})(c)
}

func (h *ReviewerHandler) GetReviewer(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.ReviewerIDRequest) (*dto.ReviewerDto, error) {
		return h.reviewerService.GetReviewer(c.Request().Context(), req.ReviewerID)
	}, http.StatusOK, &dto.ReviewerIDRequest{})(c)
}

func (h *ReviewerHandler) GetReviewsByReviewer(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.ReviewerIDRequest) ([]dto.ReviewDto, error) {
		return h.reviewerService.GetReviewsByReviewer(c.Request().Context(), req.ReviewerID)
	}, http.StatusOK, &dto.ReviewerIDRequest{})(c)
}

func (h *ReviewerHandler) CreateReviewer(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.CreateReviewerRequest) (string, error) {
		create := dto.ReviewerDto{FirstName: req.FirstName, LastName: req.LastName}
		if err := h.reviewerService.CreateReviewer(c.Request().Context(), create); err != nil {
			return "", err
		}
		return dto.MsgCreated, nil
	}, http.StatusOK, &dto.CreateReviewerRequest{})(c)
}

func (h *ReviewerHandler) UpdateReviewer(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.UpdateReviewerRequest) (string, error) {
		update := dto.ReviewerDto{ID: req.ID, FirstName: req.FirstName, LastName: req.LastName}
		if err := h.reviewerService.UpdateReviewer(c.Request().Context(), update); err != nil {
			return "", err
		}
		return dto.MsgUpdated, nil
	}, http.StatusOK, &dto.UpdateReviewerRequest{})(c)
}

func (h *ReviewerHandler) DeleteReviewer(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *dto.ReviewerIDRequest) (string, error) {
		if err := h.reviewerService.DeleteReviewer(c.Request().Context(), req.ReviewerID); err != nil {
			return "", err
		}
		return dto.MsgDeleted, nil
	}, http.StatusOK, &dto.ReviewerIDRequest{})(c)
}
