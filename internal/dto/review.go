package dto

import "github.com/deppfellow/pokemon-review/internal/validation"

type ReviewDto struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

type ReviewIDRequest struct {
	ReviewID int `param:"reviewId" json:"-" validate:"required,min=1"`
}

func (r *ReviewIDRequest) Validate() error { return validation.Struct(r) }

// CreateReviewRequest is POST /api/review?reviewerId=&pokeId=.
type CreateReviewRequest struct {
	ReviewerID int    `query:"reviewerId" json:"-" validate:"required,min=1"`
	PokeID     int    `query:"pokeId" json:"-" validate:"required,min=1"`
	Title      string `json:"title" validate:"notblank,max=200"`
	Text       string `json:"text" validate:"max=4000"`
	Rating     int    `json:"rating" validate:"min=1,max=5"`
}

func (r *CreateReviewRequest) Validate() error { return validation.Struct(r) }

type UpdateReviewRequest struct {
	ReviewID int    `param:"reviewId" json:"-" validate:"required,min=1"`
	ID       int    `json:"id" validate:"required,min=1"`
	Title    string `json:"title" validate:"notblank,max=200"`
	Text     string `json:"text" validate:"max=4000"`
	Rating   int    `json:"rating" validate:"min=1,max=5"`
}

func (r *UpdateReviewRequest) Validate() error {
	return matchIDs(r, "reviewId", r.ReviewID, r.ID)
}
