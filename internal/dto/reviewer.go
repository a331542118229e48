package dto

import "github.com/deppfellow/pokemon-review/internal/validation"

type ReviewerDto struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type ReviewerIDRequest struct {
	ReviewerID int `param:"reviewerId" json:"-" validate:"required,min=1"`
}

func (r *ReviewerIDRequest) Validate() error { return validation.Struct(r) }

type CreateReviewerRequest struct {
	FirstName string `json:"firstName" validate:"notblank,max=100"`
	LastName  string `json:"lastName" validate:"notblank,max=100"`
}

func (r *CreateReviewerRequest) Validate() error { return validation.Struct(r) }

type UpdateReviewerRequest struct {
	ReviewerID int    `param:"reviewerId" json:"-" validate:"required,min=1"`
	ID         int    `json:"id" validate:"required,min=1"`
	FirstName  string `json:"firstName" validate:"notblank,max=100"`
	LastName   string `json:"lastName" validate:"notblank,max=100"`
}

func (r *UpdateReviewerRequest) Validate() error {
	return matchIDs(r, "reviewerId", r.ReviewerID, r.ID)
}
