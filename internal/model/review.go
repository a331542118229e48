package model

import "github.com/shopspring/decimal"

const (
	// MinRating and MaxRating bound Review.Rating. The API validates the range
	// and the reviews table carries the same CHECK constraint.
	MinRating = 1
	MaxRating = 5

	// RatingPlaces is the number of decimal places an average rating keeps.
	RatingPlaces = 2
)

// Review is one Reviewer's opinion about one Pokemon.
type Review struct {
	ID         int    `db:"id"`
	Title      string `db:"title"`
	Text       string `db:"text"`
	Rating     int    `db:"rating"`
	PokemonID  int    `db:"pokemon_id"`
	ReviewerID int    `db:"reviewer_id"`
}

// AverageRating returns the arithmetic mean of ratings rounded half-even to
// RatingPlaces. An empty slice averages to zero.
func AverageRating(ratings []int) decimal.Decimal {
	if len(ratings) == 0 {
		return decimal.Zero
	}

	var sum int64
	for _, r := range ratings {
		sum += int64(r)
	}

	return decimal.NewFromInt(sum).
		Div(decimal.NewFromInt(int64(len(ratings)))).
		RoundBank(RatingPlaces)
}
