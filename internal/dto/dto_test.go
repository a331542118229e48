package dto

import (
	"errors"
	"testing"

	"github.com/deppfellow/pokemon-review/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateRequests_PathAndBodyIDMustMatch(t *testing.T) {
	req := &UpdatePokemonRequest{PokeID: 5, ID: 7, Name: "Pikachu"}

	err := req.Validate()
	var custom validation.CustomValidationErrors
	require.ErrorAs(t, err, &custom)
	assert.Equal(t, "id", custom[0].Field)
	assert.Equal(t, "must match pokeId in the path", custom[0].Message)

	req.ID = 5
	assert.NoError(t, req.Validate())
}

func TestUpdateRequests_TagRulesRunFirst(t *testing.T) {
	req := &UpdateCategoryRequest{CategoryID: 1, ID: 2}

	err := req.Validate()
	require.Error(t, err)
	var custom validation.CustomValidationErrors
	assert.False(t, errors.As(err, &custom))
}

func TestReviewRequests_RatingRange(t *testing.T) {
	for rating, valid := range map[int]bool{0: false, 1: true, 5: true, 6: false} {
		req := &CreateReviewRequest{ReviewerID: 1, PokeID: 1, Title: "t", Rating: rating}
		if valid {
			assert.NoError(t, req.Validate(), "rating %d", rating)
		} else {
			assert.Error(t, req.Validate(), "rating %d", rating)
		}
	}
}

func TestUpdatePokemonRequest_LinksAreOptional(t *testing.T) {
	req := &UpdatePokemonRequest{PokeID: 1, ID: 1, Name: "Raichu"}
	assert.NoError(t, req.Validate())

	req.OwnerID = -1
	assert.Error(t, req.Validate())
}
