package mapping

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/deppfellow/pokemon-review/internal/dto"
	"github.com/deppfellow/pokemon-review/internal/model"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPokemonsToDto(t *testing.T) {
	born := time.Date(1996, 2, 27, 0, 0, 0, 0, time.UTC)
	in := []model.Pokemon{
		{ID: 1, Name: "Pikachu", BirthDate: born},
		{ID: 2, Name: "Squirtle", BirthDate: born.AddDate(0, 0, 1)},
	}

	want := []dto.PokemonDto{
		{ID: 1, Name: "Pikachu", BirthDate: born},
		{ID: 2, Name: "Squirtle", BirthDate: born.AddDate(0, 0, 1)},
	}

	if diff := cmp.Diff(want, PokemonsToDto(in)); diff != "" {
		t.Errorf("PokemonsToDto mismatch (-want +got):\n%s", diff)
	}
}

func TestNilListMapsToEmptySlice(t *testing.T) {
	got := ReviewsToDto(nil)
	require.NotNil(t, got)

	body, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}

func TestReviewFromDtoDropsReferences(t *testing.T) {
	got := ReviewFromDto(dto.ReviewDto{ID: 3, Title: "Great", Text: "Loved it", Rating: 5})
	want := model.Review{ID: 3, Title: "Great", Text: "Loved it", Rating: 5}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReviewFromDto mismatch (-want +got):\n%s", diff)
	}
}

func TestOwnerRoundTripKeepsGender(t *testing.T) {
	owner := model.Owner{ID: 4, Name: "Misty", Gender: "female"}
	assert.Equal(t, owner, OwnerFromDto(OwnerToDto(owner)))
}

func TestRatingToDtoIsBareNumber(t *testing.T) {
	body, err := json.Marshal(RatingToDto(decimal.RequireFromString("4.67")))
	require.NoError(t, err)
	assert.Equal(t, "4.67", string(body))

	body, err = json.Marshal(RatingToDto(decimal.Zero))
	require.NoError(t, err)
	assert.Equal(t, "0", string(body))
}
