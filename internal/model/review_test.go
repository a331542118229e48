package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    string
	}{
		{name: "no reviews", ratings: nil, want: "0"},
		{name: "single review", ratings: []int{4}, want: "4"},
		{name: "exact mean", ratings: []int{1, 2}, want: "1.5"},
		{name: "repeating mean", ratings: []int{4, 5, 5}, want: "4.67"},
		{name: "half rounds to even down", ratings: []int{1, 1, 1, 1, 1, 1, 1, 2}, want: "1.12"},
		{name: "half rounds to even up", ratings: []int{1, 1, 1, 1, 1, 2, 2, 2}, want: "1.38"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AverageRating(tt.ratings)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
