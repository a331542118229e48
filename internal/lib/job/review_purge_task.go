package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskReviewPurge removes the reviews left behind when a cascade delete
	// could not remove them inline.
	TaskReviewPurge = "review:purge"
)

// ReviewPurgePayload is the JSON payload of a TaskReviewPurge task.
type ReviewPurgePayload struct {
	PokemonID int `json:"pokemon_id"`
}

// NewReviewPurgeTask builds a purge task for one pokemon: up to 3 retries
// on the default queue, 30s per attempt.
func NewReviewPurgeTask(pokemonID int) (*asynq.Task, error) {
	payload, err := json.Marshal(ReviewPurgePayload{
		PokemonID: pokemonID,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskReviewPurge,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
