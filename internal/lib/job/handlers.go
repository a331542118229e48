package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// ReviewPurger deletes every review attached to a pokemon and reports how
// many were removed.
type ReviewPurger interface {
	PurgeReviewsOfPokemon(ctx context.Context, pokemonID int) (int, error)
}

// InitHandlers sets the dependencies task handlers run against. It must be
// called before Start.
func (j *JobService) InitHandlers(purger ReviewPurger) {
	j.purger = purger
}

func (j *JobService) handleReviewPurgeTask(ctx context.Context, t *asynq.Task) error {
	var p ReviewPurgePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal review purge payload: %w: %w", err, asynq.SkipRetry)
	}

	if j.purger == nil {
		return fmt.Errorf("review purge handler not initialized")
	}

	j.logger.Info().
		Str("type", TaskReviewPurge).
		Int("pokemon_id", p.PokemonID).
		Msg("Processing review purge task")

	removed, err := j.purger.PurgeReviewsOfPokemon(ctx, p.PokemonID)
	if err != nil {
		j.logger.Error().
			Str("type", TaskReviewPurge).
			Int("pokemon_id", p.PokemonID).
			Err(err).
			Msg("Failed to purge reviews")
		return err
	}

	j.logger.Info().
		Str("type", TaskReviewPurge).
		Int("pokemon_id", p.PokemonID).
		Int("removed", removed).
		Msg("Successfully purged reviews")

	return nil
}
