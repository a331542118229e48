package job

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePurger struct {
	calls   []int
	removed int
	err     error
}

func (f *fakePurger) PurgeReviewsOfPokemon(_ context.Context, pokemonID int) (int, error) {
	f.calls = append(f.calls, pokemonID)
	return f.removed, f.err
}

func newTestJobService(purger ReviewPurger) *JobService {
	logger := zerolog.Nop()
	j := &JobService{logger: &logger}
	j.InitHandlers(purger)
	return j
}

func TestNewReviewPurgeTask(t *testing.T) {
	task, err := NewReviewPurgeTask(42)
	require.NoError(t, err)

	assert.Equal(t, TaskReviewPurge, task.Type())
	assert.JSONEq(t, `{"pokemon_id":42}`, string(task.Payload()))
}

func TestHandleReviewPurgeTask(t *testing.T) {
	purger := &fakePurger{removed: 3}
	j := newTestJobService(purger)

	task, err := NewReviewPurgeTask(7)
	require.NoError(t, err)

	require.NoError(t, j.handleReviewPurgeTask(context.Background(), task))
	assert.Equal(t, []int{7}, purger.calls)
}

func TestHandleReviewPurgeTask_PurgerErrorIsRetried(t *testing.T) {
	purger := &fakePurger{err: errors.New("connection reset")}
	j := newTestJobService(purger)

	task, err := NewReviewPurgeTask(7)
	require.NoError(t, err)

	err = j.handleReviewPurgeTask(context.Background(), task)
	require.Error(t, err)
	assert.False(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandleReviewPurgeTask_BadPayloadSkipsRetry(t *testing.T) {
	j := newTestJobService(&fakePurger{})

	err := j.handleReviewPurgeTask(context.Background(), asynq.NewTask(TaskReviewPurge, []byte("{")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}
