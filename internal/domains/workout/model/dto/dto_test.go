package dto_test

import (
	"testing"
	"time"

	"fitlog/internal/domains/workout/model"
	"fitlog/internal/domains/workout/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestNewWorkoutsPageResponse(t *testing.T) {
	posted := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	workouts := []model.Workout{
		{ID: 4, Pushups: 10, DatePosted: posted, Comment: "last one", UserID: 42},
	}

	t.Run("totals follow the fixed page size", func(t *testing.T) {
		res := dto.NewWorkoutsPageResponse(workouts, 2, 4)

		assert.Equal(t, 2, res.Page)
		assert.Equal(t, 2, res.TotalPages)
		assert.Equal(t, 4, res.TotalItems)
		assert.Len(t, res.Workouts, 1)
		assert.Equal(t, posted.Format(time.RFC3339), res.Workouts[0].DatePosted)
	})

	t.Run("empty page still serializes a list", func(t *testing.T) {
		res := dto.NewWorkoutsPageResponse(nil, 1, 0)

		assert.NotNil(t, res.Workouts)
		assert.Equal(t, 1, res.TotalPages)
	})
}
