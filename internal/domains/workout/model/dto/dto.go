package dto

import (
	"fitlog/internal/domains/workout/model"
	"fitlog/shared"
	"fitlog/shared/constant"
)

type CreateWorkoutRequest struct {
	Pushups int    `json:"pushups" validate:"gte=0"`
	Comment string `json:"comment" validate:"omitempty,max=500"`
}

// UpdateWorkoutRequest overwrites both editable fields; edits are full
// replacements, not merges.
type UpdateWorkoutRequest struct {
	Pushups int    `db:"pushups" json:"pushups" validate:"gte=0"`
	Comment string `db:"comment" json:"comment" validate:"omitempty,max=500"`
}

type WorkoutResponse struct {
	ID         int    `json:"id"`
	Pushups    int    `json:"pushups"`
	DatePosted string `json:"date_posted"`
	Comment    string `json:"comment"`
}

func NewWorkoutResponse(workout model.Workout) WorkoutResponse {
	return WorkoutResponse{
		ID:         workout.ID,
		Pushups:    workout.Pushups,
		DatePosted: workout.DatePosted.Format(constant.DateFormat),
		Comment:    workout.Comment,
	}
}

type WorkoutsPageResponse struct {
	Workouts   []WorkoutResponse `json:"workouts"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
	TotalItems int               `json:"total_items"`
}

func NewWorkoutsPageResponse(workouts []model.Workout, page, totalItems int) WorkoutsPageResponse {
	response := WorkoutsPageResponse{
		Workouts:   make([]WorkoutResponse, 0, len(workouts)),
		Page:       page,
		TotalPages: shared.CalculateTotalPage(totalItems, constant.WorkoutsPerPage),
		TotalItems: totalItems,
	}

	for _, workout := range workouts {
		response.Workouts = append(response.Workouts, NewWorkoutResponse(workout))
	}

	return response
}
