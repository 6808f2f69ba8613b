package model

import "time"

const (
	TableName     = "workouts"
	EntityName    = "workout"
	PrimaryColumn = "id"
)

const (
	FieldID     = "id"
	FieldUserID = "user_id"
)

// Workout is a single logged session, always owned by one user.
type Workout struct {
	ID         int       `db:"id" insert:"-"`
	Pushups    int       `db:"pushups"`
	DatePosted time.Time `db:"date_posted"`
	Comment    string    `db:"comment"`
	UserID     int       `db:"user_id"`
}
