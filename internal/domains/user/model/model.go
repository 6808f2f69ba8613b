package model

const (
	TableName     = "users"
	EntityName    = "user"
	PrimaryColumn = "id"
)

const (
	FieldID    = "id"
	FieldEmail = "email"
)

// User is an account row. Password holds the bcrypt hash, never plaintext.
type User struct {
	ID       int    `db:"id" insert:"-"`
	Email    string `db:"email"`
	Password string `db:"password"`
	Name     string `db:"name"`
}
