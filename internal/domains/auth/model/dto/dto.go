package dto

type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name"     validate:"required,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult carries the session token alongside the profile fields the
// handler echoes back. The token itself only ever travels in the cookie.
type LoginResult struct {
	Token string `json:"-"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
