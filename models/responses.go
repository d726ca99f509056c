package models

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse acknowledges an operation that returns no record,
// e.g. a delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is the JSON body of a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// RegisterResponse is the JSON body of a successful registration:
// a confirmation message plus the created user without its secret.
type RegisterResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}
