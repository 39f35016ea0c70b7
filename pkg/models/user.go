package models

// User represents the currently logged in Nella user.
// It is an immutable snapshot constructed fresh for every request.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
