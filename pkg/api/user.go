package api

// UserResponse represents the backend user/{id} payload.
// Field names follow the backend's PascalCase JSON convention.
type UserResponse struct {
	UserName string `json:"UserName"`
	Email    string `json:"Email"`
}
