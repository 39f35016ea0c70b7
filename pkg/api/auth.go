package api

// TokenResponse represents a successful response from the oauth/token endpoint
type TokenResponse struct {
	AccessToken string `json:"access_token"` // opaque bearer token
	TokenType   string `json:"token_type"`   // always "bearer"
	ExpiresIn   int64  `json:"expires_in"`   // session timeout in seconds
}

// ErrorResponse represents an OAuth-style error body returned on a failed
// authentication attempt (non-200 from oauth/token)
type ErrorResponse struct {
	Error            string `json:"error"`             // machine-readable code, e.g. "invalid_grant"
	ErrorDescription string `json:"error_description"` // human-readable description
}
