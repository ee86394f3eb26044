package aquamodel

// Credentials is the body posted to /login and /register.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents the body returned by /login and /register.
// A successful login carries AccessToken; a successful registration carries
// only Message. Error is set on non-2xx responses.
type AuthResponse struct {
	// AccessToken is the bearer credential issued on login.
	// Usage: Include in Authorization header: "Bearer <access_token>"
	AccessToken string `json:"access_token,omitempty"`

	// Message is the human readable confirmation returned on registration.
	Message string `json:"message,omitempty"`

	// Error is the human readable failure reason on non-2xx responses.
	Error string `json:"error,omitempty"`
}

// HasToken reports whether the response issued an access token.
func (r AuthResponse) HasToken() bool {
	return r.AccessToken != ""
}
