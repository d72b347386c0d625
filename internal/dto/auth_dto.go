package dto

// Data Transfer Objects for authentication requests and responses

// SignupRequest: payload for user signup, also reused for login and profile
// update since all three carry the same two fields
type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse: response payload after successful login
type LoginResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// OAuthTokenResponse: response for the form-encoded /token endpoint, shaped
// the way OAuth2 password-grant clients (and Swagger UI) expect
type OAuthTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // always "bearer"
}

// RefreshTokenRequest: payload for refreshing an access token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshResponse: response payload after refreshing an access token
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserOut: public view of a user, used for profile display
type UserOut struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
