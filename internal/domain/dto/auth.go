package dto

// TokenRequest is the request body for the token endpoint. Clients exchange
// their credentials for a short-lived bearer token.
//
// @Description Request to issue an API access token
// @Example {"client_id": "pricing-portal", "client_secret": "s3cret"}
type TokenRequest struct {
	ClientID     string `json:"client_id" binding:"required" example:"pricing-portal"`
	ClientSecret string `json:"client_secret" binding:"required,min=8"`
} // @name TokenRequest

// TokenResponse is the response body for the token endpoint.
//
// @Description Issued bearer token
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"Bearer"`
	// ExpiresIn is the token lifetime in seconds
	ExpiresIn int64 `json:"expires_in" example:"900"`
} // @name TokenResponse
