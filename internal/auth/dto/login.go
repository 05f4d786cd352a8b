package dto

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// ErrorResponse is the structured failure body returned by the auth API.
type ErrorResponse struct {
	Message    string `json:"message"`
	Code       string `json:"code"`
	HTTPStatus int    `json:"http_status"`
	Details    string `json:"details,omitempty"`
}
