package response

type DeleteResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
