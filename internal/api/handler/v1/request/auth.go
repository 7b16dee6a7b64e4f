package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// LoginRequest is the OAuth2 password form posted to /token.
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}
