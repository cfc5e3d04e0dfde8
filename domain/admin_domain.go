package domain

import "errors"

var (
	MessageSuccessLogin = "access granted"
	MessageFailedLogin  = "invalid password"

	ErrInvalidPassword    = errors.New("invalid password")
	ErrAdminNotConfigured = errors.New("admin password is not configured")
)

type (
	AdminLoginRequest struct {
		Password string `json:"password" validate:"required"`
	}

	AdminLoginResponse struct {
		Token string `json:"token"`
	}
)
