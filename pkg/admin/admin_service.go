package admin

import (
	"Meal-Planner/domain"
	"Meal-Planner/pkg/jwt"
	"context"
	"errors"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/crypto/bcrypt"
)

const subject = "admin"

type (
	AdminService interface {
		Login(ctx context.Context, req domain.AdminLoginRequest) (domain.AdminLoginResponse, error)
	}

	adminService struct {
		jwtService   jwt.JWTService
		passwordHash string
	}
)

// NewAdminService checks logins against a bcrypt hash, usually
// ADMIN_PASSWORD_HASH from the config.
func NewAdminService(jwtService jwt.JWTService, passwordHash string) AdminService {
	return &adminService{
		jwtService:   jwtService,
		passwordHash: passwordHash,
	}
}

func (s *adminService) Login(ctx context.Context, req domain.AdminLoginRequest) (domain.AdminLoginResponse, error) {
	if s.passwordHash == "" {
		return domain.AdminLoginResponse{}, domain.ErrAdminNotConfigured
	}

	err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(req.Password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			log.Warnw("admin login rejected")
			return domain.AdminLoginResponse{}, domain.ErrInvalidPassword
		}
		return domain.AdminLoginResponse{}, err
	}

	token, err := s.jwtService.GenerateToken(subject, domain.RoleAdmin)
	if err != nil {
		return domain.AdminLoginResponse{}, err
	}
	return domain.AdminLoginResponse{Token: token}, nil
}
