package admin

import (
	"Meal-Planner/domain"
	"Meal-Planner/pkg/jwt"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestLogin(t *testing.T) {
	tokens := jwt.NewJWTServiceWithSecret("secret")
	svc := NewAdminService(tokens, hash(t, "kitchen"))

	res, err := svc.Login(context.Background(), domain.AdminLoginRequest{Password: "kitchen"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	_, role, err := tokens.GetRoleByToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, role)
}

func TestLoginRejected(t *testing.T) {
	svc := NewAdminService(jwt.NewJWTServiceWithSecret("secret"), hash(t, "kitchen"))

	_, err := svc.Login(context.Background(), domain.AdminLoginRequest{Password: "garden"})
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)
}

func TestLoginNotConfigured(t *testing.T) {
	svc := NewAdminService(jwt.NewJWTServiceWithSecret("secret"), "")

	_, err := svc.Login(context.Background(), domain.AdminLoginRequest{Password: "kitchen"})
	assert.ErrorIs(t, err, domain.ErrAdminNotConfigured)
}
