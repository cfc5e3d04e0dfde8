package jwt

import (
	"Meal-Planner/domain"
	"Meal-Planner/internal/utils"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v4"
)

const tokenLifetime = 12 * time.Hour

type (
	JWTService interface {
		GenerateToken(subject string, role string) (string, error)
		ValidateToken(token string) (*jwt.Token, error)
		GetRoleByToken(token string) (string, string, error)
	}

	jwtClaim struct {
		Role string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		now       func() time.Time
	}
)

func NewJWTService() JWTService {
	return NewJWTServiceWithSecret(utils.GetConfig("JWT_SECRET"))
}

func NewJWTServiceWithSecret(secret string) JWTService {
	if secret == "" {
		log.Warn("JWT_SECRET is empty, admin tokens are signed with an empty key")
	}
	return &jwtService{
		secretKey: secret,
		issuer:    "MEAL-PLANNER",
		now:       time.Now,
	}
}

func (j *jwtService) GenerateToken(subject string, role string) (string, error) {
	now := j.now()
	claims := jwtClaim{
		role,
		jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtClaim{}, j.parseToken)
}

// GetRoleByToken returns the subject and role carried by a valid token.
func (j *jwtService) GetRoleByToken(token string) (string, string, error) {
	t_Token, err := j.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", domain.ErrTokenExpired
		}
		return "", "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtClaim)
	if claims.Issuer != j.issuer {
		return "", "", domain.ErrTokenInvalid
	}
	return claims.Subject, claims.Role, nil
}
