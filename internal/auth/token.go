package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"taskhive_backend/internal/config"
	"taskhive_backend/internal/models"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the JWT payload shared by access and refresh tokens. The
// (ActorID, Role) pair is the trusted identity every core operation runs as.
type Claims struct {
	ActorID  string      `json:"id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateAccessToken issues a short-lived access token.
func GenerateAccessToken(actorID, username string, role models.Role) (string, error) {
	cfg := config.GetConfig()
	return generateToken(actorID, username, role, time.Duration(cfg.JWT.AccessTTLMin)*time.Minute)
}

// GenerateRefreshToken issues a long-lived refresh token.
func GenerateRefreshToken(actorID, username string, role models.Role) (string, error) {
	cfg := config.GetConfig()
	return generateToken(actorID, username, role, time.Duration(cfg.JWT.RefreshTTLDays)*24*time.Hour)
}

func generateToken(actorID, username string, role models.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		ActorID:  actorID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			// The jti keeps tokens issued within the same second distinct,
			// which the refresh-token store's unique index relies on.
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.GetConfig().JWT.Secret))
}

// ParseToken validates the signature and expiry and returns the claims.
func ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(config.GetConfig().JWT.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Role != models.RoleUser && claims.Role != models.RoleHelper {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
