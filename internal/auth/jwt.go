package auth

import (
	"fmt"
	"strconv"
	"time"

	"galaxy-server/internal/shared/config"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	PlayerID  int    `json:"player_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	Anonymous bool   `json:"anonymous"`
	jwt.RegisteredClaims
}

type JWTManager struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

func NewJWTManager(cfg config.AuthConfig) *JWTManager {
	return &JWTManager{
		secret:     []byte(cfg.JWTSecret),
		expiration: cfg.TokenExpiration,
		now:        time.Now,
	}
}

func (m *JWTManager) Generate(playerID int, username, role string, anonymous bool) (string, error) {
	if len(m.secret) == 0 {
		return "", fmt.Errorf("cannot generate JWT: secret is not configured")
	}

	now := m.now()
	claims := Claims{
		PlayerID:  playerID,
		Username:  username,
		Role:      role,
		Anonymous: anonymous,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   strconv.Itoa(playerID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *JWTManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
