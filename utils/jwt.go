package utils

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "resto-dev-secret"
	}
	return []byte(secret)
}

func GenerateTokens(userID uuid.UUID) (string, string, error) {
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID.String(),
		"exp": time.Now().Add(15 * time.Minute).Unix(),
	})
	access, err := accessToken.SignedString(jwtSecret())
	if err != nil {
		return "", "", err
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID.String(),
		"exp": time.Now().Add(12 * time.Hour).Unix(),
	})
	refresh, err := refreshToken.SignedString(jwtSecret())
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

func ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("error parsing token: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, errors.New("invalid or missing expiration claim")
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, errors.New("token has expired")
	}

	return claims, nil
}

// RefreshTokens exchanges a still-valid refresh token for a new pair.
func RefreshTokens(refreshToken string) (string, string, error) {
	claims, err := ValidateToken(refreshToken)
	if err != nil {
		return "", "", err
	}

	idStr, ok := claims["id"].(string)
	if !ok {
		return "", "", errors.New("id not found in token")
	}
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return "", "", errors.New("invalid id in token")
	}

	return GenerateTokens(userID)
}

// ExtractUserID pulls the user id out of a "Bearer <token>" header value.
func ExtractUserID(authHeader string) (uuid.UUID, error) {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return uuid.Nil, errors.New("invalid token format")
	}

	claims, err := ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return uuid.Nil, err
	}

	idStr, ok := claims["id"].(string)
	if !ok {
		return uuid.Nil, errors.New("id not found in token")
	}
	return uuid.Parse(idStr)
}
