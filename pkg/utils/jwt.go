package utils

import (
	"time"

	"github.com/aryaduta/ecommerce-admin-service/pkg/errs"
	"github.com/golang-jwt/jwt"
)

type TokenClaims struct {
	UserID string
	Name   string
	Email  string
	Role   string
}

func CreateJWTToken(userID string, userName string, email string, role string, jwtSecretKey string) (string, error) {
	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["userID"] = userID
	claims["name"] = userName
	claims["email"] = email
	claims["role"] = role
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecretKey))
}

func ParseJWTToken(tokenString string, jwtSecretKey string) (TokenClaims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrNotLoggedIn
		}
		return []byte(jwtSecretKey), nil
	})
	if err != nil || !parsed.Valid {
		return TokenClaims{}, errs.ErrNotLoggedIn
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, errs.ErrNotLoggedIn
	}

	userID, _ := claims["userID"].(string)
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if userID == "" || role == "" {
		return TokenClaims{}, errs.ErrNotLoggedIn
	}

	return TokenClaims{UserID: userID, Name: name, Email: email, Role: role}, nil
}
