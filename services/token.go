package services

import (
	"time"

	"main/utils"

	"github.com/golang-jwt/jwt/v5"
)

const TokenIssuer = "gonotes"

// GenerateToken signs an identity token carrying the user id and username.
// Tokens expire after utils.JWTExpirationTime seconds (one hour by
// default); there is no refresh mechanism.
func GenerateToken(userID, username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(time.Duration(utils.JWTExpirationTime) * time.Second).Unix(),
		"iss":      TokenIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(utils.JWTSecretKey))
}
