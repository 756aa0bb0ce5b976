package services

import (
	"testing"
	"time"

	"main/utils"

	"github.com/golang-jwt/jwt/v5"
)

func init() {
	utils.JWTSecretKey = "test_secret_key"
	utils.JWTExpirationTime = 3600
}

func parseTestToken(t *testing.T, tokenString string) jwt.MapClaims {
	t.Helper()
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(utils.JWTSecretKey), nil
	})
	if err != nil {
		t.Fatalf("token parse failed: %v", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		t.Fatal("token claims invalid")
	}
	return claims
}

func TestGenerateToken(t *testing.T) {
	tokenString, err := GenerateToken("user-123", "alice")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims := parseTestToken(t, tokenString)

	if claims["user_id"] != "user-123" {
		t.Errorf("expected user_id user-123, got %v", claims["user_id"])
	}
	if claims["username"] != "alice" {
		t.Errorf("expected username alice, got %v", claims["username"])
	}
	if claims["iss"] != TokenIssuer {
		t.Errorf("expected issuer %q, got %v", TokenIssuer, claims["iss"])
	}

	// Expiry must sit one hour out.
	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatal("exp claim missing")
	}
	expected := time.Now().Add(time.Hour).Unix()
	if int64(exp) < expected-60 || int64(exp) > expected+60 {
		t.Errorf("exp %d not within a minute of %d", int64(exp), expected)
	}
}

func TestTokenSignature(t *testing.T) {
	tokenString, err := GenerateToken("user-123", "alice")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	_, err = jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("a different secret"), nil
	})
	if err == nil {
		t.Error("token verified with the wrong secret")
	}
}
