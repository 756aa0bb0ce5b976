package utils

import (
	"log"
	"os"
)

var (
	JWTSecretKey      string
	JWTExpirationTime int64
)

// InitJWT loads the token signing configuration. The secret is required;
// the process refuses to start without it.
func InitJWT() {
	if os.Getenv("GO_ENV") == "test" && os.Getenv("JWT_SECRET_KEY") == "" {
		os.Setenv("JWT_SECRET_KEY", "test_secret_key")
	}

	JWTSecretKey = os.Getenv("JWT_SECRET_KEY")
	if JWTSecretKey == "" {
		log.Fatal("JWT Secret Key not set")
	}

	// Identity tokens expire one hour after issuance by default.
	JWTExpirationTime = int64(GetEnvAsInt("JWT_EXPIRATION_TIME", 3600))
}
