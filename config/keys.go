package config

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"
)

// JWTSecret returns the signing key from the environment, falling back to a
// random per-process key for local development (tokens won't survive a
// restart in that mode).
func JWTSecret() string {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return secret
	}
	log.Println("JWT_SECRET not set, generating a random key")
	return GenerateRandomKey()
}

// GenerateRandomKey returns a random 64-char hex string.
func GenerateRandomKey() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatalf("Failed to generate random key: %v", err)
	}
	return hex.EncodeToString(b)
}

// Port returns the listen port, defaulting to 8080.
func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}
