//go:build ignore

// This script generates a tenant signing secret and, optionally, a token for one tenant.
// Run with: go run scripts/generate_keys.go [tenant-id] [ttl]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/guttosm/pallet-service/internal/middleware"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bytes), nil
}

func main() {
	fmt.Println("=== Pallet Service Key Generator ===")
	fmt.Println()

	secret := os.Getenv("TENANT_JWT_SECRET")
	if secret == "" {
		// 32 bytes = 256 bits
		generated, err := generateSecureKey(32)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating tenant secret: %v\n", err)
			os.Exit(1)
		}
		secret = generated

		fmt.Println("Add this to your .env file:")
		fmt.Println()
		fmt.Printf("TENANT_JWT_SECRET=%s\n", secret)
		fmt.Println()
	}

	if len(os.Args) < 2 {
		fmt.Println("Pass a tenant id to also mint a bearer token for it.")
		return
	}

	ttl := 24 * time.Hour
	if len(os.Args) > 2 {
		parsed, err := time.ParseDuration(os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid ttl %q: %v\n", os.Args[2], err)
			os.Exit(1)
		}
		ttl = parsed
	}

	now := time.Now()
	token, err := middleware.NewTenantToken(os.Args[1], []byte(secret), jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    "pallet-service",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing tenant token: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# Token for tenant %s (expires %s)\n", os.Args[1], now.Add(ttl).Format(time.RFC3339))
	fmt.Printf("Authorization: Bearer %s\n", token)
	fmt.Println()
	fmt.Println("=== IMPORTANT ===")
	fmt.Println("- Never commit secrets to version control")
	fmt.Println("- Use a different secret for each environment (dev, staging, prod)")
	fmt.Println("- Store production secrets in a secure secret manager")
}
