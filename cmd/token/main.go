// Command token prints a signed access token for local development.
//
// Usage:
//
//	token [-user <uuid>] [-ttl 24h]
//
// Reads AUTH_JWT_SECRET and AUTH_JWT_ISSUER like the server does.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/evernest-backend/internal/auth"
)

func main() {
	userFlag := flag.String("user", "", "user id (random when empty)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("AUTH_JWT_SECRET")
	if len(secret) < 32 {
		log.Fatal("AUTH_JWT_SECRET must be set and at least 32 characters")
	}
	issuer := os.Getenv("AUTH_JWT_ISSUER")
	if issuer == "" {
		issuer = "evernest"
	}

	userID := uuid.New()
	if *userFlag != "" {
		parsed, err := uuid.Parse(*userFlag)
		if err != nil {
			log.Fatalf("invalid -user: %v", err)
		}
		userID = parsed
	}

	token, err := auth.NewJWTManager(secret, issuer, *ttl).GenerateAccessToken(userID)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "user: %s\n", userID)
	fmt.Println(token)
}
