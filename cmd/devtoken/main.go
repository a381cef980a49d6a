package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/univault/univault-api/utils/auth"
)

// Mints a signed bearer token for local development. In deployment the
// hosted identity provider issues tokens with the same shared secret.
func main() {
	userID := flag.String("user", "user_1", "user id to embed as the token subject")
	email := flag.String("email", "", "email claim")
	name := flag.String("name", "", "name claim")
	expiry := flag.Duration("expiry", 24*time.Hour, "token lifetime")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}
	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = "univault-auth"
	}

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: secret,
		Expiry: *expiry,
		Issuer: issuer,
	})

	token, err := jwtManager.GenerateToken(*userID, *email, *name)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	fmt.Println(token)
}
