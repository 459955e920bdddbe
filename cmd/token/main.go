// Command token prints a bearer token for calling the /users API during development.
package main

import (
	"flag"
	"fmt"
	"log"

	"user_backend/internal/platform/config"
	jwtmw "user_backend/internal/platform/jwt"
)

func main() {
	userID := flag.Uint("user", 1, "user ID placed in the token subject")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	token, err := jwtmw.NewGenerator(cfg.JWT.Secret, cfg.JWT.Expiration).GenerateToken(*userID)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
