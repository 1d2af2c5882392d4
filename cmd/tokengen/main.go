// Command tokengen prints a service token for the protected /api routes.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/iamasit07/connect4-analyzer/internal/config"
	"github.com/iamasit07/connect4-analyzer/pkg/auth"
	"github.com/joho/godotenv"
)

func main() {
	subject := flag.String("subject", "cpee", "caller name stored in the token")
	scope := flag.String("scope", "history", "free-form scope claim")
	ttl := flag.Duration("ttl", 30*24*time.Hour, "token lifetime")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	cfg := config.LoadConfig()

	token, err := auth.GenerateServiceToken(cfg.JWTSecret, *subject, *scope, *ttl)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}
	fmt.Println(token)
}
