package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/piresc/cabdispatch/internal/pkg/config"
	"github.com/piresc/cabdispatch/internal/pkg/constants"
	"github.com/piresc/cabdispatch/internal/pkg/jwt"
)

// devtoken prints a signed token for local testing against the realtime service
func main() {
	configPath := flag.String("config", "config/realtime.env", "env file holding JWT_SECRET")
	userID := flag.String("user", "", "user id to put in the token")
	role := flag.String("role", constants.RoleCustomer, "customer, driver, owner or admin")
	expiration := flag.Int("exp", 0, "expiration in minutes, defaults to JWT_EXPIRATION")
	flag.Parse()

	if *userID == "" {
		log.Fatal("-user is required")
	}

	configs := config.InitConfig(*configPath)
	if configs.JWT.Secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	if *expiration > 0 {
		configs.JWT.Expiration = *expiration
	}

	token, expiresAt, err := jwt.GenerateToken(*userID, *role, configs.JWT)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Println(token)
	log.Printf("expires at %s", time.Unix(expiresAt, 0).Format(time.RFC3339))
}
