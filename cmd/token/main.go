// Command token mints a bearer token for the write endpoints of the API.
//
//	go run ./cmd/token -subject ops -ttl 24h
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/esprit/eventsproject/internal/config"
	"github.com/esprit/eventsproject/internal/pkg/jwthelper"
)

func main() {
	configPath := flag.String("config", "./cmd/app/config.yml", "path of the API config file")
	subject := flag.String("subject", "operator", "subject stored in the token")
	ttl := flag.Duration("ttl", 24*time.Hour, "lifetime of the token")
	flag.Parse()

	if err := run(*configPath, *subject, *ttl); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, subject string, ttl time.Duration) error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config.Load -> %w", err)
	}

	if conf.API.JWTSigningKey == "" {
		return errors.New("api.jwt_signing_key is empty, the write endpoints are not protected")
	}

	token, err := jwthelper.GenerateToken([]byte(conf.API.JWTSigningKey), subject, ttl)
	if err != nil {
		return fmt.Errorf("jwthelper.GenerateToken -> %w", err)
	}

	fmt.Println(token)

	return nil
}
