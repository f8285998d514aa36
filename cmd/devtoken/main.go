// Command devtoken prints a bearer token accepted by the jwt auth provider,
// for calling the review endpoints locally.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"bakery/config"
	"bakery/internal/domain/entity"
	"bakery/internal/infra/auth"

	"github.com/pkg/errors"
)

func main() {
	userID := flag.String("user", "", "Subject (user ID) of the token")
	email := flag.String("email", "", "Email claim")
	name := flag.String("name", "", "Display name claim")
	ttl := flag.Duration("ttl", time.Hour, "Token lifetime")
	flag.Parse()

	if err := run(*userID, *email, *name, *ttl); err != nil {
		fmt.Fprintf(os.Stderr, "devtoken: %v\n", err)
		os.Exit(1)
	}
}

func run(userID, email, name string, ttl time.Duration) error {
	if userID == "" {
		return errors.New("-user is required")
	}

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	if cfg.SecretKey.Access == "" {
		return errors.New("secretKey.access is empty")
	}

	token, err := auth.SignToken(cfg.SecretKey.Access, cfg.Auth.Issuer, entity.Identity{
		UserID: userID,
		Email:  email,
		Name:   name,
	}, ttl)
	if err != nil {
		return errors.Wrap(err, "sign token")
	}

	fmt.Println(token)

	return nil
}
