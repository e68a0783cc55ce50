package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/journey-app/journey/internal/middleware"
)

// TokenCommand mints a bearer token signed with JWT_SECRET for local testing
type TokenCommand struct{}

func (c *TokenCommand) Name() string {
	return "token"
}

func (c *TokenCommand) Description() string {
	return "Issue a dev bearer token: token <user-id> [user|admin] [ttl]"
}

func (c *TokenCommand) Run(args []string) error {
	if len(args) < 1 {
		return errors.New("user id required")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return errors.New("JWT_SECRET is not set")
	}

	role := middleware.RoleUser
	if len(args) > 1 {
		role = args[1]
	}
	if role != middleware.RoleUser && role != middleware.RoleAdmin {
		return fmt.Errorf("unknown role %q", role)
	}

	ttl := defaultTokenTTL
	if len(args) > 2 {
		d, err := time.ParseDuration(args[2])
		if err != nil {
			return fmt.Errorf("invalid ttl: %w", err)
		}
		ttl = d
	}

	token, err := middleware.NewAuthenticator(secret).IssueToken(args[0], role, ttl)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, token)
	return nil
}
