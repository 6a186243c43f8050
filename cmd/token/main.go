// Command token mints a bearer token for an identity using the AUTH_
// settings of the server.
//
//	AUTH_SECRET=... go run ./cmd/token -sub demo-advertiser-1 -ttl 24h
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"mesa-auction/internal/auth"
	"mesa-auction/internal/config"
	"mesa-auction/internal/core/domain"
)

func main() {
	sub := flag.String("sub", "", "identity to put in the token subject (defaults to AUTH_OPERATOR)")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	identity := *sub
	if identity == "" {
		identity = cfg.Auth.Operator
	}

	tokens, err := auth.NewTokens(cfg.Auth.Secret, cfg.Auth.Issuer)
	if err != nil {
		slog.Error("auth config error", slog.Any("error", err))
		os.Exit(1)
	}
	token, err := tokens.Generate(domain.Identity(identity), *ttl)
	if err != nil {
		slog.Error("failed to sign token", slog.Any("error", err))
		os.Exit(1)
	}
	fmt.Println(token)
}
