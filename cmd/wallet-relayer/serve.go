package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/auth"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/config"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/server"
	"github.com/urfave/cli/v2"
)

const shutdownTimeout = 15 * time.Second

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the relay HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "listen-address",
				Usage:   "Address the HTTP API listens on",
				EnvVars: []string{config.EnvRelayerListenAddress},
			},
			&cli.StringFlag{
				Name:    "jwks-url",
				Usage:   "JWKS endpoint used to verify bearer tokens",
				EnvVars: []string{config.EnvRelayerAuthJWKSURL},
			},
			&cli.StringFlag{
				Name:  "jwks-file",
				Usage: "Local JWKS file used to verify bearer tokens",
			},
			&cli.StringFlag{
				Name:  "issuer",
				Usage: "Required token issuer",
			},
			&cli.StringFlag{
				Name:  "audience",
				Usage: "Required token audience",
			},
		},
		Action: withRuntime(runServe),
	}
}

func runServe(c *cli.Context, rt *runtime) error {
	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverCfg := applyServeFlags(c, rt.cfg.Server)

	verifier, err := auth.NewVerifier(ctx, serverCfg.Auth, rt.logger)
	if err != nil {
		return fmt.Errorf("failed to create token verifier: %w", err)
	}

	svc, err := rt.relayService(ctx)
	if err != nil {
		return err
	}
	cc, err := rt.contractCaller()
	if err != nil {
		return err
	}
	journal, err := rt.relayJournal()
	if err != nil {
		return err
	}

	s := server.NewServer(&server.ServerConfig{
		ListenAddress: serverCfg.ListenAddress,
		ChainID:       rt.cfg.ChainID,
	}, svc, cc, verifier, journal, rt.logger)

	if err := s.Start(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	rt.logger.Sugar().Infow("Relay API running",
		"address", serverCfg.ListenAddress,
		"chain", rt.cfg.ChainName,
		"persistence", rt.cfg.Persistence.Type,
		"signer", rt.cfg.Signer.Type,
	)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Stop(shutdownCtx)
}

func applyServeFlags(c *cli.Context, cfg config.ServerConfig) config.ServerConfig {
	authCfg := &config.AuthConfig{}
	if cfg.Auth != nil {
		*authCfg = *cfg.Auth
	}
	cfg.Auth = authCfg

	if c.IsSet("listen-address") {
		cfg.ListenAddress = c.String("listen-address")
	}
	if c.IsSet("jwks-url") {
		authCfg.JWKSURL = c.String("jwks-url")
	}
	if c.IsSet("jwks-file") {
		authCfg.JWKSFile = c.String("jwks-file")
	}
	if c.IsSet("issuer") {
		authCfg.Issuer = c.String("issuer")
	}
	if c.IsSet("audience") {
		authCfg.Audience = c.String("audience")
	}
	return cfg
}
