package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/hassaan217/HeartGuard-AI/internal/config"
	"github.com/hassaan217/HeartGuard-AI/internal/logging"
	"github.com/hassaan217/HeartGuard-AI/internal/scoring"
	"github.com/hassaan217/HeartGuard-AI/internal/workflow"
)

// session bundles everything one assessment run needs.
type session struct {
	ctrl      *workflow.Controller
	ledger    *logging.Ledger
	client    scoring.Client
	exportDir string
	endpoint  string
}

func openSession(cfg config.Config, logger *zap.Logger) (*session, error) {
	client, err := scoring.New(scoring.Options{
		Transport: cfg.Service.Transport,
		BaseURL:   cfg.Service.BaseURL,
		GRPCAddr:  cfg.Service.GRPCAddr,
		Timeout:   cfg.Service.Timeout(),
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create scoring client: %w", err)
	}

	ledger, err := logging.OpenLedger()
	if err != nil {
		client.Close()
		return nil, err
	}

	endpoint := cfg.Service.BaseURL
	if cfg.Service.Transport == scoring.TransportGRPC {
		endpoint = cfg.Service.GRPCAddr
	}
	logger.Debug("session opened",
		zap.String("transport", cfg.Service.Transport),
		zap.String("endpoint", endpoint))

	return &session{
		ctrl:      workflow.NewController(client, workflow.Options{Logger: logger, Ledger: ledger}),
		ledger:    ledger,
		client:    client,
		exportDir: cfg.Export.Dir,
		endpoint:  endpoint,
	}, nil
}

func (s *session) Close() {
	s.ledger.Close()
	s.client.Close()
}
