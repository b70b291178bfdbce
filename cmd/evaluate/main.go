// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Command evaluate scores a running Marquee server against a judgment file
// and prints recall, precision and F1 per query.
//
//	evaluate -url http://localhost:8080 -judgments judgments.yaml
//	evaluate -judgments judgments.yaml -mode lsa -rebuild -jwt-secret $JWT_SECRET
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/auth"
	"github.com/tomtom215/marquee/internal/evaluation"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/retrieval"
)

type options struct {
	baseURL    string
	judgments  string
	mode       string
	token      string
	jwtSecret  string
	rebuild    bool
	reclassify bool
	timeout    time.Duration
	jsonOutput bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("evaluate", flag.ContinueOnError)
	fs.StringVar(&o.baseURL, "url", "http://localhost:8080", "Marquee server base URL")
	fs.StringVar(&o.judgments, "judgments", "", "Path to the YAML judgment file (required)")
	fs.StringVar(&o.mode, "mode", "", "Default ranking mode for judgments without one (primary or lsa)")
	fs.StringVar(&o.token, "token", "", "Bearer token sent with every request")
	fs.StringVar(&o.jwtSecret, "jwt-secret", "", "Mint an admin token with this secret instead of -token")
	fs.BoolVar(&o.rebuild, "rebuild", false, "Rebuild every index before evaluating")
	fs.BoolVar(&o.reclassify, "reclassify", false, "With -rebuild, reclassify every actor")
	fs.DurationVar(&o.timeout, "timeout", 10*time.Minute, "Overall timeout")
	fs.BoolVar(&o.jsonOutput, "json", false, "Print the report as JSON")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	if o.judgments == "" {
		return o, errors.New("-judgments is required")
	}
	switch o.mode {
	case "", retrieval.ModePrimary, retrieval.ModeLSA:
	default:
		return o, fmt.Errorf("-mode must be %s or %s", retrieval.ModePrimary, retrieval.ModeLSA)
	}
	if o.token != "" && o.jwtSecret != "" {
		return o, errors.New("-token and -jwt-secret are mutually exclusive")
	}
	return o, nil
}

// bearerToken returns the token to send, minting one when a secret is given.
func (o options) bearerToken() (string, error) {
	if o.jwtSecret == "" {
		return o.token, nil
	}
	m, err := auth.NewJWTManager(o.jwtSecret, time.Hour)
	if err != nil {
		return "", err
	}
	return m.GenerateToken("evaluate", auth.RoleAdmin)
}

func run(ctx context.Context, o options, stdout io.Writer) error {
	judgments, err := evaluation.LoadJudgments(o.judgments)
	if err != nil {
		return err
	}

	token, err := o.bearerToken()
	if err != nil {
		return fmt.Errorf("mint token: %w", err)
	}
	client := evaluation.NewHTTPRanker(o.baseURL, token, 0)

	if o.rebuild {
		result, err := client.Rebuild(ctx, retrieval.RebuildRequest{Mode: retrieval.ModeAll, Reclassify: o.reclassify})
		if err != nil {
			return err
		}
		logging.Info().
			Int("primary_size", result.PrimarySize).
			Int("lsa_size", result.LSASize).
			Int("lsa_rank", result.LSARank).
			Msg("Indexes rebuilt")
	}

	report, err := evaluation.NewRunner(client, o.mode).Run(ctx, judgments)
	if err != nil {
		return err
	}

	if o.jsonOutput {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return report.WriteTable(stdout)
}

func main() {
	logging.Init(logging.Config{Level: "info", Format: "console"})

	o, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logging.Fatal().Err(err).Msg("Invalid arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	if err := run(ctx, o, os.Stdout); err != nil {
		cancel()
		stop()
		logging.Fatal().Err(err).Msg("Evaluation failed")
	}
}
