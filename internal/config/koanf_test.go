// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"server.port", cfg.Server.Port, 8080},
		{"ranking.fame_max", cfg.Ranking.FameMax, 1.2},
		{"ranking.fame_min", cfg.Ranking.FameMin, 0.2},
		{"ranking.default_top_k", cfg.Ranking.DefaultTopK, 10},
		{"ranking.not_ready", cfg.Ranking.NotReady, NotReadyFailFast},
		{"ranking.query_timeout", cfg.Ranking.QueryTimeout, 5 * time.Second},
		{"lsa.enabled", cfg.LSA.Enabled, false},
		{"lsa.energy_threshold", cfg.LSA.EnergyThreshold, 0.9},
		{"oracle.mode", cfg.Oracle.Mode, "lexicon"},
		{"security.search_rate_limit", cfg.Security.SearchRateLimit, 30},
		{"index.repository_retries", cfg.Index.RepositoryRetries, 3},
		{"logging.level", cfg.Logging.Level, "info"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.want) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("FAME_MAX", "3")
	t.Setenv("FAME_MIN", "1")
	t.Setenv("LSA_ENABLED", "true")
	t.Setenv("QUERY_TIMEOUT", "250ms")
	t.Setenv("NOT_READY_MODE", "block")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("UNRELATED_VARIABLE", "ignored")

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Ranking.FameMax != 3 || cfg.Ranking.FameMin != 1 {
		t.Errorf("fame bounds = [%v, %v], want [1, 3]", cfg.Ranking.FameMin, cfg.Ranking.FameMax)
	}
	if !cfg.LSA.Enabled {
		t.Error("LSA.Enabled = false, want true")
	}
	if cfg.Ranking.QueryTimeout != 250*time.Millisecond {
		t.Errorf("Ranking.QueryTimeout = %v, want 250ms", cfg.Ranking.QueryTimeout)
	}
	if cfg.Ranking.NotReady != NotReadyBlock {
		t.Errorf("Ranking.NotReady = %q, want block", cfg.Ranking.NotReady)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  port: 7000
ranking:
  fame_weight: 0.5
  default_top_k: 25
oracle:
  mode: http
  url: http://oracle:5000
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	t.Setenv("HTTP_PORT", "7001")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Server.Port != 7001 {
		t.Errorf("Server.Port = %d, want env value 7001", cfg.Server.Port)
	}
	if cfg.Ranking.FameWeight != 0.5 || cfg.Ranking.DefaultTopK != 25 {
		t.Errorf("ranking = %+v, want fame_weight 0.5 top_k 25", cfg.Ranking)
	}
	if cfg.Oracle.Mode != "http" || cfg.Oracle.URL != "http://oracle:5000" {
		t.Errorf("oracle = %+v, want http mode", cfg.Oracle)
	}
	if cfg.Ranking.FameMax != 1.2 {
		t.Errorf("Ranking.FameMax = %v, want default 1.2", cfg.Ranking.FameMax)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadFile() with missing file error = nil, want error")
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"DUCKDB_PATH", "database.path"},
		{"ORACLE_URL", "oracle.url"},
		{"fame_weight", "ranking.fame_weight"},
		{"NATS_URL", "events.nats_url"},
		{"HOME", ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := envTransformFunc(tt.key); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
