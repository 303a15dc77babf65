package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}

	if cfg.Corpus.Dir != "./books" {
		t.Errorf("default corpus dir = %q, want ./books", cfg.Corpus.Dir)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("default server port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Logging.Level)
	}
	if !cfg.Metrics.Enabled {
		t.Error("metrics should be enabled by default")
	}
	if len(cfg.Tokenizer.Delimiters) != 0 {
		t.Errorf("default delimiters should be empty (tokenizer default applies), got %v", cfg.Tokenizer.Delimiters)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docrank.yaml")
	content := `
corpus:
  dir: /data/books
  query: cold winter
server:
  port: 9000
logging:
  level: debug
  format: json
tokenizer:
  delimiters: [" ", ","]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error = %v", path, err)
	}

	if cfg.Corpus.Dir != "/data/books" {
		t.Errorf("corpus dir = %q, want /data/books", cfg.Corpus.Dir)
	}
	if cfg.Corpus.Query != "cold winter" {
		t.Errorf("corpus query = %q, want 'cold winter'", cfg.Corpus.Query)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("server port = %d, want 9000", cfg.Server.Port)
	}
	// Unset fields keep their defaults
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("read timeout = %v, want default 30s", cfg.Server.ReadTimeout)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("log format = %q, want json", cfg.Logging.Format)
	}
	if len(cfg.Tokenizer.Delimiters) != 2 {
		t.Errorf("delimiters = %v, want 2 entries", cfg.Tokenizer.Delimiters)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DOCRANK_CORPUS_DIR", "/env/books")
	t.Setenv("DOCRANK_SERVER_PORT", "7070")
	t.Setenv("DOCRANK_METRICS_ENABLED", "false")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}

	if cfg.Corpus.Dir != "/env/books" {
		t.Errorf("corpus dir = %q, want /env/books", cfg.Corpus.Dir)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("server port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Metrics.Enabled {
		t.Error("metrics should be disabled via env override")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load of a missing file should fail")
	}
}
