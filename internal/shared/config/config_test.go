package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MAX_UPLOAD_BYTES", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected default env dev, got %s", cfg.Env)
	}
	if cfg.MaxUploadBytes != DefaultMaxUploadBytes {
		t.Fatalf("expected default upload cap, got %d", cfg.MaxUploadBytes)
	}
	if cfg.MongoDatabase != "resume_parser" || cfg.MongoCollection != "parsed_resumes" {
		t.Fatalf("unexpected mongo defaults: %s/%s", cfg.MongoDatabase, cfg.MongoCollection)
	}
	if cfg.NERBackend != "prose" {
		t.Fatalf("expected default backend prose, got %s", cfg.NERBackend)
	}
}

func TestLoadMaxUploadBytes(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")
	if cfg := Load(); cfg.MaxUploadBytes != 1<<20 {
		t.Fatalf("expected 1 MiB, got %d", cfg.MaxUploadBytes)
	}

	t.Setenv("MAX_UPLOAD_BYTES", "not-a-number")
	if cfg := Load(); cfg.MaxUploadBytes != DefaultMaxUploadBytes {
		t.Fatalf("expected fallback to default, got %d", cfg.MaxUploadBytes)
	}

	t.Setenv("MAX_UPLOAD_BYTES", "-5")
	if cfg := Load(); cfg.MaxUploadBytes != DefaultMaxUploadBytes {
		t.Fatalf("expected fallback to default for negative value, got %d", cfg.MaxUploadBytes)
	}
}

func TestNormalizeBackend(t *testing.T) {
	t.Setenv("NER_BACKEND", "HTTP")
	if cfg := Load(); cfg.NERBackend != "http" {
		t.Fatalf("expected http backend, got %s", cfg.NERBackend)
	}

	t.Setenv("NER_BACKEND", "something-else")
	if cfg := Load(); cfg.NERBackend != "prose" {
		t.Fatalf("expected prose fallback, got %s", cfg.NERBackend)
	}
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# comment\nFILE_SETTING=\"quoted\"\nnot a pair\n  SPACED_SETTING = value \n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("FILE_SETTING", "")
	t.Setenv("SPACED_SETTING", "")

	loadEnvFiles(path, filepath.Join(dir, "missing.env"))

	if got := os.Getenv("FILE_SETTING"); got != "quoted" {
		t.Fatalf("expected quoted value to be unwrapped, got %q", got)
	}
	if got := os.Getenv("SPACED_SETTING"); got != "value" {
		t.Fatalf("expected surrounding whitespace to be trimmed, got %q", got)
	}
}

func TestIsDevLike(t *testing.T) {
	for _, env := range []string{"dev", "local", " DEV "} {
		if !IsDevLike(env) {
			t.Fatalf("expected %q to be dev-like", env)
		}
	}
	for _, env := range []string{"production", "staging", ""} {
		if IsDevLike(env) {
			t.Fatalf("expected %q not to be dev-like", env)
		}
	}
}
