package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// pointConfigHome redirects the user config dir into a temp dir so
// tests never touch the real config file.
func pointConfigHome(t *testing.T) string {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skip("config-dir redirection relies on XDG_CONFIG_HOME")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestConfig_Path(t *testing.T) {
	t.Run("returns path within user config dir", func(t *testing.T) {
		path, err := Path()
		if err != nil {
			t.Fatalf("Path() returned error: %v", err)
		}
		if filepath.Base(path) != fileName {
			t.Errorf("expected filename %s, got %s", fileName, filepath.Base(path))
		}
		if filepath.Base(filepath.Dir(path)) != dirName {
			t.Errorf("expected directory %s, got %s", dirName, filepath.Dir(path))
		}
	})
}

func TestConfig_Load(t *testing.T) {
	t.Run("returns default config when file does not exist", func(t *testing.T) {
		pointConfigHome(t)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned error: %v", err)
		}
		if cfg.ServerURL != DefaultURL {
			t.Errorf("expected ServerURL %s, got %s", DefaultURL, cfg.ServerURL)
		}
		if cfg.HasToken() {
			t.Error("expected no token in default config")
		}
	})

	t.Run("round-trips through Save", func(t *testing.T) {
		pointConfigHome(t)

		saved := &Config{ServerURL: "https://chefstream.example.com", Token: "tok-123"}
		if err := Save(saved); err != nil {
			t.Fatalf("Save() returned error: %v", err)
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned error: %v", err)
		}
		if cfg.ServerURL != saved.ServerURL {
			t.Errorf("expected ServerURL %s, got %s", saved.ServerURL, cfg.ServerURL)
		}
		if cfg.Token != saved.Token {
			t.Errorf("expected Token %s, got %s", saved.Token, cfg.Token)
		}
	})

	t.Run("fills in the default URL when the file omits it", func(t *testing.T) {
		pointConfigHome(t)

		if err := Save(&Config{Token: "tok"}); err != nil {
			t.Fatalf("Save() returned error: %v", err)
		}
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned error: %v", err)
		}
		if cfg.ServerURL != DefaultURL {
			t.Errorf("expected default ServerURL, got %s", cfg.ServerURL)
		}
	})

	t.Run("fails on a corrupt file", func(t *testing.T) {
		pointConfigHome(t)

		p, err := Path()
		if err != nil {
			t.Fatalf("Path() returned error: %v", err)
		}
		if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
			t.Fatalf("creating config dir: %v", err)
		}
		if err := os.WriteFile(p, []byte("{not json"), 0600); err != nil {
			t.Fatalf("writing corrupt config: %v", err)
		}

		if _, err := Load(); err == nil {
			t.Error("expected an error for a corrupt config file")
		}
	})
}

func TestConfig_ClearToken(t *testing.T) {
	t.Run("drops the token but keeps the server URL", func(t *testing.T) {
		pointConfigHome(t)

		cfg := &Config{ServerURL: "https://chefstream.example.com", Token: "tok"}
		if err := Save(cfg); err != nil {
			t.Fatalf("Save() returned error: %v", err)
		}

		if err := ClearToken(cfg); err != nil {
			t.Fatalf("ClearToken() returned error: %v", err)
		}

		loaded, err := Load()
		if err != nil {
			t.Fatalf("Load() returned error: %v", err)
		}
		if loaded.HasToken() {
			t.Error("expected token to be cleared")
		}
		if loaded.ServerURL != "https://chefstream.example.com" {
			t.Errorf("expected server URL to survive, got %s", loaded.ServerURL)
		}
	})
}
