package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	news2pdf "github.com/alnah/go-news2pdf"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "news2pdf.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestLoadFileConfig - YAML overrides
// ---------------------------------------------------------------------------

func TestLoadFileConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `contentHost: https://mirror.example.com
secureHost: https://auth.example.com
timeoutSeconds: 30
loginDelayMs: 100
uiNoise:
  - .ads
`)

	fc, err := loadFileConfig(path)
	if err != nil {
		t.Fatalf("loadFileConfig: %v", err)
	}

	cfg := news2pdf.DefaultConfig()
	fc.apply(&cfg)

	if cfg.ContentHost != "https://mirror.example.com" {
		t.Errorf("ContentHost = %q", cfg.ContentHost)
	}
	if cfg.SecureHost != "https://auth.example.com" {
		t.Errorf("SecureHost = %q", cfg.SecureHost)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %s, want 30s", cfg.Timeout)
	}
	if cfg.LoginDelay != 100*time.Millisecond {
		t.Errorf("LoginDelay = %s, want 100ms", cfg.LoginDelay)
	}
	if len(cfg.UINoise) != 1 || cfg.UINoise[0] != ".ads" {
		t.Errorf("UINoise = %v", cfg.UINoise)
	}

	// Fields absent from the file keep their defaults.
	if cfg.LoginPath != "sfuser/connexion" {
		t.Errorf("LoginPath = %q, want default preserved", cfg.LoginPath)
	}
	if cfg.PremiumCookie != "lmd_a_s" {
		t.Errorf("PremiumCookie = %q, want default preserved", cfg.PremiumCookie)
	}
}

func TestLoadFileConfigNotFound(t *testing.T) {
	t.Parallel()

	_, err := loadFileConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("loadFileConfig = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadFileConfigUnknownKey(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "unknownKey: value\n")
	_, err := loadFileConfig(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Fatalf("loadFileConfig = %v, want ErrConfigParse for an unknown key", err)
	}
}

func TestLoadFileConfigMalformedYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "contentHost: [unclosed\n")
	_, err := loadFileConfig(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Fatalf("loadFileConfig = %v, want ErrConfigParse", err)
	}
}

func TestResolveConfigPathUnknownName(t *testing.T) {
	t.Parallel()

	_, err := resolveConfigPath("definitely-not-a-news2pdf-config")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("resolveConfigPath = %v, want ErrConfigNotFound", err)
	}
}

// ---------------------------------------------------------------------------
// TestBuildConfig - Layering: defaults, file, environment
// ---------------------------------------------------------------------------

func TestBuildConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := buildConfig(&cliFlags{}, envFrom(nil))
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if cfg.ContentHost != news2pdf.DefaultConfig().ContentHost {
		t.Errorf("ContentHost = %q, want library default", cfg.ContentHost)
	}
}

func TestBuildConfigEnvOverridesFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "contentHost: https://file.example.com\n")

	cfg, err := buildConfig(&cliFlags{config: path}, envFrom(map[string]string{
		envContentHost: "https://env.example.com",
	}))
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if cfg.ContentHost != "https://env.example.com" {
		t.Errorf("ContentHost = %q, want environment to win over the file", cfg.ContentHost)
	}
}

func TestBuildConfigInvalidResult(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "contentHost: not-a-url\n")

	_, err := buildConfig(&cliFlags{config: path}, envFrom(nil))
	if !errors.Is(err, news2pdf.ErrInvalidConfig) {
		t.Fatalf("buildConfig = %v, want ErrInvalidConfig", err)
	}
}

func TestBuildConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := buildConfig(&cliFlags{config: filepath.Join(t.TempDir(), "nope.yaml")}, envFrom(nil))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("buildConfig = %v, want ErrConfigNotFound", err)
	}
}
