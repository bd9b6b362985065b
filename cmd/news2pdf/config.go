package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	news2pdf "github.com/alnah/go-news2pdf"
	"github.com/alnah/go-news2pdf/internal/fileutil"
	"github.com/alnah/go-news2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// fileConfig is the YAML schema for host/session overrides. Every field
// is optional; zero values keep the library defaults.
type fileConfig struct {
	ContentHost    string   `yaml:"contentHost"`
	SecureHost     string   `yaml:"secureHost"`
	LoginPath      string   `yaml:"loginPath"`
	LogoutPath     string   `yaml:"logoutPath"`
	CommentsPath   string   `yaml:"commentsPath"`
	PremiumCookie  string   `yaml:"premiumCookie"`
	UserAgent      string   `yaml:"userAgent"`
	TimeoutSeconds int      `yaml:"timeoutSeconds"`
	LoginDelayMS   int      `yaml:"loginDelayMs"`
	UINoise        []string `yaml:"uiNoise"`
}

// apply overlays the file values onto a library config.
func (fc *fileConfig) apply(cfg *news2pdf.Config) {
	if fc.ContentHost != "" {
		cfg.ContentHost = fc.ContentHost
	}
	if fc.SecureHost != "" {
		cfg.SecureHost = fc.SecureHost
	}
	if fc.LoginPath != "" {
		cfg.LoginPath = fc.LoginPath
	}
	if fc.LogoutPath != "" {
		cfg.LogoutPath = fc.LogoutPath
	}
	if fc.CommentsPath != "" {
		cfg.CommentsPath = fc.CommentsPath
	}
	if fc.PremiumCookie != "" {
		cfg.PremiumCookie = fc.PremiumCookie
	}
	if fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}
	if fc.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(fc.TimeoutSeconds) * time.Second
	}
	if fc.LoginDelayMS > 0 {
		cfg.LoginDelay = time.Duration(fc.LoginDelayMS) * time.Millisecond
	}
	if len(fc.UINoise) > 0 {
		cfg.UINoise = fc.UINoise
	}
}

// loadFileConfig loads overrides from a file path or config name.
// A name (no path separator) is searched in the current directory and
// ~/.config/news2pdf/, trying .yaml then .yml.
func loadFileConfig(nameOrPath string) (*fileConfig, error) {
	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yamlutil.UnmarshalStrict(data, &fc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return &fc, nil
}

// resolveConfigPath searches for a config file by name.
// Tries locations in order: current directory, ~/.config/news2pdf/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "news2pdf", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// buildConfig resolves the effective library config: defaults, then YAML
// overrides, then host environment variables.
func buildConfig(f *cliFlags, lookup envLookup) (news2pdf.Config, error) {
	cfg := news2pdf.DefaultConfig()

	if f.config != "" {
		fc, err := loadFileConfig(f.config)
		if err != nil {
			return news2pdf.Config{}, err
		}
		fc.apply(&cfg)
	}

	applyHostEnv(&cfg.ContentHost, &cfg.SecureHost, lookup)

	if err := cfg.Validate(); err != nil {
		return news2pdf.Config{}, err
	}
	return cfg, nil
}
