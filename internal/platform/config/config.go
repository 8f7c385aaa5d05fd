package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

type Config struct {
	StateDir       string
	SessionBackend string
	DBPath         string
	LogPath        string
	LogLevel       string
	CatalogPath    string
	Width          int
	MarkdownStyle  string
}

// New resolves configuration for the given state directory. Values come from
// defaults, an optional instalike.yaml inside the state directory and
// INSTALIKE_* environment variables, in increasing priority.
func New(stateDir string) (Config, error) {
	if strings.TrimSpace(stateDir) == "" {
		return Config{}, fmt.Errorf("state dir is required")
	}

	v := viper.New()
	v.SetEnvPrefix("INSTALIKE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("session.backend", BackendFile)
	v.SetDefault("catalog.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.width", 60)
	v.SetDefault("ui.markdown_style", "auto")

	v.SetConfigName("instalike")
	v.SetConfigType("yaml")
	v.AddConfigPath(stateDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	backend := strings.ToLower(strings.TrimSpace(v.GetString("session.backend")))
	switch backend {
	case BackendFile, BackendSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported session backend %q", backend)
	}

	width := v.GetInt("ui.width")
	if width < 30 {
		width = 30
	}

	catalogPath := v.GetString("catalog.path")
	if catalogPath != "" && !filepath.IsAbs(catalogPath) {
		catalogPath = filepath.Join(stateDir, catalogPath)
	}

	return Config{
		StateDir:       stateDir,
		SessionBackend: backend,
		DBPath:         filepath.Join(stateDir, "instalike.db"),
		LogPath:        filepath.Join(stateDir, "instalike.log"),
		LogLevel:       v.GetString("log.level"),
		CatalogPath:    catalogPath,
		Width:          width,
		MarkdownStyle:  v.GetString("ui.markdown_style"),
	}, nil
}
