package commands

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/jmereardon17/fsjs-techdegree-project-3/internal/config"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/orchestrator"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/render"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/renderers/summary"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	LogFormat  string
	ConfigPath string
	Catalog    string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Logger is configured in the Before hook
	Logger zerolog.Logger
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "regform", "config.yaml")
}

// Orchestrator builds the pipeline for the loaded configuration.
func (f *Flags) Orchestrator() *orchestrator.Orchestrator {
	cfg := f.config()
	styles := summary.PlainStyles()
	if cfg.Color {
		styles = summary.ColorStyles()
	}

	options := []orchestrator.Option{
		orchestrator.WithCatalogFile(cfg.Catalog),
		orchestrator.WithDefaultRenderer(cfg.Output),
		orchestrator.WithLogger(f.Logger),
	}
	if registry, err := orchestrator.DefaultRegistry(summary.WithStyles(styles)); err == nil {
		options = append(options, orchestrator.WithRegistry(registry))
	} else {
		f.Logger.Warn().Err(err).Msg("falling back to the default renderer registry")
	}
	return orchestrator.New(options...)
}

// RenderOptions carries the configured theme to renderers.
func (f *Flags) RenderOptions() render.RenderOptions {
	return render.RenderOptions{Theme: f.config().Theme.RendererConfig()}
}

func (f *Flags) config() *config.Config {
	if f.Config == nil {
		cfg := config.DefaultConfig()
		f.Config = &cfg
	}
	return f.Config
}
