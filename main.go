package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"DragBoard/internal/config"
	"DragBoard/internal/logging"
	"DragBoard/internal/term"
	"DragBoard/internal/ui"
)

// ConfigEnv names the optional config file.
const ConfigEnv = config.EnvPrefix + "_CONFIG"

func main() {
	cfg, err := config.Load(os.Getenv(ConfigEnv))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("board exited", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	switch cfg.Frontend {
	case config.FrontendTerminal:
		return term.Run(cfg, log)
	default:
		return ui.RunApp(cfg, log)
	}
}

// newLogger keeps log lines off the terminal while the terminal front-end
// owns it.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Frontend == config.FrontendTerminal && (cfg.Log.Output == "" || cfg.Log.Output == "stderr" || cfg.Log.Output == "stdout") {
		return zap.NewNop(), nil
	}
	return logging.New(cfg.Log)
}
