package setup

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"voice2text/internal/app/logging"
	"voice2text/internal/config"
)

// Load reads the configuration named by the --config flag and builds the
// logger. --verbose or a development environment switch to console output.
func Load(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.NewLogger(verbose || cfg.Server.IsDevelopment())
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
