package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"voice2text/cmd/v2t/cmd/setup"
	"voice2text/internal/app"
	"voice2text/internal/app/audio"
)

const shutdownTimeout = 30 * time.Second

var (
	host string
	port string
)

func init() {
	Cmd.Flags().StringVar(&host, "host", "", "listen address (overrides HOST)")
	Cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the transcription HTTP server",
	Long: `Start the transcription HTTP server

- POST /transcribe accepts a multipart upload in the "file" field
- All other paths are served from the static directory
- /health and /metrics are exposed for operators`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup.Load(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		if host != "" {
			cfg.Server.Host = host
		}
		if port != "" {
			cfg.Server.Port = port
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		if err := audio.NewFFmpeg(cfg.Media.FFprobePath, cfg.Media.FFmpegPath).CheckAvailable(); err != nil {
			logger.Warn("media tools not found, uploads over the size limit will fail", zap.Error(err))
		}
		if credentialEnv := cfg.Transcription.CredentialEnv(); os.Getenv(credentialEnv) == "" {
			logger.Warn("API key is not set, transcription requests will fail until it is",
				zap.String("variable", credentialEnv))
		}

		srv, err := app.InitializeServer(cfg, logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := srv.Start()
		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
