package transcribe

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"voice2text/cmd/v2t/cmd/setup"
	"voice2text/internal/app"
	"voice2text/internal/app/progress"
	"voice2text/internal/app/transcription"
)

var (
	outputFile    string
	forceProgress bool

	initializeService = app.InitializeService
)

func init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the transcript to this file instead of stdout")
	Cmd.Flags().BoolVar(&forceProgress, "progress", false, "show the chunk progress bar even when stderr is not a terminal")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe <audio-file>",
	Short: "Transcribe a local audio file",
	Long: `Transcribe a local audio file

- Uses the same size limit and chunking as the HTTP server
- Temp files are written to the configured temp directory and removed afterwards`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup.Load(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		service, err := initializeService(cfg, logger)
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		reporter := progress.NewChunkReporter(progress.Config{
			Enabled:     progress.ShouldShowProgress(forceProgress),
			Writer:      cmd.ErrOrStderr(),
			Description: filepath.Base(args[0]),
		})
		result, err := service.WithObserver(reporter).Transcribe(cmd.Context(), &transcription.Upload{
			Filename: filepath.Base(args[0]),
			Body:     f,
		})
		reporter.Wait()
		if err != nil {
			return err
		}

		if outputFile != "" {
			return os.WriteFile(outputFile, []byte(result.Text+"\n"), 0o644)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Text)
		return err
	},
}
