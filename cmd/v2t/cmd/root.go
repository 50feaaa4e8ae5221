package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"voice2text/cmd/v2t/cmd/serve"
	"voice2text/cmd/v2t/cmd/transcribe"
	"voice2text/cmd/v2t/cmd/version"
)

var (
	Verbose    bool
	ConfigFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "v2t",
	Short: "Transcribe audio files with a remote speech-to-text API",
	Long: `Transcribe audio files with a remote speech-to-text API.
- Run "v2t serve" to accept uploads on POST /transcribe
- Run "v2t transcribe <file>" to transcribe a local file
- Files over 25 MiB are split into 10 minute chunks with ffmpeg.`,
	TraverseChildren: true,
	SilenceUsage:     true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&ConfigFile, "config", "c", "", "YAML config file (environment variables override it)")
}
