package main

import (
	"fmt"
	"os"

	"voice2text/cmd/v2t/cmd"
	"voice2text/internal/config"
)

func main() {
	// A missing .env is fine; keys may come from the process environment.
	if _, err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Configuration Warning: %v\n", err)
	}

	cmd.Execute()
}
