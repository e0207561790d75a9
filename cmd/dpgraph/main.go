package main

import (
	"context"
	"io"
	"os"

	"github.com/viant/dpgraph/logger"
	"github.com/viant/dpgraph/logger/console"
)

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stderr))
}

// execute runs the root command with args and returns the process exit code.
// Failures are logged to stderr, including those raised before the settings are resolved.
func execute(ctx context.Context, args []string, stderr io.Writer) int {
	logger.Init(console.New(console.Params{Output: stderr}))
	rootCmd.SetArgs(args)
	rootCmd.SetErr(stderr)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("Command execution failed", "error", err)
		return 1
	}
	return 0
}
