// Command lvgrid enumerates, counts and samples parameter sweeps described in
// YAML or HCL files.
package main

import (
	"context"
	"log/slog"
	"os"
)

func main() {
	ctx := context.Background()
	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
