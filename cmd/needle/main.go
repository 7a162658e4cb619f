package main

import (
	"context"
	"fmt"
	"os"

	"needle/internal/core/version"
	"needle/internal/platform/logger"
)

func main() {
	logger.Init(logger.FromEnv())

	cmd := newApp()
	cmd.Version = version.Info().String()

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
