package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// @title Wannatrack AI Receipt Analyzer API
// @version 1.0
// @description Extracts structured expense data from receipt text or images.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
