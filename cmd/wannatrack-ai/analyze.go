package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"wannatrack-ai/internal/service"
	"wannatrack-ai/pkg/config"
	"wannatrack-ai/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	analyzeText string
	analyzeFile string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one receipt and print the result as JSON",
	Long: `Run the analyzer once without starting the server.

Exactly one of --text or --file must be given.

Examples:
  wannatrack-ai analyze --text "Coffee at Starbucks 4.50$"
  wannatrack-ai analyze --file ./receipt.jpg`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkSingleSource(analyzeText, analyzeFile); err != nil {
			return err
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		appLogger, err := logger.New(cfg.Logger.Level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logger.Sync(appLogger)

		p, err := buildPipeline(cmd.Context(), cfg, appLogger)
		if err != nil {
			return err
		}
		defer p.Close()

		var upload *service.Upload
		if analyzeFile != "" {
			f, err := os.Open(analyzeFile)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", analyzeFile, err)
			}
			defer f.Close()
			upload = &service.Upload{Filename: filepath.Base(analyzeFile), Content: f}
		}

		result, err := p.analyzer.Analyze(cmd.Context(), analyzeText, upload)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeText, "text", "", "receipt text")
	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "path to a receipt image or PDF")
}

func checkSingleSource(text, file string) error {
	switch {
	case text == "" && file == "":
		return errors.New("either --file or --text must be provided")
	case text != "" && file != "":
		return errors.New("provide only one of --file or --text")
	}
	return nil
}
