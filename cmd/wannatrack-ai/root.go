package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wannatrack-ai",
	Short: "AI receipt analyzer",
	Long: `Wannatrack AI turns receipt text or receipt images into structured
expense data: merchant, total, currency, date, items and language.

Images are read with tesseract, PDFs with their embedded text layer, and the
text is interpreted by an LLM (OpenAI or GigaChat). Running without a
subcommand starts the HTTP server.`,
	Version:      GitRelease,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(versionCmd)
}
