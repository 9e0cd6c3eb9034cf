package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"site_grader/internal/adaptors"
	"site_grader/internal/service"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "grade [URL]",
	Short: "Grade a web page for SEO, technical quality and AI visibility",
	Long: `grade fetches a single web page and prints a quality report:
per-dimension sub-scores, a weighted overall score, an AI visibility
score, and prioritized issues and recommendations.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout, _ := cmd.Flags().GetDuration("timeout")
		userAgent, _ := cmd.Flags().GetString("user-agent")
		asJSON, _ := cmd.Flags().GetBool("json")
		verbose, _ := cmd.Flags().GetBool("verbose")

		logger := log.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(log.WarnLevel)
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}

		webClient := adaptors.NewWebClient(timeout, userAgent, logger)
		grader := service.NewGrader(logger, webClient)

		report, err := grader.Grade(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("grading failed: %w", err)
		}

		if asJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(report)
		}

		for _, line := range report.Summary() {
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().Duration("timeout", 15*time.Second, "Fetch timeout")
	rootCmd.Flags().String("user-agent", "Mozilla/5.0 (compatible; SiteGraderBot/1.0)", "User agent for the fetch")
	rootCmd.Flags().Bool("json", false, "Print the full report as JSON")
	rootCmd.Flags().Bool("verbose", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimSpace(err.Error()))
		os.Exit(1)
	}
}
