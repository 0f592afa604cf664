package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"leadscore/internal/config"
	"leadscore/internal/scoring"
	"leadscore/pkg/domain"
	"leadscore/pkg/export"
	"leadscore/pkg/logger"
	"leadscore/pkg/storage"
)

// scoreCommand scores a file of company profiles offline, without touching
// the database or the queue. Useful for trying out model changes.
func scoreCommand(cfg *config.Config) *cobra.Command {
	var (
		inputPath  string
		outputPath string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Scores a JSON file of company profiles without persisting anything",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			raw, err := os.ReadFile(inputPath)
			if err != nil {
				logger.Fatal(ctx, "could not read input file", zap.Error(err))
			}

			var profiles []domain.CompanyProfile
			if err := json.Unmarshal(raw, &profiles); err != nil {
				logger.Fatal(ctx, "could not parse input file", zap.Error(err))
			}

			engine := loadEngine(ctx, cfg)

			progress := scoring.NewProgress(len(profiles))
			done := make(chan struct{})
			go reportProgress(ctx, progress, done)

			result := engine.ScoreBatch(ctx, profiles, scoring.BatchOptions{
				Workers:  cfg.Batch.Workers,
				Progress: progress,
			})
			close(done)

			logger.Info(ctx, "batch finished",
				zap.String("status", string(result.Status)),
				zap.Int("succeeded", result.Succeeded),
				zap.Int("failed", result.Failed))

			if err := writeResults(outputPath, format, profiles, result); err != nil {
				logger.Fatal(ctx, "could not write results", zap.Error(err))
			}
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "JSON file containing an array of company profiles")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "-", "Output file, - for stdout")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or csv")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// reportProgress logs batch progress once per second until done is closed.
func reportProgress(ctx context.Context, progress *scoring.Progress, done <-chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			logger.Info(ctx, "scoring...",
				zap.Int64("completed", progress.Completed()),
				zap.Int64("total", progress.Total()))
		}
	}
}

func writeResults(outputPath, format string, profiles []domain.CompanyProfile, result domain.BatchResult) error {
	now := time.Now()
	rows := make([]storage.Lead, 0, len(result.Items))
	for _, item := range result.Items {
		lead := storage.Lead{
			CompanyDomain: item.Domain,
			Profile:       profiles[item.Index],
			Outcome:       item.Outcome,
			CreatedAt:     now,
		}
		if item.Outcome != nil {
			lead.Tier = item.Outcome.Tier
			lead.TotalScore = item.Outcome.Breakdown.TotalScore
		}
		rows = append(rows, lead)
	}

	out := os.Stdout
	if outputPath != "-" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("could not create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "csv":
		return export.WriteCSV(out, rows)
	case "json":
		return export.WriteJSON(out, rows)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
