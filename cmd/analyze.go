package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilianp07/crewsched/core/analyzer"
	"github.com/kilianp07/crewsched/store"
)

var (
	analyzeInput  string
	analyzePeriod int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run capacity analysis over a schedule file",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "schedule.json", "input schedule file")
	analyzeCmd.Flags().IntVar(&analyzePeriod, "period", 0, "analysis period in days (0 uses the configured period)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	period := cfg.API.AnalysisPeriodDays
	if analyzePeriod > 0 {
		period = analyzePeriod
	}

	s, err := store.LoadFile(analyzeInput)
	if err != nil {
		return fmt.Errorf("load schedule: %w", err)
	}

	out := struct {
		Report          analyzer.CapacityReport `json:"capacityReport"`
		Recommendations []string                `json:"recommendations"`
	}{
		Report:          analyzer.NewCapacityAnalyzer(s, period).Report(),
		Recommendations: analyzer.Recommendations(s),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
