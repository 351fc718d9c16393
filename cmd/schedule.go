package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilianp07/crewsched/core/scheduler"
	"github.com/kilianp07/crewsched/infra/logger"
	"github.com/kilianp07/crewsched/store"
)

var (
	scheduleInput    string
	scheduleOutput   string
	scheduleCSV      string
	scheduleStrategy string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the scheduler over a schedule file",
	RunE:  runSchedule,
}

func init() {
	scheduleCmd.Flags().StringVarP(&scheduleInput, "input", "i", "schedule.json", "input schedule file")
	scheduleCmd.Flags().StringVarP(&scheduleOutput, "output", "o", "scheduled.json", "output schedule file")
	scheduleCmd.Flags().StringVar(&scheduleCSV, "csv", "", "optional CSV export of assignments")
	scheduleCmd.Flags().StringVar(&scheduleStrategy, "strategy", "", "strategy override (greedy or optimized)")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if scheduleStrategy != "" {
		cfg.Scheduler.Strategy = scheduleStrategy
	}

	log := logger.New("schedule")
	s, err := store.LoadFile(scheduleInput)
	if err != nil {
		return fmt.Errorf("load schedule: %w", err)
	}

	strat, err := scheduler.New(cfg.Scheduler, log)
	if err != nil {
		return err
	}
	result, err := strat.Schedule(s)
	if err != nil {
		return err
	}
	log.Infof("run %s: %d scheduled, %d failed, total cost %.2f",
		result.RunID, result.ScheduledProjects, len(result.FailedProjects), result.Statistics.TotalCost)
	for _, w := range result.Warnings {
		log.Warnf("%s", w)
	}

	if err := store.SaveFile(scheduleOutput, s); err != nil {
		return fmt.Errorf("save schedule: %w", err)
	}
	log.Infof("schedule saved to %s", scheduleOutput)

	if scheduleCSV != "" {
		f, err := os.Create(scheduleCSV)
		if err != nil {
			return err
		}
		if err := store.WriteAssignmentsCSV(f, s); err != nil {
			f.Close()
			return fmt.Errorf("write csv: %w", err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		log.Infof("assignments exported to %s", scheduleCSV)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
