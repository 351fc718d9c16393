package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/crewsched/core/generator"
	"github.com/kilianp07/crewsched/infra/logger"
	"github.com/kilianp07/crewsched/store"
)

var (
	generateScenario string
	generateSeed     int64
	generateOutput   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic schedule scenario",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateScenario, "scenario", "balanced", "scenario preset")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "generation seed (0 uses the configured seed)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "schedule.json", "output file")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	seed := cfg.Generator.Seed
	if generateSeed != 0 {
		seed = generateSeed
	}

	log := logger.New("generate")
	s, meta, err := generator.New(seed).GenerateScenario(generateScenario, cfg.Generator)
	if err != nil {
		return err
	}
	log.Infof("scenario %s: %d employees, %d projects (seed %d)",
		meta.ScenarioName, meta.NumEmployees, meta.NumProjects, meta.Seed)

	if err := store.SaveFile(generateOutput, s); err != nil {
		return fmt.Errorf("save schedule: %w", err)
	}
	log.Infof("schedule saved to %s", generateOutput)
	return nil
}
