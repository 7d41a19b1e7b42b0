package cmd

import (
	"fmt"
	"os"

	"github.com/medkb/sympta-cli/internal/config"
	"github.com/spf13/cobra"
)

// starterCSV seeds a fresh install with a few rows so ask/chat work out of
// the box.
const starterCSV = `symptom,conditions,medicines,eat,avoid,doctor_advice
headache,Tension headache,Paracetamol,Water,Caffeine,If lasts more than 2 days
stomach pain,Indigestion,Antacids,Rice,Spicy food,If severe
fever,Viral infection,Paracetamol,Coconut water,Fried food,If above 102F
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Bootstrap ~/.sympta with config, env template and starter data",
	Long: `Create ~/.sympta/ with a default sympta.yaml, an .env template for
provider API keys, and a small starter symptom table. Existing files are
left untouched.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	dir, err := config.SymptaDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}

	printSection("Init")

	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfgPath); err == nil {
		printSkip("config", cfgPath+" already exists")
	} else if os.IsNotExist(err) {
		cfg, err := config.DefaultConfig()
		if err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		printOK("config", "wrote "+cfgPath)
	} else {
		return fmt.Errorf("cannot stat %s: %w", cfgPath, err)
	}

	if err := config.EnsureDotEnvTemplate(); err != nil {
		return err
	}
	envPath, _ := config.DotEnvPath()
	printOK("env", envPath+" ready")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfg.DataPath); err == nil {
		printSkip("data", cfg.DataPath+" already exists")
	} else if os.IsNotExist(err) {
		if err := os.WriteFile(cfg.DataPath, []byte(starterCSV), 0o644); err != nil {
			return fmt.Errorf("cannot write starter data: %w", err)
		}
		printOK("data", "wrote starter table to "+cfg.DataPath)
	} else {
		return fmt.Errorf("cannot stat %s: %w", cfg.DataPath, err)
	}

	printInfo("", "try: sympta ask I have a headache")
	return nil
}
