package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/fusionatg/tankcal-cli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set TankCal configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("precision: %d\n", cfg.Precision)
		fmt.Printf("resample_points: %d\n", cfg.ResamplePoints)
		fmt.Printf("surveys_dir: %s\n", cfg.SurveysDir)
		fmt.Printf("height_label: %s\n", cfg.HeightLabel)
		fmt.Printf("volume_label: %s\n", cfg.VolumeLabel)
		if cfg.DefaultSheet != "" {
			fmt.Printf("default_sheet: %s\n", cfg.DefaultSheet)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "precision":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for precision: %v", val)
			}
			cfg.Precision = i
		case "resample_points":
			i, err := strconv.Atoi(val)
			if err != nil || i < 2 {
				return fmt.Errorf("invalid resample_points: %v (need an int >= 2)", val)
			}
			cfg.ResamplePoints = i
		case "surveys_dir":
			cfg.SurveysDir = val
		case "height_label":
			cfg.HeightLabel = val
		case "volume_label":
			cfg.VolumeLabel = val
		case "default_sheet":
			cfg.DefaultSheet = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
