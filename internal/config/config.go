package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure. Everything here is presentation or
// workflow defaults; none of it reaches the calibration math.
type Global struct {
	Precision      int    `mapstructure:"precision" yaml:"precision"`
	ResamplePoints int    `mapstructure:"resample_points" yaml:"resample_points"`
	SurveysDir     string `mapstructure:"surveys_dir" yaml:"surveys_dir"`
	HeightLabel    string `mapstructure:"height_label" yaml:"height_label"`
	VolumeLabel    string `mapstructure:"volume_label" yaml:"volume_label"`
	DefaultSheet   string `mapstructure:"default_sheet" yaml:"default_sheet"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.tankcal/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".tankcal")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("TANKCAL")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("precision", 2)
	v.SetDefault("resample_points", 300)
	v.SetDefault("height_label", "Dip (mm)")
	v.SetDefault("volume_label", "Volume (L)")
	v.SetDefault("default_sheet", "")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".tankcal")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// Resolve surveys_dir default: ~/.tankcal/surveys
	if c.SurveysDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		c.SurveysDir = filepath.Join(home, ".tankcal", "surveys")
	}
	return &c, nil
}
