package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fusionatg/tankcal-cli/internal/survey"
	"github.com/fusionatg/tankcal-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	surveyTank string
	surveyDesc string
)

var surveyCmd = &cobra.Command{
	Use:   "survey",
	Short: "Manage calibration surveys",
}

var surveyInitCmd = &cobra.Command{
	Use:   "init <survey-name>",
	Short: "Initialize a new calibration survey",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		root, err := defaultSurveysDir()
		if err != nil {
			return err
		}
		dir := filepath.Join(root, name)
		// Refuse to overwrite an existing survey.
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			if _, err := os.Stat(filepath.Join(dir, "survey.json")); err == nil {
				return fmt.Errorf("survey already exists at %s", dir)
			}
			entries, err := os.ReadDir(dir)
			if err != nil {
				return fmt.Errorf("inspect survey directory: %w", err)
			}
			if len(entries) > 0 {
				return fmt.Errorf("directory %s already exists and is not empty; refusing to initialize survey", dir)
			}
		} else if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("stat survey directory: %w", err)
		}
		if err := utils.EnsureDir(dir); err != nil {
			return err
		}
		s := survey.New(name, surveyTank, surveyDesc, dir)
		if cfg != nil {
			s.Display.Precision = cfg.Precision
			s.Display.HeightLabel = heightLabel()
			s.Display.VolumeLabel = volumeLabel()
		}
		if err := s.Save(); err != nil {
			return err
		}
		fmt.Printf("✓ Survey initialized: %s\n", dir)
		return nil
	},
}

var surveyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List surveys",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := defaultSurveysDir()
		if err != nil {
			return err
		}
		entries, err := os.ReadDir(root)
		if err != nil {
			return fmt.Errorf("read surveys dir: %w", err)
		}
		var names []string
		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			if _, err := os.Stat(filepath.Join(root, e.Name(), "survey.json")); err == nil {
				names = append(names, e.Name())
			}
		}
		if len(names) == 0 {
			fmt.Println("(no surveys)")
			return nil
		}
		sort.Strings(names)
		for _, n := range names {
			s, err := survey.Load(filepath.Join(root, n))
			if err != nil {
				fmt.Printf("- %s (unreadable: %v)\n", n, err)
				continue
			}
			fmt.Printf("- %s: tank %q, %d curve points, updated %s\n",
				s.Name, s.Tank, len(s.Curve), s.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var surveyShowCmd = &cobra.Command{
	Use:   "show [survey-name]",
	Short: "Show a survey's curve and validation results",
	Long:  `Show prints a survey's summary. With no name it looks for a survey.json in the current directory or any parent.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var s *survey.Survey
		var err error
		if len(args) == 1 {
			s, err = loadSurveyByName(args[0])
		} else {
			var dir string
			dir, err = utils.FindSurveyRoot("")
			if err == nil {
				s, err = survey.Load(dir)
			}
		}
		if err != nil {
			return err
		}
		fmt.Printf("Survey:  %s (%s)\n", s.Name, s.ID)
		if s.Tank != "" {
			fmt.Printf("Tank:    %s\n", s.Tank)
		}
		if s.Description != "" {
			fmt.Printf("Notes:   %s\n", s.Description)
		}
		fmt.Printf("Curve:   %d points\n", len(s.Curve))
		if len(s.Records) > 0 {
			fmt.Printf("Checks:  %d field volume checks\n", len(s.Records))
		}
		if len(s.Deliveries) > 0 {
			fmt.Printf("Checks:  %d delivery checks\n", len(s.Deliveries))
		}
		if s.Stats != nil {
			printStats(*s.Stats)
		}
		return nil
	},
}

func defaultSurveysDir() (string, error) {
	if cfg != nil && cfg.SurveysDir != "" {
		dir := cfg.SurveysDir
		if strings.HasPrefix(dir, "~") {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("resolve home dir: %w", err)
			}
			dir = strings.TrimPrefix(dir, "~")
			dir = strings.TrimPrefix(dir, string(os.PathSeparator))
			dir = strings.TrimPrefix(dir, "/")
			dir = filepath.Join(home, dir)
		}
		dir = filepath.Clean(dir)
		if err := utils.EnsureDir(dir); err != nil {
			return "", err
		}
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	dir := filepath.Join(home, ".tankcal", "surveys")
	if err := utils.EnsureDir(dir); err != nil {
		return "", err
	}
	return dir, nil
}

func loadSurveyByName(name string) (*survey.Survey, error) {
	if name == "" {
		return nil, errors.New("survey name is required")
	}
	root, err := defaultSurveysDir()
	if err != nil {
		return nil, err
	}
	return survey.Load(filepath.Join(root, name))
}

func init() {
	rootCmd.AddCommand(surveyCmd)
	surveyCmd.AddCommand(surveyInitCmd)
	surveyCmd.AddCommand(surveyListCmd)
	surveyCmd.AddCommand(surveyShowCmd)
	surveyInitCmd.Flags().StringVarP(&surveyTank, "tank", "t", "", "tank identifier")
	surveyInitCmd.Flags().StringVarP(&surveyDesc, "desc", "d", "", "survey description")
}
