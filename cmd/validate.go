package cmd

import (
	"fmt"

	"github.com/fusionatg/tankcal-cli/internal/parser"
	"github.com/fusionatg/tankcal-cli/internal/validation"
	"github.com/spf13/cobra"
)

var (
	valSheet  string
	valSurvey string
)

var validateCmd = &cobra.Command{
	Use:   "validate <chart-file> <field-file>",
	Short: "Validate a calibration curve against field volume checks",
	Long:  `Validate interpolates the chart volume at each field reading's dip height and reports the deviation (field minus chart) per reading, plus summary statistics.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		curve, err := loadCurve(args[0], valSheet)
		if err != nil {
			return err
		}
		t, err := loadTable(args[1], valSheet)
		if err != nil {
			return fmt.Errorf("parse %s: %w", args[1], err)
		}
		m := parser.MapHeaders(t.Headers)
		if m == nil {
			return fmt.Errorf("%s: %w", args[1], parser.ErrUnresolvableColumns)
		}
		readings, err := parser.FieldRows(t, m)
		if err != nil {
			return fmt.Errorf("%s: %w", args[1], err)
		}

		records := validation.ValidatePoints(curve, readings)
		stats := validation.Aggregate(validation.PointDeviations(records))

		p := precision()
		fmt.Printf("%-14s %-14s %-14s %s\n", heightLabel(), "Chart (L)", "Field (L)", "Deviation (L)")
		for _, r := range records {
			fmt.Printf("%-14.*f %-14.*f %-14.*f %+.*f\n", p, r.HeightMM, p, r.ChartVolumeL, p, *r.FieldVolumeL, p, *r.DeviationL)
		}
		printStats(stats)

		if valSurvey != "" {
			s, err := loadSurveyByName(valSurvey)
			if err != nil {
				return err
			}
			s.RecordPointValidation(records, stats)
			if err := s.Save(); err != nil {
				return err
			}
			fmt.Printf("✓ Validation recorded in survey %s\n", s.Name)
		}
		return nil
	},
}

func printStats(s validation.Stats) {
	p := precision()
	fmt.Println()
	fmt.Printf("Measurements:      %d\n", s.TotalMeasurements)
	fmt.Printf("Average deviation: %+.*f L\n", p, s.AverageDeviationL)
	fmt.Printf("Max deviation:     %+.*f L at %.*f\n", p, s.MaxDeviation.ValueL, p, s.MaxDeviation.HeightMM)
	fmt.Printf("Min deviation:     %+.*f L at %.*f\n", p, s.MinDeviation.ValueL, p, s.MinDeviation.HeightMM)
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVar(&valSheet, "sheet", "", "worksheet name for .xlsx input (default: first sheet)")
	validateCmd.Flags().StringVarP(&valSurvey, "survey", "s", "", "record results into the named survey")
}
