package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fusionatg/tankcal-cli/internal/parser"
	"github.com/fusionatg/tankcal-cli/internal/validation"
	"github.com/spf13/cobra"
)

var (
	delSheet    string
	delSurvey   string
	delReadings []string
)

var deliveryCmd = &cobra.Command{
	Use:   "delivery <chart-file> [readings-file]",
	Short: "Validate a calibration curve against fuel delivery records",
	Long: `Delivery compares each reported delivered quantity against the chart-implied
volume change between the bracketing dip readings. Readings come from a file
with height and delivery columns, or from repeated --reading flags
(HEIGHT:DELIVERED, delivered 0 for the baseline dip).`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		curve, err := loadCurve(args[0], delSheet)
		if err != nil {
			return err
		}

		var readings []validation.DeliveryReading
		switch {
		case len(delReadings) > 0 && len(args) > 1:
			return fmt.Errorf("pass either a readings file or --reading flags, not both")
		case len(delReadings) > 0:
			readings, err = parseManualReadings(delReadings)
			if err != nil {
				return err
			}
		case len(args) > 1:
			t, err := loadTable(args[1], delSheet)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[1], err)
			}
			m := parser.MapHeaders(t.Headers)
			if m == nil {
				return fmt.Errorf("%s: %w", args[1], parser.ErrUnresolvableColumns)
			}
			readings, err = parser.DeliveryRows(t, m)
			if err != nil {
				return fmt.Errorf("%s: %w", args[1], err)
			}
		default:
			return fmt.Errorf("no delivery readings: pass a readings file or --reading flags")
		}

		records, err := validation.ValidateDeliveries(curve, readings)
		if err != nil {
			return err
		}
		stats := validation.Aggregate(validation.DeliveryDeviations(records))

		p := precision()
		fmt.Printf("%-12s %-12s %-14s %-14s %s\n", "Dip before", "Dip after", "Reported (L)", "Chart (L)", "Deviation (L)")
		for _, r := range records {
			fmt.Printf("%-12.*f %-12.*f %-14.*f %-14.*f %+.*f\n",
				p, r.HeightBeforeMM, p, r.HeightAfterMM, p, r.ReportedL, p, r.ChartL, p, r.DeviationL)
		}
		printStats(stats)

		if delSurvey != "" {
			s, err := loadSurveyByName(delSurvey)
			if err != nil {
				return err
			}
			s.RecordDeliveryValidation(records, stats)
			if err := s.Save(); err != nil {
				return err
			}
			fmt.Printf("✓ Deliveries recorded in survey %s\n", s.Name)
		}
		return nil
	},
}

// parseManualReadings parses HEIGHT:DELIVERED pairs entered on the command
// line, bypassing the file parser entirely.
func parseManualReadings(specs []string) ([]validation.DeliveryReading, error) {
	out := make([]validation.DeliveryReading, 0, len(specs))
	for _, raw := range specs {
		parts := strings.SplitN(raw, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid --reading %q (want HEIGHT:DELIVERED)", raw)
		}
		h, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid height in --reading %q: %w", raw, err)
		}
		d, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid delivered volume in --reading %q: %w", raw, err)
		}
		out = append(out, validation.DeliveryReading{HeightMM: h, DeliveredL: d})
	}
	return out, nil
}

func init() {
	rootCmd.AddCommand(deliveryCmd)
	deliveryCmd.Flags().StringVar(&delSheet, "sheet", "", "worksheet name for .xlsx input (default: first sheet)")
	deliveryCmd.Flags().StringVarP(&delSurvey, "survey", "s", "", "record results into the named survey")
	deliveryCmd.Flags().StringArrayVarP(&delReadings, "reading", "r", nil, "manual dip reading as HEIGHT:DELIVERED (repeatable, in dip order)")
}
