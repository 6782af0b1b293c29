package cmd

import (
	"fmt"
	"strings"

	"github.com/fusionatg/tankcal-cli/internal/chart"
	"github.com/spf13/cobra"
)

var (
	chartPoints int
	chartRaw    bool
	chartSheet  string
	chartSurvey string
)

var chartCmd = &cobra.Command{
	Use:   "chart <file>",
	Short: "Parse a strapping chart and print the normalized calibration curve",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		curve, err := loadCurve(args[0], chartSheet)
		if err != nil {
			return err
		}

		out := curve
		if !chartRaw {
			n := chartPoints
			if n <= 0 {
				if cfg != nil && cfg.ResamplePoints > 1 {
					n = cfg.ResamplePoints
				} else {
					n = chart.DefaultResamplePoints
				}
			}
			out = chart.Resample(curve, n)
		}

		printCurve(out)
		if !chartRaw && curve.DistinctHeights() < 2 {
			fmt.Println("(curve has fewer than two distinct heights; printed as-is)")
		}

		if chartSurvey != "" {
			s, err := loadSurveyByName(chartSurvey)
			if err != nil {
				return err
			}
			s.SetCurve(curve)
			if err := s.Save(); err != nil {
				return err
			}
			fmt.Printf("✓ Curve recorded in survey %s (%d points)\n", s.Name, len(curve))
		}
		return nil
	},
}

func printCurve(c chart.Curve) {
	p := precision()
	w := columnWidth(c, p)
	fmt.Printf("%-*s  %s\n", w, heightLabel(), volumeLabel())
	fmt.Println(strings.Repeat("-", w+2+len(volumeLabel())))
	for _, pt := range c {
		fmt.Printf("%-*.*f  %.*f\n", w, p, pt.HeightMM, p, pt.VolumeL)
	}
}

func columnWidth(c chart.Curve, p int) int {
	w := len(heightLabel())
	for _, pt := range c {
		if n := len(fmt.Sprintf("%.*f", p, pt.HeightMM)); n > w {
			w = n
		}
	}
	return w
}

func init() {
	rootCmd.AddCommand(chartCmd)
	chartCmd.Flags().IntVar(&chartPoints, "points", 0, "number of evenly spaced rows to print (default from config, 300)")
	chartCmd.Flags().BoolVar(&chartRaw, "raw", false, "print the raw normalized curve without resampling")
	chartCmd.Flags().StringVar(&chartSheet, "sheet", "", "worksheet name for .xlsx input (default: first sheet)")
	chartCmd.Flags().StringVarP(&chartSurvey, "survey", "s", "", "record the curve into the named survey")
}
