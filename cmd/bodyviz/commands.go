package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lg/bodyviz-api/internal/body"
	"lg/bodyviz-api/internal/mannequin"
	"lg/bodyviz-api/internal/silhouette"
)

// metricsReport is what `bodyviz metrics` prints.
type metricsReport struct {
	Stats   body.BodyStats     `json:"stats" yaml:"stats"`
	Metrics body.HealthMetrics `json:"metrics" yaml:"metrics"`
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Prints BMI, category, body-fat estimate and ideal weight range.",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := statsFromConfig()
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), metricsReport{Stats: s, Metrics: body.ComputeMetrics(s)})
	},
}

var segmentsCmd = &cobra.Command{
	Use:   "segments",
	Short: "Prints the per-segment scales for a render target.",
	Long: `Prints the shape factor and per-segment scales for one of the targets
2d-front, 2d-side or 3d. The BMI comes from the body stats unless --bmi is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		targetName, _ := cmd.Flags().GetString("target")
		target, err := body.ParseTarget(targetName)
		if err != nil {
			return err
		}
		s, err := statsFromConfig()
		if err != nil {
			return err
		}
		bmi := body.BMI(s.HeightCM, s.WeightKG)
		if cmd.Flags().Changed("bmi") {
			bmi, _ = cmd.Flags().GetFloat64("bmi")
		}
		d, err := body.Describe(bmi, s.Sex, target)
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), d)
	},
}

var svgCmd = &cobra.Command{
	Use:   "svg",
	Short: "Renders the 2D silhouette as SVG.",
	RunE: func(cmd *cobra.Command, args []string) error {
		view, _ := cmd.Flags().GetString("view")
		out, _ := cmd.Flags().GetString("output")
		fill, _ := cmd.Flags().GetString("fill")

		var target body.Target
		switch view {
		case "front":
			target = body.Target2DFront
		case "side":
			target = body.Target2DSide
		default:
			return fmt.Errorf("view must be front or side, got %q", view)
		}

		s, err := statsFromConfig()
		if err != nil {
			return err
		}
		d, err := body.Describe(body.BMI(s.HeightCM, s.WeightKG), s.Sex, target)
		if err != nil {
			return err
		}
		svg, err := silhouette.Render(d, silhouette.Options{Fill: fill})
		if err != nil {
			return err
		}

		if out == "" || out == "-" {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), svg)
			return err
		}
		if err := os.WriteFile(out, []byte(svg+"\n"), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", out)
		return nil
	},
}

var mannequinCmd = &cobra.Command{
	Use:   "mannequin",
	Short: "Prints the posed 3D mannequin scene.",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := statsFromConfig()
		if err != nil {
			return err
		}
		d, err := body.Describe(body.BMI(s.HeightCM, s.WeightKG), s.Sex, body.Target3D)
		if err != nil {
			return err
		}
		scene, err := mannequin.Build(d)
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), scene)
	},
}

func init() {
	segmentsCmd.Flags().StringP("target", "t", string(body.Target2DFront), "render target: 2d-front, 2d-side or 3d")
	segmentsCmd.Flags().Float64("bmi", 0, "use this BMI instead of the one derived from the stats")

	svgCmd.Flags().String("view", "front", "front or side")
	svgCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
	svgCmd.Flags().String("fill", "", "fill color for the outline")

	rootCmd.AddCommand(metricsCmd, segmentsCmd, svgCmd, mannequinCmd)
}
