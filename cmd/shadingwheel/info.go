package main

import (
	"fmt"

	"github.com/renzk/shadingwheel/pkg/analysis"
	"github.com/renzk/shadingwheel/pkg/stl"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [file]",
		Short: "Display general information about an STL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			model, err := stl.ParseFile(filename)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", filename, err)
			}

			stats := analysis.AnalyzeModel(model)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, outputStyles.title.Render("STL File Information"))
			if model.Name != "" {
				fmt.Fprintf(out, "Name: %s\n", model.Name)
			}
			fmt.Fprintf(out, "File: %s\n\n", filename)

			fmt.Fprintf(out, "Triangles:    %d\n", stats.TriangleCount)
			fmt.Fprintf(out, "Surface area: %.6f\n", stats.SurfaceArea)
			if stats.TriangleCount == 0 {
				return nil
			}
			fmt.Fprintf(out, "Min:          %s\n", analysis.FormatVector(stats.BoundingBox.Min))
			fmt.Fprintf(out, "Max:          %s\n", analysis.FormatVector(stats.BoundingBox.Max))
			fmt.Fprintf(out, "Size:         %s\n", analysis.FormatSize(stats.Dimensions))
			fmt.Fprintf(out, "Edge lengths: min %.6f, max %.6f, avg %.6f\n",
				stats.MinEdgeLength, stats.MaxEdgeLength, stats.AvgEdgeLength)
			return nil
		},
	}
}
