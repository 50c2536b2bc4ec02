package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gocull/pkg/frustum"
	"github.com/philipparndt/gocull/pkg/view"
)

var (
	dumpView     string
	dumpMatrices bool
	dumpPlanes   bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the derived frustum for a view",
	Long:  "Derive the frustum described by a view file and print its corners, dimensions and optionally its planes and matrices.",
	Args:  cobra.NoArgs,
	Run:   runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().StringVarP(&dumpView, "view", "v", "", "YAML view file")
	dumpCmd.Flags().BoolVarP(&dumpPlanes, "planes", "p", false, "Also print the six bounding planes")
	dumpCmd.Flags().BoolVarP(&dumpMatrices, "matrices", "m", false, "Also print the view and projection matrices")
	dumpCmd.MarkFlagRequired("view")
}

func runDump(cmd *cobra.Command, args []string) {
	params, err := view.Load(dumpView)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading view: %v\n", err)
		os.Exit(1)
	}

	state := frustum.Derive(params)
	if err := state.Dump(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing dump: %v\n", err)
		os.Exit(1)
	}

	if dumpPlanes {
		fmt.Println()
		fmt.Printf("%-8s %-35s %-35s\n", "Plane", "Point", "Normal")
		for face := frustum.Top; face <= frustum.Far; face++ {
			plane := state.Plane(face)
			fmt.Printf("%-8s %-35s %-35s\n", face, plane.Point, plane.Normal)
		}
	}

	if dumpMatrices {
		fmt.Printf("\nView matrix:\n%s", state.ViewMatrix())
		fmt.Printf("\nProjection matrix:\n%s", state.ProjectionMatrix())
	}
}
