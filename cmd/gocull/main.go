package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gocull/version"
)

var rootCmd = &cobra.Command{
	Use:   "gocull",
	Short: "View-frustum culling for 3D scenes",
	Long: `gocull derives the bounding planes of a perspective camera and classifies
points, spheres, boxes and whole STL or OpenSCAD scenes as inside, outside
or intersecting the camera's visible volume.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
