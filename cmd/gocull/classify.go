package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gocull/pkg/frustum"
	"github.com/philipparndt/gocull/pkg/geometry"
	"github.com/philipparndt/gocull/pkg/view"
)

var (
	classifyView   string
	classifyPoint  []float64
	classifySphere []float64
	classifyBox    []float64
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a point, sphere or box against a view",
	Long: `Classify a single shape against the frustum described by a view file.
Exactly one of --point, --sphere or --box must be given.`,
	Args: cobra.NoArgs,
	Run:  runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringVarP(&classifyView, "view", "v", "", "YAML view file")
	classifyCmd.Flags().Float64SliceVar(&classifyPoint, "point", nil, "Point as x,y,z")
	classifyCmd.Flags().Float64SliceVar(&classifySphere, "sphere", nil, "Sphere as x,y,z,radius")
	classifyCmd.Flags().Float64SliceVar(&classifyBox, "box", nil, "Box as minx,miny,minz,maxx,maxy,maxz")

	classifyCmd.MarkFlagRequired("view")
	classifyCmd.MarkFlagsOneRequired("point", "sphere", "box")
	classifyCmd.MarkFlagsMutuallyExclusive("point", "sphere", "box")
}

func runClassify(cmd *cobra.Command, args []string) {
	params, err := view.Load(classifyView)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading view: %v\n", err)
		os.Exit(1)
	}

	loc, desc, err := classify(frustum.Derive(params))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s: %s\n", desc, loc)
}

func classify(state frustum.State) (frustum.Location, string, error) {
	switch {
	case classifyPoint != nil:
		if len(classifyPoint) != 3 {
			return 0, "", fmt.Errorf("--point needs 3 values, got %d", len(classifyPoint))
		}
		p := geometry.NewVector3(classifyPoint[0], classifyPoint[1], classifyPoint[2])
		return state.PointIn(p), fmt.Sprintf("Point %s", p), nil

	case classifySphere != nil:
		if len(classifySphere) != 4 {
			return 0, "", fmt.Errorf("--sphere needs 4 values, got %d", len(classifySphere))
		}
		c := geometry.NewVector3(classifySphere[0], classifySphere[1], classifySphere[2])
		r := classifySphere[3]
		return state.SphereIn(c, r), fmt.Sprintf("Sphere %s r=%.6f", c, r), nil

	default:
		if len(classifyBox) != 6 {
			return 0, "", fmt.Errorf("--box needs 6 values, got %d", len(classifyBox))
		}
		box := geometry.NewBoundingBox()
		box.Extend(geometry.NewVector3(classifyBox[0], classifyBox[1], classifyBox[2]))
		box.Extend(geometry.NewVector3(classifyBox[3], classifyBox[4], classifyBox[5]))
		return state.BoxIn(box), fmt.Sprintf("Box %s - %s", box.Min, box.Max), nil
	}
}
