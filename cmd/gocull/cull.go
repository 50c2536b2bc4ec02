package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gocull/internal/scene"
	"github.com/philipparndt/gocull/pkg/cull"
	"github.com/philipparndt/gocull/pkg/frustum"
	"github.com/philipparndt/gocull/pkg/view"
	"github.com/philipparndt/gocull/pkg/viewer"
	"github.com/philipparndt/gocull/pkg/watcher"
)

var (
	cullView    string
	cullYaw     float64
	cullPitch   float64
	cullZoom    float64
	cullFOV     float64
	cullAspect  float64
	cullNear    float64
	cullFar     float64
	cullDepth   int
	cullWorkers int
	cullWatch   bool
)

var cullCmd = &cobra.Command{
	Use:   "cull [file]",
	Short: "Classify the triangles of a scene against a view",
	Long: `Load an STL or OpenSCAD scene and classify every triangle against a
camera frustum. The frustum comes from --view, or from an orbit camera
fitted to the model and turned with --yaw, --pitch and --zoom.`,
	Args: cobra.ExactArgs(1),
	Run:  runCull,
}

func init() {
	rootCmd.AddCommand(cullCmd)

	cullCmd.Flags().StringVarP(&cullView, "view", "v", "", "YAML view file (overrides the orbit camera)")
	cullCmd.Flags().Float64Var(&cullYaw, "yaw", 0, "Orbit camera rotation around the vertical axis in degrees")
	cullCmd.Flags().Float64Var(&cullPitch, "pitch", 0, "Orbit camera elevation in degrees")
	cullCmd.Flags().Float64Var(&cullZoom, "zoom", 0, "Relative change of the orbit camera distance, e.g. -0.5 halves it")
	cullCmd.Flags().Float64Var(&cullFOV, "fov", 45, "Orbit camera vertical field of view in degrees")
	cullCmd.Flags().Float64Var(&cullAspect, "aspect", 16.0/9.0, "Orbit camera aspect ratio")
	cullCmd.Flags().Float64Var(&cullNear, "near", 0, "Near clip distance (0 fits the model)")
	cullCmd.Flags().Float64Var(&cullFar, "far", 0, "Far clip distance (0 fits the model)")
	cullCmd.Flags().IntVarP(&cullDepth, "depth", "d", 4, fmt.Sprintf("Maximum depth of the octree walk over the model bounds (0-%d)", cull.MaxDepth))
	cullCmd.Flags().IntVarP(&cullWorkers, "workers", "j", 0, "Classification workers (0 uses all CPUs)")
	cullCmd.Flags().BoolVarP(&cullWatch, "watch", "w", false, "Re-run when the scene or view file changes")
}

func runCull(cmd *cobra.Command, args []string) {
	filename := args[0]

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cullOnce(ctx, filename); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if !cullWatch {
			os.Exit(1)
		}
	}

	if !cullWatch {
		return
	}

	if err := watchAndCull(ctx, filename); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func cullParams(s *scene.Scene) (frustum.Params, error) {
	if cullView != "" {
		return view.Load(cullView)
	}

	bbox := s.Model.BoundingBox()
	cam := viewer.NewCamera(bbox)
	cam.FOV = cullFOV * math.Pi / 180
	cam.Zoom(cullZoom)
	cam.Rotate(cullPitch*math.Pi/180, cullYaw*math.Pi/180)

	near, far := cam.ClipRange(bbox)
	if cullNear > 0 {
		near = cullNear
	}
	if cullFar > 0 {
		far = cullFar
	}

	params := cam.Params(cullAspect, near, far)
	if err := view.Validate(params); err != nil {
		return params, err
	}
	return params, nil
}

func cullOnce(ctx context.Context, filename string) error {
	start := time.Now()

	if cullDepth < 0 || cullDepth > cull.MaxDepth {
		return fmt.Errorf("depth %d must be between 0 and %d", cullDepth, cull.MaxDepth)
	}

	s, err := scene.Load(ctx, filename)
	if err != nil {
		return err
	}
	if s.Model.TriangleCount() == 0 {
		return fmt.Errorf("%s contains no triangles", filename)
	}

	params, err := cullParams(s)
	if err != nil {
		return err
	}
	state := frustum.Derive(params)

	locs, err := cull.Triangles(ctx, &state, s.Model.Triangles, cullWorkers)
	if err != nil {
		return err
	}
	triangles := cull.Tally(locs)
	area := cull.SurfaceArea(s.Model.Triangles, locs)

	bbox := s.Model.BoundingBox()
	leaves := cull.CountLeaves(&state, bbox, cullDepth)

	fmt.Println("Frustum Culling Report")
	fmt.Println("======================")
	if s.Model.Name != "" {
		fmt.Printf("Name: %s\n", s.Model.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("View:")
	fmt.Printf("  Position: %s\n", params.Position)
	fmt.Printf("  Direction: %s\n", params.Direction)
	fmt.Printf("  Field of view: %.2f deg, aspect %.4f\n", params.FieldOfView, params.AspectRatio)
	fmt.Printf("  Clip range: %.6f - %.6f\n\n", params.NearClip, params.FarClip)

	fmt.Println("Triangles:")
	fmt.Printf("  Inside: %d\n", triangles.Inside)
	fmt.Printf("  Intersect: %d\n", triangles.Intersect)
	fmt.Printf("  Outside: %d\n", triangles.Outside)
	fmt.Printf("  Visible: %.2f%%\n", triangles.VisibleRatio()*100)
	fmt.Printf("  Visible surface area: %.6f of %.6f square units\n\n", area.Visible(), area.Total())

	fmt.Printf("Octree over model bounds (depth %d):\n", cullDepth)
	fmt.Printf("  Model bounds: %s\n", state.BoxIn(bbox))
	fmt.Printf("  Inside leaves: %d (%.6f cubic units)\n", leaves.Inside, leaves.InsideVolume)
	fmt.Printf("  Intersect leaves: %d (%.6f cubic units)\n", leaves.Intersect, leaves.IntersectVolume)
	fmt.Printf("  Outside leaves: %d (%.6f cubic units)\n\n", leaves.Outside, leaves.OutsideVolume)

	fmt.Printf("Done in %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}

func watchAndCull(ctx context.Context, filename string) error {
	files, err := scene.WatchList(filename, cullView)
	if err != nil {
		return err
	}

	fw, err := watcher.NewFileWatcher(500 * time.Millisecond)
	if err != nil {
		return err
	}
	defer fw.Close()

	fw.OnError(func(err error) {
		fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
	})

	changes := make(chan string, 1)
	callback := func(changedFile string) {
		select {
		case changes <- changedFile:
		default:
		}
	}
	if err := fw.Watch(files, callback); err != nil {
		return fmt.Errorf("failed to watch files: %w", err)
	}

	fmt.Printf("Watching %d file(s) for changes:\n", len(files))
	for _, f := range files {
		fmt.Printf("  - %s\n", f)
	}

	errs := make(chan error, 1)
	go func() { errs <- fw.Run(ctx) }()

	for {
		select {
		case changed := <-changes:
			fmt.Printf("\nFile changed: %s\n", changed)
			if err := cullOnce(ctx, filename); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		case err := <-errs:
			return err
		}
	}
}
