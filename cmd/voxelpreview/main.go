// Command voxelpreview is the engine's analogue of the teacher's cmd/render:
// it loads a layered-image voxel stack, renders one frame or an animation,
// and writes WebP output, wiring voxelsrc -> engine -> export end to end.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/voxelforge/vrender/internal/animation"
	"github.com/voxelforge/vrender/internal/config"
	"github.com/voxelforge/vrender/internal/engine"
	"github.com/voxelforge/vrender/internal/engineerr"
	"github.com/voxelforge/vrender/internal/export"
	"github.com/voxelforge/vrender/internal/shading"
	"github.com/voxelforge/vrender/internal/voxel"
	"github.com/voxelforge/vrender/internal/voxelsrc"
)

func main() {
	layerDir := flag.String("layers", "", "directory of PNG/TGA layer images, one per Z slice")
	output := flag.String("output", "preview.webp", "output WebP path (or directory, with -animate)")
	configFile := flag.String("config", "", "path to a render config.json file")
	width := flag.Int("width", 0, "canvas width (default: config/256)")
	height := flag.Int("height", 0, "canvas height (default: config/256)")
	scale := flag.Float64("scale", 0, "voxels-to-pixels scale (default: config/20)")
	eulerX := flag.Float64("rx", 20, "rotation about X, degrees")
	eulerY := flag.Float64("ry", 35, "rotation about Y, degrees")
	eulerZ := flag.Float64("rz", 0, "rotation about Z, degrees")
	fov := flag.Float64("fov", 45, "perspective field of view, degrees")
	ortho := flag.Bool("ortho", false, "use orthographic projection")
	animate := flag.Bool("animate", false, "render an animation instead of a single frame")
	axis := flag.String("axis", "yaw", "animation axis: x, y, z, pitch, yaw, roll")
	steps := flag.Int("steps", 36, "animation frame count")
	span := flag.Float64("span", 360, "animation angular span, degrees")
	workers := flag.Int("workers", 0, "worker count (reserved for a future batch/scheduler mode)")
	quality := flag.Int("quality", 0, "WebP quality 1-100 (default: config/90); stored in the config, not passed to the encoder")

	flag.Parse()

	if *layerDir == "" {
		fmt.Fprintln(os.Stderr, "Error: -layers is required")
		os.Exit(1)
	}

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{Width: *width, Height: *height, Scale: *scale, Quality: *quality, Workers: *workers})

	paths, err := layerPaths(*layerDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing layers: %v\n", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no .png/.tga files found in %s\n", *layerDir)
		os.Exit(1)
	}

	layers, err := voxelsrc.LoadLayerFiles(paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading layers: %v\n", err)
		os.Exit(1)
	}

	model, err := voxelsrc.Build(layers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building voxel model: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Voxel model: %d voxels\n", len(model.Voxels))

	view := engine.ViewParameters{
		EulerX: *eulerX, EulerY: *eulerY, EulerZ: *eulerZ,
		Scale:      cfg.Scale,
		Orthogonal: *ortho,
		FovDegrees: *fov,
		Background: voxel.Color{R: 0, G: 0, B: 0, A: 0},
		Width:      cfg.Width,
		Height:     cfg.Height,
	}
	reg := shading.NewRegistry()
	shaderCfg := shading.DefaultConfig()
	log := engine.DefaultLogger()

	if *animate {
		axisVal, err := parseAxis(*axis)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		spec := animation.Spec{Axis: axisVal, Steps: *steps, StartAngle: 0, Span: *span}
		frames, err := engine.RenderAnimation(model, view, spec, shaderCfg, reg, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering animation: %v\n", err)
			os.Exit(1)
		}
		if err := export.WriteAnimation(*output, frames); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing animation: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d frames to %s\n", len(frames), *output)
		sheet := export.ContactSheet(frames, 4)
		sheetPath := filepath.Join(*output, "contact_sheet.webp")
		if err := export.WriteFrameFile(sheetPath, sheet); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: contact sheet write failed: %v\n", err)
		} else {
			fmt.Printf("Contact sheet: %s\n", sheetPath)
		}
		return
	}

	res, err := engine.Render(model, view, shaderCfg, reg, log)
	if err != nil && !errors.Is(err, engineerr.ErrEmptyModel) {
		fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
		os.Exit(1)
	}
	if err := export.WriteFrameFile(*output, res.Image); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d voxels, %d faces drawn)\n", *output, res.Metrics.Counters.Voxels, res.Metrics.Counters.FacesDrawn)
}

func layerPaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".png" || ext == ".tga" {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func parseAxis(s string) (animation.Axis, error) {
	switch strings.ToLower(s) {
	case "x":
		return animation.AxisX, nil
	case "y":
		return animation.AxisY, nil
	case "z":
		return animation.AxisZ, nil
	case "pitch":
		return animation.AxisPitch, nil
	case "yaw":
		return animation.AxisYaw, nil
	case "roll":
		return animation.AxisRoll, nil
	default:
		return 0, fmt.Errorf("unknown axis %q (want x, y, z, pitch, yaw, or roll)", s)
	}
}
