// Package export implements the engine's output sinks: WebP frame/animation
// export (the teacher's whole purpose is "render to WebP," and an engine
// that stops at "return RGBA buffers" shortchanges that), a contact-sheet
// compositor for quick visual QA of an animation, and the stable
// mesh-format enumeration (names only — mechanics are an explicit
// non-goal).
package export

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"

	"github.com/voxelforge/vrender/internal/engine"
)

// MeshFormat is a stable name in the export-format enumeration. No
// serialization exists for any of these — mesh export mechanics are an
// explicit non-goal; this type exists purely so a host UI has something
// stable to list and round-trip through user preferences.
type MeshFormat string

const (
	MeshOBJ MeshFormat = "obj"
	MeshPLY MeshFormat = "ply"
	MeshSTL MeshFormat = "stl"
)

// MeshFormats returns the full enumeration in a stable order.
func MeshFormats() []MeshFormat {
	return []MeshFormat{MeshOBJ, MeshPLY, MeshSTL}
}

// WriteFrame encodes a single rendered image to w as WebP, the same
// nativewebp.Encode(w, img, nil) call the teacher's batch processor makes
// per item.
func WriteFrame(w io.Writer, img image.Image) error {
	if err := nativewebp.Encode(w, img, nil); err != nil {
		return fmt.Errorf("export: webp encode: %w", err)
	}
	return nil
}

// WriteFrameFile creates path (and its parent directories) and writes img
// to it as WebP.
func WriteFrameFile(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("export: mkdir %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()
	return WriteFrame(f, img)
}

// WriteAnimation writes one WebP file per animation frame into dir, named
// frame_%04d.webp in sequence order.
func WriteAnimation(dir string, frames []engine.AnimationFrame) error {
	for i, f := range frames {
		path := filepath.Join(dir, fmt.Sprintf("frame_%04d.webp", i))
		if err := WriteFrameFile(path, f.Image); err != nil {
			return err
		}
	}
	return nil
}

// ContactSheet tiles an animation's frames side by side into one strip
// image for quick visual QA, grounded on the teacher's MirrorPair
// side-by-side compositing idiom (draw.Copy placement onto a larger
// canvas, here without the mirroring or the largest-component isolation
// step, since a contact sheet wants every frame shown, not one isolated
// shape).
func ContactSheet(frames []engine.AnimationFrame, gap int) *image.NRGBA {
	if len(frames) == 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	if gap < 0 {
		gap = 0
	}

	frameW, frameH := frames[0].Image.Bounds().Dx(), frames[0].Image.Bounds().Dy()
	sheetW := frameW*len(frames) + gap*(len(frames)-1)
	sheet := image.NewNRGBA(image.Rect(0, 0, sheetW, frameH))

	x := 0
	for _, f := range frames {
		draw.Copy(sheet, image.Pt(x, 0), f.Image, f.Image.Bounds(), draw.Over, nil)
		x += frameW + gap
	}
	return sheet
}
