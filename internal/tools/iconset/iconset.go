package iconset

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// MasterName is the file name of the keyed and trimmed full-size image.
const MasterName = "icon_master.png"

var tracer = otel.Tracer("github.com/hanzitab/hanzitab/internal/tools/iconset")

// Options configures one Generate run.
type Options struct {
	Source string
	OutDir string
	// Sizes defaults to DefaultSizes when empty.
	Sizes []int
}

// Result describes what Generate wrote.
type Result struct {
	MasterPath string
	IconPaths  []string
	// Keyed is the number of background pixels made transparent.
	Keyed int
	// Bounds is the trimmed region in source coordinates.
	Bounds image.Rectangle
}

// IconName returns the file name of the icon for size.
func IconName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// Generate writes the master image and one icon per size into opts.OutDir.
// The output directory is created before the source is read, so it exists
// even when loading fails.
func Generate(ctx context.Context, opts Options) (res Result, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := tracer.Start(ctx, "iconset.Generate")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if opts.Source == "" {
		return Result{}, errors.New("source image is required")
	}
	if opts.OutDir == "" {
		return Result{}, errors.New("output dir is required")
	}
	sizes := opts.Sizes
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}
	for _, size := range sizes {
		if size <= 0 {
			return Result{}, fmt.Errorf("invalid icon size %d", size)
		}
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output dir: %w", err)
	}

	img, err := Load(opts.Source)
	if err != nil {
		return Result{}, err
	}
	res.Keyed = KeyBackground(img)
	res.Bounds, _ = VisibleBounds(img)
	master := Trim(img)
	if res.Bounds.Empty() {
		res.Bounds = img.Bounds()
	}
	span.SetAttributes(
		attribute.String("iconset.source", opts.Source),
		attribute.Int("iconset.keyed", res.Keyed),
		attribute.Int("iconset.width", master.Bounds().Dx()),
		attribute.Int("iconset.height", master.Bounds().Dy()),
	)

	res.MasterPath = filepath.Join(opts.OutDir, MasterName)
	if err := save(master, res.MasterPath); err != nil {
		return Result{}, err
	}

	for _, size := range sizes {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		path := filepath.Join(opts.OutDir, IconName(size))
		if err := save(Render(master, size), path); err != nil {
			return Result{}, err
		}
		res.IconPaths = append(res.IconPaths, path)
	}
	return res, nil
}

// Load decodes the image at path into an owned NRGBA buffer. JPEG EXIF
// orientation is applied, so a rotated camera photo keys and trims upright.
func Load(path string) (*image.NRGBA, error) {
	src, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("load source image %s: %w", path, err)
	}
	return imaging.Clone(src), nil
}

func save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
