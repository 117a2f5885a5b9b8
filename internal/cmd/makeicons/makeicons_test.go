package makeicons

import (
	"bytes"
	"context"
	"flag"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("make-icons", flag.ContinueOnError)

	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Source != "ME.jpeg" {
		t.Fatalf("source = %q, want %q", cfg.Source, "ME.jpeg")
	}
	if cfg.OutDir != "extension/icons" {
		t.Fatalf("out dir = %q, want %q", cfg.OutDir, "extension/icons")
	}
}

func TestParseConfigPositionalsOverrideEnv(t *testing.T) {
	t.Setenv("HANZITAB_ICONS_SOURCE", "env.png")
	t.Setenv("HANZITAB_ICONS_OUT_DIR", "env-out")

	fs := flag.NewFlagSet("make-icons", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"logo.png"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Source != "logo.png" {
		t.Fatalf("source = %q, want %q", cfg.Source, "logo.png")
	}
	if cfg.OutDir != "env-out" {
		t.Fatalf("out dir = %q, want %q", cfg.OutDir, "env-out")
	}

	fs = flag.NewFlagSet("make-icons", flag.ContinueOnError)
	cfg, err = ParseConfig(fs, []string{"logo.png", "dist/icons"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.OutDir != "dist/icons" {
		t.Fatalf("out dir = %q, want %q", cfg.OutDir, "dist/icons")
	}
}

func TestParseConfigIgnoresExtraArgs(t *testing.T) {
	fs := flag.NewFlagSet("make-icons", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"a.png", "out", "extra"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Source != "a.png" || cfg.OutDir != "out" {
		t.Fatalf("config = %+v, want source a.png and out dir out", cfg)
	}
}

func TestParseConfigRequiresFlagSet(t *testing.T) {
	if _, err := ParseConfig(nil, nil); err == nil {
		t.Fatal("expected error for nil flag set")
	}
}

func TestRunWritesIcons(t *testing.T) {
	t.Setenv("HANZITAB_OTEL_ENDPOINT", "")
	dir := t.TempDir()
	src := filepath.Join(dir, "ME.png")
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	img.SetNRGBA(10, 10, color.NRGBA{0, 0, 0, 255})
	if err := imaging.Save(img, src); err != nil {
		t.Fatalf("write source: %v", err)
	}

	outDir := filepath.Join(dir, "icons")
	var out bytes.Buffer
	if err := Run(context.Background(), Config{Source: src, OutDir: outDir, Verbose: true}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "Icons written to "+outDir {
		t.Fatalf("unexpected status line %q", got)
	}
	for _, name := range []string{"icon_master.png", "icon16.png", "icon48.png", "icon128.png"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}

func TestRunFailsOnMissingSource(t *testing.T) {
	t.Setenv("HANZITAB_OTEL_ENDPOINT", "")
	dir := t.TempDir()
	outDir := filepath.Join(dir, "icons")

	var out bytes.Buffer
	err := Run(context.Background(), Config{Source: filepath.Join(dir, "ME.jpeg"), OutDir: outDir}, &out)
	if err == nil {
		t.Fatal("expected error for missing source")
	}
	if out.Len() != 0 {
		t.Fatalf("expected no status line, got %q", out.String())
	}
	if _, statErr := os.Stat(outDir); statErr != nil {
		t.Fatalf("expected output dir to be created: %v", statErr)
	}
}

func TestRunRequiresOutput(t *testing.T) {
	if err := Run(context.Background(), Config{}, nil); err == nil {
		t.Fatal("expected error for nil output")
	}
}
