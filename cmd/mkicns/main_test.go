package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRunMissingSource(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "icon.png")
	outPath := filepath.Join(dir, "icon.icns")

	if err := run(srcPath, outPath); err == nil {
		t.Fatal("expected an error for a missing source image")
	}

	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Errorf("output must not be created when the source is missing; stat err = %v", err)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "icon.png")
	outPath := filepath.Join(dir, "icon.icns")

	writeSourcePNG(t, srcPath)

	if err := run(srcPath, outPath); err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(data) < 8 || string(data[0:4]) != "icns" {
		t.Errorf("output does not start with the icns magic; got %d bytes", len(data))
	}
}

func writeSourcePNG(t *testing.T, path string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create source: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatalf("encode source: %v", err)
	}
}
