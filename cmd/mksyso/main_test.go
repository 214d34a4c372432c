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
	outPath := filepath.Join(dir, "rsrc_windows_amd64.syso")

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
	outPath := filepath.Join(dir, "rsrc_windows_amd64.syso")

	writeSourcePNG(t, srcPath)

	if err := run(srcPath, outPath); err != nil {
		t.Fatalf("run: %v", err)
	}

	info, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
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
