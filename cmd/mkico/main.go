// mkico packs icons/icon.png into a multi-resolution Windows .ico file.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/disintegration/imaging"

	"github.com/UltraInstinct0x/WorkToJiraEffort/internal/ico"
)

func main() {
	if err := run("icons/icon.png", "icons/icon.ico"); err != nil {
		log.Fatalf("%v", err)
	}
	log.Print("created icons/icon.ico")
}

func run(srcPath, outPath string) error {
	// Decode before creating the output so a missing or broken source
	// leaves no icon.ico behind.
	src, err := imaging.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", srcPath, err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer out.Close()

	if err := ico.Encode(out, src, ico.Sizes); err != nil {
		return fmt.Errorf("failed to encode %s: %w", outPath, err)
	}
	return nil
}
