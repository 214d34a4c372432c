// mksyso embeds the application icon into a Windows resource object so the
// windows build links it into the executable.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/disintegration/imaging"

	"github.com/UltraInstinct0x/WorkToJiraEffort/internal/ico"
	"github.com/UltraInstinct0x/WorkToJiraEffort/internal/syso"
)

func main() {
	if err := run("icons/icon.png", "icons/rsrc_windows_amd64.syso"); err != nil {
		log.Fatalf("%v", err)
	}
	log.Print("created icons/rsrc_windows_amd64.syso")
}

func run(srcPath, outPath string) error {
	// Decode before creating the output so a missing or broken source
	// leaves no resource object behind.
	src, err := imaging.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", srcPath, err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer out.Close()

	if err := syso.Pack(out, src, ico.Sizes); err != nil {
		return fmt.Errorf("failed to pack %s: %w", outPath, err)
	}
	return nil
}
