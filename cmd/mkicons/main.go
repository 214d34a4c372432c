// mkicons renders placeholder application icons: one PNG per size under
// icons/, plus the 1024px master icon.png the other packers consume.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/UltraInstinct0x/WorkToJiraEffort/internal/icon"
)

const iconsDir = "icons"

func main() {
	if err := os.MkdirAll(iconsDir, 0o755); err != nil {
		log.Fatalf("failed to create %s directory: %v", iconsDir, err)
	}

	for _, size := range []int{32, 128, 256, 512} {
		writeIcon(size, filepath.Join(iconsDir, fmt.Sprintf("%dx%d.png", size, size)))
	}

	// 1024px master image for the ico/icns packers.
	writeIcon(1024, filepath.Join(iconsDir, "icon.png"))

	log.Print("placeholder icons created")
}

func writeIcon(size int, path string) {
	if err := imaging.Save(icon.Draw(size), path); err != nil {
		log.Fatalf("failed to save %s: %v", path, err)
	}
	log.Printf("created %s", path)
}
