// Package ico packs a source image into a multi-resolution Windows icon.
// The container format itself is delegated to the ICO encoder library.
package ico

import (
	"fmt"
	"image"
	"io"

	goico "github.com/sergeymakinen/go-ico"

	"github.com/UltraInstinct0x/WorkToJiraEffort/internal/icon"
)

// Sizes is the fixed set of image dimensions embedded in the container,
// in the order they are written.
var Sizes = []int{16, 32, 48, 256}

// Encode resizes src to each of the given square dimensions and writes all
// of them into a single ICO container.
func Encode(w io.Writer, src image.Image, sizes []int) error {
	images := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		images = append(images, icon.Resize(src, size))
	}

	if err := goico.EncodeAll(w, images); err != nil {
		return fmt.Errorf("failed to encode ico container: %w", err)
	}
	return nil
}
