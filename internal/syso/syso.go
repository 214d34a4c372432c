// Package syso packs the application icon into a Windows resource object
// that the windows build links into the executable.
package syso

import (
	"fmt"
	"image"
	"io"

	"github.com/tc-hib/winres"

	"github.com/UltraInstinct0x/WorkToJiraEffort/internal/icon"
)

// Images resizes src to each of the given square dimensions, largest first,
// the order winres expects icon groups in.
func Images(src image.Image, sizes []int) []image.Image {
	images := make([]image.Image, 0, len(sizes))
	for i := len(sizes) - 1; i >= 0; i-- {
		images = append(images, icon.Resize(src, sizes[i]))
	}
	return images
}

// Pack resizes src to the given dimensions and writes an AMD64 resource
// object containing the icon group to w.
func Pack(w io.Writer, src image.Image, sizes []int) error {
	resIcon, err := winres.NewIconFromImages(Images(src, sizes))
	if err != nil {
		return fmt.Errorf("failed to create icon from images: %w", err)
	}

	rs := &winres.ResourceSet{}
	if err := rs.SetIcon(winres.RT_GROUP_ICON, resIcon); err != nil {
		return fmt.Errorf("failed to set icon: %w", err)
	}

	if err := rs.WriteObject(w, winres.ArchAMD64); err != nil {
		return fmt.Errorf("failed to write resource object: %w", err)
	}
	return nil
}
