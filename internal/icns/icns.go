// Package icns writes Apple's multi-resolution icon container: an "icns"
// magic plus big-endian total length, followed by one tagged, length-prefixed
// PNG chunk per icon size.
package icns

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/UltraInstinct0x/WorkToJiraEffort/internal/icon"
)

// Sizes lists the icon dimensions in the order their chunks are written.
var Sizes = []int{16, 32, 128, 256, 512}

// osTypes maps an icon dimension to its chunk tag. Sizes without a tag are
// skipped silently.
var osTypes = map[int]string{
	16:  "icp4",
	32:  "icp5",
	128: "icp7",
	256: "ic08",
	512: "ic09",
}

// headerSize is the length of both the file header and each chunk header:
// a 4-byte tag plus a 4-byte big-endian length that counts the header itself.
const headerSize = 8

// Encode resizes src to each of the given square dimensions and writes the
// resulting ICNS container to w.
func Encode(w io.Writer, src image.Image, sizes []int) error {
	var chunks bytes.Buffer
	for _, size := range sizes {
		tag, ok := osTypes[size]
		if !ok {
			continue
		}

		var payload bytes.Buffer
		if err := png.Encode(&payload, icon.Resize(src, size)); err != nil {
			return fmt.Errorf("failed to encode %dpx chunk payload: %w", size, err)
		}

		chunks.WriteString(tag)
		binary.Write(&chunks, binary.BigEndian, uint32(headerSize+payload.Len()))
		chunks.Write(payload.Bytes())
	}

	if _, err := w.Write([]byte("icns")); err != nil {
		return fmt.Errorf("failed to write icns header: %w", err)
	}
	if err := binary.Write(w, binary.BigEndian, uint32(headerSize+chunks.Len())); err != nil {
		return fmt.Errorf("failed to write icns header: %w", err)
	}
	if _, err := w.Write(chunks.Bytes()); err != nil {
		return fmt.Errorf("failed to write icns chunks: %w", err)
	}
	return nil
}
