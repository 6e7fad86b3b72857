package wav

import (
	"errors"
	"fmt"
	"strings"
)

// Format selects the sample encoding of a WAV file.
type Format int

const (
	// FormatPCM16 stores 16-bit signed integer samples.
	FormatPCM16 Format = iota + 1
	// FormatFloat32 stores 32-bit IEEE float samples.
	FormatFloat32
)

// WAVE format tags.
const (
	tagPCM       = 1
	tagIEEEFloat = 3
)

// ErrUnsupportedFormat is returned for unknown formats and for files whose
// encoding this package cannot read.
var ErrUnsupportedFormat = errors.New("wav: unsupported format")

// String returns the flag spelling of f.
func (f Format) String() string {
	switch f {
	case FormatPCM16:
		return "pcm16"
	case FormatFloat32:
		return "float32"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses "pcm16" or "float32" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pcm16", "int16", "s16":
		return FormatPCM16, nil
	case "float32", "f32":
		return FormatFloat32, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

func (f Format) bitDepth() int {
	if f == FormatFloat32 {
		return 32
	}
	return 16
}

func (f Format) tag() int {
	if f == FormatFloat32 {
		return tagIEEEFloat
	}
	return tagPCM
}
