package docsite

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alnah/go-docsite/internal/fileutil"
)

// ImageFormat identifies a logo image format by binary signature.
type ImageFormat int

// Recognized image formats.
const (
	ImageUnknown ImageFormat = iota
	ImageJPEG
	ImagePNG
)

// logoSniffLen is how many leading bytes are read for signature matching.
const logoSniffLen = 16

// Binary signatures.
var (
	jpegSignature = []byte{0xFF, 0xD8}
	pngSignature  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
)

// DetectImageFormat classifies an image by its leading bytes.
// Anything that is not JPEG or PNG is ImageUnknown.
func DetectImageFormat(prefix []byte) ImageFormat {
	switch {
	case bytes.HasPrefix(prefix, jpegSignature):
		return ImageJPEG
	case bytes.HasPrefix(prefix, pngSignature):
		return ImagePNG
	default:
		return ImageUnknown
	}
}

// fileName returns the output filename for a recognized format.
func (f ImageFormat) fileName() string {
	switch f {
	case ImageJPEG:
		return "logo.jpg"
	case ImagePNG:
		return "logo.png"
	default:
		return ""
	}
}

// installLogo sniffs the configured logo file and copies it into
// <outDir>/assets/ under a canonical name. Returns the site-relative path
// of the installed logo. An unrecognized signature is a hard failure.
func installLogo(srcPath, outDir string) (string, error) {
	prefix, err := readPrefix(srcPath, logoSniffLen)
	if err != nil {
		return "", fmt.Errorf("reading logo: %w", err)
	}

	format := DetectImageFormat(prefix)
	if format == ImageUnknown {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedImageFormat, srcPath)
	}

	assetsDir := filepath.Join(outDir, "assets")
	if err := os.MkdirAll(assetsDir, dirPermissions); err != nil {
		return "", fmt.Errorf("creating assets directory: %w", err)
	}

	relPath := filepath.Join("assets", format.fileName())
	if err := fileutil.CopyFile(srcPath, filepath.Join(outDir, relPath)); err != nil {
		return "", fmt.Errorf("copying logo: %w", err)
	}

	return filepath.ToSlash(relPath), nil
}

// readPrefix reads up to n leading bytes of a file. Files shorter than n
// are not an error; signature matching handles short prefixes.
func readPrefix(path string, n int) ([]byte, error) {
	f, err := os.Open(path) // #nosec G304 -- logo path is user-provided config
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, n)
	read, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return buf[:read], nil
}
