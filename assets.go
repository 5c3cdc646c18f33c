package docsite

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/alnah/go-docsite/internal/assets"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// assetMapping pairs a source glob in the embedded asset filesystem with a
// destination subdirectory under the output root.
type assetMapping struct {
	glob string
	dest string
}

// assetMappings lists the static subtrees every generated site ships with.
var assetMappings = []assetMapping{
	{glob: "dist/*", dest: "dist"},
	{glob: "fonts/*", dest: "fonts"},
}

// copyAssets copies all mapped static files into the output tree, flattening
// matches to their base filenames. Any failure is fatal: a site missing its
// CSS or JS is broken.
func copyAssets(outDir string) error {
	site := assets.Site()
	for _, m := range assetMappings {
		destDir := filepath.Join(outDir, m.dest)
		if err := os.MkdirAll(destDir, dirPermissions); err != nil {
			return fmt.Errorf("%w: creating %s: %v", ErrCopyAssets, m.dest, err)
		}

		matches, err := fs.Glob(site, m.glob)
		if err != nil {
			return fmt.Errorf("%w: glob %q: %v", ErrCopyAssets, m.glob, err)
		}

		for _, match := range matches {
			data, err := fs.ReadFile(site, match)
			if err != nil {
				return fmt.Errorf("%w: reading %s: %v", ErrCopyAssets, match, err)
			}
			dest := filepath.Join(destDir, path.Base(match))
			// #nosec G306 -- site assets are meant to be world-readable
			if err := os.WriteFile(dest, data, filePermissions); err != nil {
				return fmt.Errorf("%w: writing %s: %v", ErrCopyAssets, dest, err)
			}
		}
	}
	return nil
}
