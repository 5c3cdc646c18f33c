// Package assets holds the static files and page templates bundled into
// every generated documentation site.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed dist fonts
var site embed.FS

//go:embed templates
var templates embed.FS

// Site returns the static asset tree (dist/, fonts/) that is copied
// verbatim into each generated site.
func Site() fs.FS {
	return site
}

// Templates returns the page template tree.
func Templates() fs.FS {
	return templates
}
