package docsite

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCopyAssets(t *testing.T) {
	outDir := t.TempDir()

	if err := copyAssets(outDir); err != nil {
		t.Fatalf("copyAssets() error: %v", err)
	}

	wantFiles := []string{
		"dist/app.css",
		"dist/app.js",
		"fonts/icons.css",
		"fonts/icons.svg",
	}
	for _, name := range wantFiles {
		path := filepath.Join(outDir, filepath.FromSlash(name))
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("missing asset %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("asset %s is empty", name)
		}
	}
}

func TestCopyAssetsStylesheetReferencesSidebar(t *testing.T) {
	outDir := t.TempDir()

	if err := copyAssets(outDir); err != nil {
		t.Fatalf("copyAssets() error: %v", err)
	}

	css, err := os.ReadFile(filepath.Join(outDir, "dist", "app.css"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(css), ".sidebar") {
		t.Error("app.css missing sidebar rules the templates depend on")
	}

	js, err := os.ReadFile(filepath.Join(outDir, "dist", "app.js"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(js), "sidebarNodes") {
		t.Error("app.js does not reference sidebarNodes from sidebar_items.js")
	}
}
