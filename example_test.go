package docsite_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-docsite"
)

// Example demonstrates generating a site from a small set of nodes.
func Example() {
	outDir, err := os.MkdirTemp("", "docsite-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(outDir)

	nodes := []docsite.ModuleNode{
		{ID: "MyApp", Type: docsite.NodeModule, Doc: "Application entry point."},
		{ID: "MyApp.Error", Type: docsite.NodeException},
	}

	gen := docsite.NewGenerator(docsite.Config{
		OutputDir: filepath.Join(outDir, "doc"),
		Title:     "MyApp",
		Version:   "1.0.0",
	}, nodes)

	index, err := gen.Run(context.Background())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.HasSuffix(index, "index.html") {
		fmt.Println("site generated")
	}
	// Output: site generated
}

// Example_autolink demonstrates rewriting backticked node references
// into documentation links.
func Example_autolink() {
	nodes := []docsite.ModuleNode{
		{ID: "MyApp.Worker", Type: docsite.NodeModule},
	}

	text := "See `MyApp.Worker` for the processing loop."
	fmt.Println(docsite.Autolink(text, nodes))
	// Output: See [`MyApp.Worker`](MyApp.Worker.html) for the processing loop.
}
