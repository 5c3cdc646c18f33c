// Package docsite renders a static documentation website from parsed
// source-module descriptors.
//
// # Quick Start
//
// Create a generator from a configuration and a node list, then run it:
//
//	gen := docsite.NewGenerator(docsite.Config{
//	    OutputDir: "doc",
//	    Title:     "My Project",
//	    Version:   "1.0.0",
//	}, nodes)
//
//	indexPath, err := gen.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("docs at", indexPath)
//
// The returned path points at the generated index.html, a redirect to the
// configured main page (overview.html by default).
//
// # Generation Pipeline
//
// Each run performs one linear pass:
//
//  1. Config normalization (reserved-name check, default main page)
//  2. Output directory reset (delete then recreate, nothing persists)
//  3. Static asset copy (dist/, fonts/)
//  4. Logo processing (optional, byte-signature sniffing for JPEG/PNG)
//  5. README processing (optional, autolinking + code block tagging)
//  6. Index redirect, overview, 404, and sidebar data emission
//  7. Concurrent per-node page rendering
//
// Steps 4 and 5 may be skipped; a missing README degrades gracefully while
// an unrecognized logo format aborts the run.
//
// # Parallel Rendering
//
// Per-node pages are rendered by a worker pool. Renders are pure functions
// over immutable inputs, so no synchronization beyond the fan-in join is
// needed. Individual page failures are logged with the failing node id; the
// run only fails when no page could be written at all.
//
// # Input Contract
//
// ModuleNode values are produced by an external source parser. The library
// consumes the identifier and type tag for classification and linking; the
// documentation payload flows through untouched to the template renderer.
package docsite
