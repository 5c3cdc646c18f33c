package docsite

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

// Worker pool sizing constants.
const (
	// minWorkers ensures at least one renderer is running.
	minWorkers = 1

	// maxWorkers caps the fan-out; rendering is CPU-light template work and
	// writes bottleneck on the filesystem well before this.
	maxWorkers = 8
)

// Generator drives one documentation generation run.
type Generator struct {
	cfg      Config
	nodes    []ModuleNode
	renderer Renderer
	logger   *slog.Logger
	workers  int
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithWorkers fixes the page-rendering worker count (0 = auto).
func WithWorkers(n int) GeneratorOption {
	return func(g *Generator) { g.workers = n }
}

// WithLogger sets the logger used for progress and per-page failures.
func WithLogger(l *slog.Logger) GeneratorOption {
	return func(g *Generator) { g.logger = l }
}

// WithRenderer replaces the default template-backed renderer.
func WithRenderer(r Renderer) GeneratorOption {
	return func(g *Generator) { g.renderer = r }
}

// NewGenerator creates a Generator over a config and the full node list.
// Nodes are treated as a read-only snapshot for the duration of each run.
func NewGenerator(cfg Config, nodes []ModuleNode, opts ...GeneratorOption) *Generator {
	g := &Generator{
		cfg:    cfg,
		nodes:  nodes,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run executes the generation sequence and returns the absolute path to the
// generated index.html. Any failure in a required step aborts the run; the
// optional logo and README steps follow their own policies (an unsupported
// logo format is fatal, a missing README is not). Partial output from an
// aborted run is left on disk and wiped at the start of the next run.
func (g *Generator) Run(ctx context.Context) (string, error) {
	cfg, err := g.cfg.Normalize()
	if err != nil {
		return "", err
	}

	renderer := g.renderer
	if renderer == nil {
		renderer, err = newTemplateRenderer(cfg.Highlight == HighlightServer)
		if err != nil {
			return "", err
		}
	}

	if err := resetOutput(cfg.OutputDir); err != nil {
		return "", err
	}
	if err := copyAssets(cfg.OutputDir); err != nil {
		return "", err
	}

	site := SiteContext{
		Title:      cfg.Title,
		Version:    cfg.Version,
		Main:       cfg.Main,
		Nodes:      g.nodes,
		Categories: Classify(g.nodes),
	}

	if cfg.LogoPath != "" {
		relPath, err := installLogo(cfg.LogoPath, cfg.OutputDir)
		if err != nil {
			return "", err
		}
		site.HasLogo = true
		site.LogoPath = relPath
	}

	if err := g.processReadme(ctx, cfg, renderer, &site); err != nil {
		return "", err
	}

	redirect, err := renderer.Redirect(site)
	if err != nil {
		return "", err
	}
	if err := writePage(cfg.OutputDir, "index.html", redirect); err != nil {
		return "", err
	}

	overview, err := renderer.Overview(ctx, site)
	if err != nil {
		return "", err
	}
	if err := writePage(cfg.OutputDir, "overview.html", overview); err != nil {
		return "", err
	}

	notFound, err := renderer.NotFound(ctx, site)
	if err != nil {
		return "", err
	}
	if err := writePage(cfg.OutputDir, "404.html", notFound); err != nil {
		return "", err
	}

	if err := writeSidebarData(cfg.OutputDir, site.Categories); err != nil {
		return "", err
	}

	if err := g.renderNodePages(ctx, renderer, cfg.OutputDir, site); err != nil {
		return "", err
	}

	return filepath.Abs(filepath.Join(cfg.OutputDir, "index.html"))
}

// resetOutput deletes and recreates the output directory. No state survives
// from a prior run.
func resetOutput(outDir string) error {
	if err := os.RemoveAll(outDir); err != nil {
		return fmt.Errorf("%w: %v", ErrResetOutput, err)
	}
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrResetOutput, err)
	}
	return nil
}

// processReadme loads, autolinks, renders, and writes README.html.
// A missing or unreadable README degrades to HasReadme=false; everything
// after a successful read is a hard failure.
func (g *Generator) processReadme(ctx context.Context, cfg Config, renderer Renderer, site *SiteContext) error {
	if cfg.ReadmePath == "" {
		return nil
	}

	raw, err := os.ReadFile(cfg.ReadmePath) // #nosec G304 -- readme path is user-provided config
	if err != nil {
		g.logger.Warn("readme unavailable, generating without it",
			slog.String("path", cfg.ReadmePath),
			slog.Any("error", err))
		return nil
	}
	site.HasReadme = true

	linked := Autolink(string(raw), site.Nodes)
	md := newGoldmarkRenderer(cfg.Highlight == HighlightServer)
	body, err := md.Render(ctx, linked)
	if err != nil {
		return fmt.Errorf("rendering readme: %w", err)
	}

	page, err := renderer.Readme(ctx, body, *site)
	if err != nil {
		return fmt.Errorf("rendering readme page: %w", err)
	}

	// Idempotent, so harmless when the renderer already tagged its output.
	page = NormalizeCodeBlocks(page)

	return writePage(cfg.OutputDir, "README.html", page)
}

// pageResult holds the outcome of one node page render.
type pageResult struct {
	id  string
	err error
}

// renderNodePages fans page rendering out across a worker pool and joins on
// completion. Every node gets a page, protocol implementations included.
// Per-node failures are collected and logged; the run fails only when zero
// pages were written, since a partial doc site is still useful.
func (g *Generator) renderNodePages(ctx context.Context, renderer Renderer, outDir string, site SiteContext) error {
	nodes := site.Nodes
	if len(nodes) == 0 {
		return nil
	}

	workers := resolveWorkers(g.workers)
	if workers > len(nodes) {
		workers = len(nodes)
	}

	results := make([]pageResult, len(nodes))
	jobs := make(chan int, len(nodes))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				node := nodes[idx]
				if ctx.Err() != nil {
					results[idx] = pageResult{id: node.ID, err: ctx.Err()}
					continue
				}
				results[idx] = pageResult{
					id:  node.ID,
					err: renderNodePage(ctx, renderer, outDir, node, site),
				}
			}
		}()
	}

	for i := range nodes {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}

	written := 0
	for _, res := range results {
		if res.err != nil {
			g.logger.Warn("page generation failed",
				slog.String("node", res.id),
				slog.Any("error", res.err))
			continue
		}
		written++
	}

	if written == 0 {
		return fmt.Errorf("%w: all %d pages failed", ErrNoPagesWritten, len(nodes))
	}
	return nil
}

// renderNodePage renders one node page and writes it to <outDir>/<id>.html.
func renderNodePage(ctx context.Context, renderer Renderer, outDir string, node ModuleNode, site SiteContext) error {
	html, err := renderer.NodePage(ctx, node, site)
	if err != nil {
		return err
	}
	return writePage(outDir, node.ID+".html", html)
}

// resolveWorkers determines the fan-out width.
// Priority: explicit count > GOMAXPROCS (automaxprocs-adjusted in the CLI),
// clamped to [minWorkers, maxWorkers].
func resolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}
	n := runtime.GOMAXPROCS(0)
	if n < minWorkers {
		return minWorkers
	}
	if n > maxWorkers {
		return maxWorkers
	}
	return n
}

// sidebarEntries builds sidebar data in the fixed category order, omitting
// empty categories entirely.
func sidebarEntries(cats Categories) []SidebarEntry {
	groups := []struct {
		id    string
		nodes []ModuleNode
	}{
		{"modules", cats.Modules},
		{"exceptions", cats.Exceptions},
		{"protocols", cats.Protocols},
	}

	entries := make([]SidebarEntry, 0, len(groups))
	for _, grp := range groups {
		if len(grp.nodes) == 0 {
			continue
		}
		items := make([]string, len(grp.nodes))
		for i, n := range grp.nodes {
			items[i] = n.ID
		}
		entries = append(entries, SidebarEntry{ID: grp.id, Items: items})
	}
	return entries
}

// writeSidebarData emits dist/sidebar_items.js for the client-side
// navigation script. encoding/json keeps struct field order, so repeated
// runs over identical inputs are byte-identical.
func writeSidebarData(outDir string, cats Categories) error {
	payload, err := json.Marshal(sidebarEntries(cats))
	if err != nil {
		return fmt.Errorf("marshaling sidebar data: %w", err)
	}
	content := fmt.Sprintf("sidebarNodes = %s;\n", payload)
	return writePage(outDir, filepath.Join("dist", "sidebar_items.js"), content)
}

// writePage writes one generated file under the output root.
func writePage(outDir, name, content string) error {
	dest := filepath.Join(outDir, name)
	// #nosec G306 -- generated pages are meant to be world-readable
	if err := os.WriteFile(dest, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
