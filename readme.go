package docsite

import (
	"bytes"
	"context"
	"fmt"
	"regexp"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Precompiled patterns for code block tagging. Both deliberately match only
// bare blocks (no class attribute, or an empty one), which makes the rewrite
// idempotent: a tagged block never matches again.
var (
	// <pre><code>iex&gt; ...  -> interactive session block
	iexCodeBlock = regexp.MustCompile(`<pre><code\s*(?:class="")?>\s*iex&gt;`)

	// any remaining bare <pre><code> block
	bareCodeBlock = regexp.MustCompile(`<pre><code\s*(?:class="")?>`)
)

// NormalizeCodeBlocks tags bare <pre><code> blocks in emitted HTML so the
// client-side highlighter picks them up. Blocks opening with an iex&gt;
// prompt get "iex elixir", the rest get "elixir". Blocks that already carry
// a non-empty class are left untouched, so applying this twice is a no-op.
func NormalizeCodeBlocks(htmlContent string) string {
	htmlContent = iexCodeBlock.ReplaceAllString(htmlContent, `<pre><code class="iex elixir">iex&gt;`)
	return bareCodeBlock.ReplaceAllString(htmlContent, `<pre><code class="elixir">`)
}

// markdownRenderer abstracts Markdown to HTML fragment conversion.
type markdownRenderer interface {
	Render(ctx context.Context, content string) (string, error)
}

// goldmarkRenderer converts Markdown to HTML using goldmark (pure Go).
type goldmarkRenderer struct {
	md goldmark.Markdown
}

// newGoldmarkRenderer creates a goldmarkRenderer with GFM extensions.
// With serverHighlight, fenced code blocks are highlighted at generation
// time via chroma; those blocks come out pre-classed, so code block
// normalization skips them.
func newGoldmarkRenderer(serverHighlight bool) *goldmarkRenderer {
	exts := []goldmark.Extender{
		extension.GFM,      // Tables, strikethrough, autolinks, task lists
		extension.Footnote, // [^1] footnotes
	}
	if serverHighlight {
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true), // CSS classes, styled by dist/app.css
			),
		))
	}

	md := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // anchors for section links
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // Self-closing tags
		),
	)
	return &goldmarkRenderer{md: md}
}

// Render converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// goldmark doesn't natively support context.
func (r *goldmarkRenderer) Render(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrMarkdownRender, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}
