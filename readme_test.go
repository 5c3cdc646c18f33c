package docsite

import (
	"context"
	"strings"
	"testing"
)

func TestNormalizeCodeBlocks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "iex prompt block gets iex elixir class",
			in:   "<pre><code>iex&gt;1+1</code></pre>",
			want: `<pre><code class="iex elixir">iex&gt;1+1</code></pre>`,
		},
		{
			name: "iex prompt after whitespace",
			in:   "<pre><code>\niex&gt; :ok</code></pre>",
			want: `<pre><code class="iex elixir">iex&gt; :ok</code></pre>`,
		},
		{
			name: "bare block gets elixir class",
			in:   "<pre><code></code></pre>",
			want: `<pre><code class="elixir"></code></pre>`,
		},
		{
			name: "empty class attribute counts as bare",
			in:   `<pre><code class="">defmodule X do</code></pre>`,
			want: `<pre><code class="elixir">defmodule X do</code></pre>`,
		},
		{
			name: "empty class with iex prompt",
			in:   `<pre><code class="">iex&gt; :ok</code></pre>`,
			want: `<pre><code class="iex elixir">iex&gt; :ok</code></pre>`,
		},
		{
			name: "pre-existing class untouched",
			in:   `<pre><code class="ruby">x</code></pre>`,
			want: `<pre><code class="ruby">x</code></pre>`,
		},
		{
			name: "language class from goldmark untouched",
			in:   `<pre><code class="language-go">func main() {}</code></pre>`,
			want: `<pre><code class="language-go">func main() {}</code></pre>`,
		},
		{
			name: "mixed blocks handled independently",
			in:   `<pre><code>iex&gt; 1</code></pre><pre><code>plain</code></pre><pre><code class="sh">ls</code></pre>`,
			want: `<pre><code class="iex elixir">iex&gt; 1</code></pre><pre><code class="elixir">plain</code></pre><pre><code class="sh">ls</code></pre>`,
		},
		{
			name: "no code blocks",
			in:   "<p>hello</p>",
			want: "<p>hello</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCodeBlocks(tt.in); got != tt.want {
				t.Errorf("NormalizeCodeBlocks(%q)\n got: %q\nwant: %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeCodeBlocksIdempotent(t *testing.T) {
	inputs := []string{
		"<pre><code>iex&gt;1+1</code></pre>",
		"<pre><code></code></pre>",
		`<pre><code class="">x</code></pre>`,
		`<pre><code class="ruby">x</code></pre>`,
		`<p>text</p><pre><code>iex&gt; run()</code></pre><pre><code>code</code></pre>`,
	}

	for _, in := range inputs {
		once := NormalizeCodeBlocks(in)
		twice := NormalizeCodeBlocks(once)
		if once != twice {
			t.Errorf("not idempotent for %q:\n once: %q\ntwice: %q", in, once, twice)
		}
	}
}

func TestGoldmarkRendererBareCodeBlocks(t *testing.T) {
	r := newGoldmarkRenderer(false)

	// Indented code blocks come out bare, ready for normalization.
	md := "Example:\n\n    iex> 1 + 1\n    2\n"
	html, err := r.Render(context.Background(), md)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(html, "<pre><code>") {
		t.Fatalf("indented block not bare: %q", html)
	}

	normalized := NormalizeCodeBlocks(html)
	if !strings.Contains(normalized, `class="iex elixir"`) {
		t.Errorf("normalized output missing iex class: %q", normalized)
	}
}

func TestGoldmarkRendererGFM(t *testing.T) {
	r := newGoldmarkRenderer(false)

	html, err := r.Render(context.Background(), "| a | b |\n|---|---|\n| 1 | 2 |\n")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Errorf("GFM table not rendered: %q", html)
	}
}

func TestGoldmarkRendererCancelledContext(t *testing.T) {
	r := newGoldmarkRenderer(false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Render(ctx, "# hi"); err == nil {
		t.Fatal("Render() with cancelled context succeeded, want error")
	}
}

func TestGoldmarkRendererServerHighlight(t *testing.T) {
	r := newGoldmarkRenderer(true)

	html, err := r.Render(context.Background(), "```go\nfunc main() {}\n```\n")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	// chroma emits classed markup; normalization must leave it alone.
	if NormalizeCodeBlocks(html) != html {
		t.Errorf("normalization altered highlighted block: %q", html)
	}
}
