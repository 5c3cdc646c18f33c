package docsite

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/alnah/go-docsite/internal/assets"
)

// Renderer turns generation context into complete HTML pages. The pipeline
// treats it as an opaque function; the default implementation is backed by
// the embedded templates. Implement it to swap in a different page look.
type Renderer interface {
	// NodePage renders one entity page. Pure over its inputs.
	NodePage(ctx context.Context, node ModuleNode, site SiteContext) (string, error)

	// Overview renders the default landing page.
	Overview(ctx context.Context, site SiteContext) (string, error)

	// NotFound renders the 404 page.
	NotFound(ctx context.Context, site SiteContext) (string, error)

	// Readme wraps an already-rendered README body in the site chrome.
	Readme(ctx context.Context, body string, site SiteContext) (string, error)

	// Redirect renders the minimal index page forwarding to the main page.
	Redirect(site SiteContext) (string, error)
}

// templateRenderer renders pages with the embedded html/template set.
type templateRenderer struct {
	tmpl *template.Template
	md   markdownRenderer
}

// newTemplateRenderer parses the embedded template set.
func newTemplateRenderer(serverHighlight bool) (*templateRenderer, error) {
	tmpl, err := template.ParseFS(assets.Templates(), "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return &templateRenderer{
		tmpl: tmpl,
		md:   newGoldmarkRenderer(serverHighlight),
	}, nil
}

// pageData is the root context handed to every template.
type pageData struct {
	Site SiteContext
	Node *nodeView
	Body template.HTML
}

// nodeView is a ModuleNode with its documentation rendered to HTML.
type nodeView struct {
	ID        string
	Title     string
	TypeLabel string
	Doc       template.HTML
	Members   []memberView
}

// memberView is a Member with its documentation rendered to HTML.
type memberView struct {
	Name  string
	Kind  string
	Arity int
	Doc   template.HTML
}

// typeLabel maps a node type to the heading label shown on its page.
func typeLabel(t NodeType) string {
	switch t {
	case NodeException:
		return "exception"
	case NodeProtocol:
		return "protocol"
	case NodeImpl:
		return "protocol implementation"
	default:
		return "module"
	}
}

func (r *templateRenderer) NodePage(ctx context.Context, node ModuleNode, site SiteContext) (string, error) {
	view, err := r.buildNodeView(ctx, node, site)
	if err != nil {
		return "", err
	}
	return r.execute("page.html", pageData{Site: site, Node: view})
}

func (r *templateRenderer) Overview(ctx context.Context, site SiteContext) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return r.execute("overview.html", pageData{Site: site})
}

func (r *templateRenderer) NotFound(ctx context.Context, site SiteContext) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return r.execute("notfound.html", pageData{Site: site})
}

func (r *templateRenderer) Readme(ctx context.Context, body string, site SiteContext) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	// Body is goldmark output over autolinked source; trusted by construction.
	return r.execute("readme.html", pageData{Site: site, Body: template.HTML(body)}) // #nosec G203
}

func (r *templateRenderer) Redirect(site SiteContext) (string, error) {
	return r.execute("redirect.html", pageData{Site: site})
}

// buildNodeView autolinks and renders the node's documentation payload.
func (r *templateRenderer) buildNodeView(ctx context.Context, node ModuleNode, site SiteContext) (*nodeView, error) {
	doc, err := r.renderDoc(ctx, node.Doc, site)
	if err != nil {
		return nil, fmt.Errorf("node %s: %w", node.ID, err)
	}

	members := make([]memberView, 0, len(node.Members))
	for _, m := range node.Members {
		mdoc, err := r.renderDoc(ctx, m.Doc, site)
		if err != nil {
			return nil, fmt.Errorf("node %s, member %s: %w", node.ID, m.Name, err)
		}
		members = append(members, memberView{
			Name:  m.Name,
			Kind:  m.Kind,
			Arity: m.Arity,
			Doc:   mdoc,
		})
	}

	return &nodeView{
		ID:        node.ID,
		Title:     node.DisplayTitle(),
		TypeLabel: typeLabel(node.Type),
		Doc:       doc,
		Members:   members,
	}, nil
}

// renderDoc runs one Markdown docstring through autolinking and goldmark.
func (r *templateRenderer) renderDoc(ctx context.Context, doc string, site SiteContext) (template.HTML, error) {
	if doc == "" {
		return "", nil
	}
	linked := Autolink(doc, site.Nodes)
	rendered, err := r.md.Render(ctx, linked)
	if err != nil {
		return "", err
	}
	return template.HTML(NormalizeCodeBlocks(rendered)), nil // #nosec G203 -- goldmark output, raw HTML escaped
}

// execute runs one named template and post-processes emitted code blocks.
func (r *templateRenderer) execute(name string, data pageData) (string, error) {
	var b strings.Builder
	if err := r.tmpl.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplateRender, name, err)
	}
	return NormalizeCodeBlocks(b.String()), nil
}
