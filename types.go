package docsite

// NodeType tags a documented unit with its listing category.
type NodeType string

// Node type constants mirroring the source parser's tags.
const (
	NodeModule    NodeType = "module"
	NodeException NodeType = "exception"
	NodeProtocol  NodeType = "protocol"

	// NodeImpl marks a protocol implementation. Implementations get their
	// own pages and resolve as autolink targets, but appear in no listing
	// category.
	NodeImpl NodeType = "impl"
)

// Member is one documented member of a module (function, callback, type).
// Consumed only by the template renderer.
type Member struct {
	Name  string `yaml:"name" json:"name"`
	Kind  string `yaml:"kind" json:"kind"` // "function", "callback", "type"
	Arity int    `yaml:"arity" json:"arity"`
	Doc   string `yaml:"doc" json:"doc"` // Markdown
}

// ModuleNode is one documented unit produced by the external source parser.
// The ID doubles as the output filename stem (<ID>.html). Read-only within
// the generation pipeline.
type ModuleNode struct {
	ID      string   `yaml:"id" json:"id"`
	Type    NodeType `yaml:"type" json:"type"`
	Title   string   `yaml:"title" json:"title"` // display title, defaults to ID
	Doc     string   `yaml:"doc" json:"doc"`     // Markdown moduledoc
	Members []Member `yaml:"members" json:"members"`
}

// DisplayTitle returns the node title, falling back to the identifier.
func (n ModuleNode) DisplayTitle() string {
	if n.Title != "" {
		return n.Title
	}
	return n.ID
}

// Categories is the three-way disjoint partition of a node list.
// Protocol implementations belong to none of the three.
type Categories struct {
	Modules    []ModuleNode
	Exceptions []ModuleNode
	Protocols  []ModuleNode
}

// SidebarEntry lists the member ids of one non-empty category.
// Serialized into dist/sidebar_items.js for the client-side navigation.
type SidebarEntry struct {
	ID    string   `json:"id"`
	Items []string `json:"items"`
}

// SiteContext carries the immutable per-run inputs every render sees.
type SiteContext struct {
	Title      string
	Version    string
	Main       string
	Nodes      []ModuleNode // full node list, including implementations
	Categories Categories
	HasReadme  bool
	HasLogo    bool
	LogoPath   string // site-relative, e.g. "assets/logo.png"
}
