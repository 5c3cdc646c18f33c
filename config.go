package docsite

// Default and reserved page identifiers.
const (
	// DefaultMainPage is the landing page id used when none is configured.
	DefaultMainPage = "overview"

	// reservedRedirectPage is the name of the generated redirect page.
	// A main page with this name would redirect to itself.
	reservedRedirectPage = "index"
)

// Highlight mode constants.
const (
	// HighlightClient tags code blocks with CSS classes for the bundled
	// client-side highlighter (default).
	HighlightClient = "client"

	// HighlightServer highlights code blocks at generation time via chroma.
	HighlightServer = "server"
)

// Config holds one generation run's settings. Normalize it once before use;
// the normalized copy is immutable for the duration of the run.
type Config struct {
	OutputDir  string // destination directory, wiped and recreated each run (required)
	Title      string // project title, consumed by templates
	Version    string // project version, consumed by templates
	Main       string // main/landing page id (default "overview", never "index")
	ReadmePath string // optional README file
	LogoPath   string // optional logo file, must sniff as JPEG or PNG
	Highlight  string // "client" (default) or "server"
}

// Normalize validates the config and fills defaults, returning a normalized
// copy. The receiver is not mutated.
func (c Config) Normalize() (Config, error) {
	if c.OutputDir == "" {
		return Config{}, ErrMissingOutputDir
	}
	if c.Main == reservedRedirectPage {
		return Config{}, ErrReservedMainPage
	}
	if c.Main == "" {
		c.Main = DefaultMainPage
	}
	switch c.Highlight {
	case "":
		c.Highlight = HighlightClient
	case HighlightClient, HighlightServer:
	default:
		return Config{}, ErrInvalidHighlight
	}
	return c, nil
}
