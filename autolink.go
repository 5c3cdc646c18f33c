package docsite

import (
	"regexp"
	"sort"
	"strings"
)

// Autolink rewrites backticked references to known node ids into Markdown
// links to their generated pages: `Name` becomes [`Name`](Name.html).
// Occurrences already wrapped in a link ([`Name`](...)) are left alone.
// All nodes resolve as targets, including protocol implementations.
func Autolink(text string, nodes []ModuleNode) string {
	if len(nodes) == 0 || text == "" {
		return text
	}

	pattern := backtickedIDPattern(nodes)
	matches := pattern.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(matches)*16)

	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		name := text[m[2]:m[3]]

		b.WriteString(text[last:start])
		last = end

		if alreadyLinked(text, start, end) {
			b.WriteString(text[start:end])
			continue
		}

		b.WriteString("[`")
		b.WriteString(name)
		b.WriteString("`](")
		b.WriteString(name)
		b.WriteString(".html)")
	}
	b.WriteString(text[last:])

	return b.String()
}

// backtickedIDPattern builds a single alternation over all node ids.
// Longer ids come first so `Foo.Bar` wins over `Foo` at the same position.
func backtickedIDPattern(nodes []ModuleNode) *regexp.Regexp {
	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if n.ID != "" {
			ids = append(ids, n.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		if len(ids[i]) != len(ids[j]) {
			return len(ids[i]) > len(ids[j])
		}
		return ids[i] < ids[j]
	})
	for i, id := range ids {
		ids[i] = regexp.QuoteMeta(id)
	}
	return regexp.MustCompile("`(" + strings.Join(ids, "|") + ")`")
}

// alreadyLinked reports whether the backticked match at [start,end) sits
// inside a Markdown link label. Go regexp has no lookbehind, so the check
// is positional: [`Name`]( is the shape produced by a prior autolink pass
// or a hand-written link.
func alreadyLinked(text string, start, end int) bool {
	return start > 0 && text[start-1] == '[' &&
		end < len(text) && text[end] == ']'
}
