package docsite

// Classify partitions nodes into the three listing categories. The partition
// is stable (input order preserved) and pairwise disjoint: a node lands in
// exactly one category, except protocol implementations which land in none.
func Classify(nodes []ModuleNode) Categories {
	var cats Categories
	for _, n := range nodes {
		switch n.Type {
		case NodeException:
			cats.Exceptions = append(cats.Exceptions, n)
		case NodeProtocol:
			cats.Protocols = append(cats.Protocols, n)
		case NodeImpl:
			// pages only, no listing
		default:
			cats.Modules = append(cats.Modules, n)
		}
	}
	return cats
}
