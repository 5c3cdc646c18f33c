package main

import (
	"errors"
	"fmt"
	"os"

	docsite "github.com/alnah/go-docsite"
	"github.com/alnah/go-docsite/internal/yamlutil"
)

// Sentinel errors for descriptor loading.
var (
	ErrReadDescriptors  = errors.New("failed to read descriptor file")
	ErrParseDescriptors = errors.New("failed to parse descriptor file")
	ErrBadNodeType      = errors.New("unknown node type")
	ErrMissingNodeID    = errors.New("descriptor entry missing id")
)

// descriptorFile is the on-disk shape of the external parser's output.
type descriptorFile struct {
	Nodes []docsite.ModuleNode `yaml:"nodes"`
}

// knownNodeTypes guards against typos in hand-edited descriptor files.
var knownNodeTypes = map[docsite.NodeType]bool{
	docsite.NodeModule:    true,
	docsite.NodeException: true,
	docsite.NodeProtocol:  true,
	docsite.NodeImpl:      true,
}

// loadDescriptors reads and validates a YAML descriptor file.
// Unknown YAML fields are rejected so schema drift fails loudly.
func loadDescriptors(path string) ([]docsite.ModuleNode, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- descriptor path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadDescriptors, err)
	}

	var file descriptorFile
	if err := yamlutil.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseDescriptors, err)
	}

	for i, n := range file.Nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrMissingNodeID, i)
		}
		if n.Type != "" && !knownNodeTypes[n.Type] {
			return nil, fmt.Errorf("%w: %q (node %s)", ErrBadNodeType, n.Type, n.ID)
		}
	}

	return file.Nodes, nil
}
