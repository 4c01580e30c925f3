package domain

import "strings"

// NodeCookbookPrefix marks a cookbook that holds the full configuration of one node.
const NodeCookbookPrefix = "node_"

// CookbookIdentity identifies a cookbook by name. The node flag and base name are derived
// from the name when the identity is built and cannot be set independently.
type CookbookIdentity struct {
	name     string
	baseName string
	node     bool
}

// NewCookbookIdentity builds the identity for the given cookbook name.
func NewCookbookIdentity(name string) CookbookIdentity {
	base, node := strings.CutPrefix(name, NodeCookbookPrefix)
	if !node {
		base = name
	}
	return CookbookIdentity{name: name, baseName: base, node: node}
}

// Name returns the full cookbook name.
func (c CookbookIdentity) Name() string { return c.name }

// BaseName returns the name without the node prefix for node cookbooks, otherwise the name.
func (c CookbookIdentity) BaseName() string { return c.baseName }

// IsNodeScoped reports whether the cookbook is a node cookbook.
func (c CookbookIdentity) IsNodeScoped() bool { return c.node }

// Type returns "node" or "non-node".
func (c CookbookIdentity) Type() string {
	if c.node {
		return "node"
	}
	return "non-node"
}

// String returns the cookbook name.
func (c CookbookIdentity) String() string { return c.name }

// Cookbook is a cookbook checked out on disk, read once at the start of a command.
type Cookbook struct {
	Identity CookbookIdentity
	Path     string
	Version  SemanticVersion
}

// String renders the cookbook as "name vX.Y.Z", marking development versions.
func (c Cookbook) String() string {
	s := c.Identity.Name() + " v" + c.Version.String()
	if c.Version.IsDevelopment() {
		s += " (dev)"
	}
	return s
}
