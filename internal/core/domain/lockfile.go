package domain

// LockedGraph is a resolved dependency graph with every cookbook pinned to one version.
type LockedGraph struct {
	// Path is the lockfile the graph was read from.
	Path string

	// Locks maps cookbook names to their locked versions.
	Locks map[string]SemanticVersion
}

// Constraints renders the locks as exact environment constraints ("= 1.2.3").
func (g *LockedGraph) Constraints() map[string]string {
	out := make(map[string]string, len(g.Locks))
	for name, v := range g.Locks {
		out[name] = "= " + v.String()
	}
	return out
}

// CookbookStatus is what the Chef server knows about one cookbook version.
type CookbookStatus struct {
	Exists bool
	Frozen bool
}
