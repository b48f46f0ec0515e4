// Package navigation tracks which sidebar groups are expanded. Groups are
// independent; any number may be expanded at once. A route change force-
// expands the group whose path prefix covers the active route but never
// collapses groups that no longer match, so a group the user opened stays
// open while they navigate elsewhere.
package navigation

import (
	"strings"
	"sync"
)

// Group is one collapsible navigation group and the route prefix it owns.
type Group struct {
	ID         string
	PathPrefix string
}

// matches reports whether the route falls under the group's prefix. The
// prefix matches itself and any route one path segment deeper.
func (g Group) matches(route string) bool {
	if g.PathPrefix == "" {
		return false
	}
	if route == g.PathPrefix {
		return true
	}
	prefix := g.PathPrefix
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return strings.HasPrefix(route, prefix)
}

// Expansion owns the expanded/collapsed state of a set of groups.
type Expansion struct {
	mu       sync.Mutex
	groups   []Group
	expanded map[string]bool
}

// New creates the expansion state for the given groups. All groups start
// collapsed except any whose prefix covers the initial route.
func New(groups []Group, initialRoute string) *Expansion {
	e := &Expansion{
		groups:   groups,
		expanded: make(map[string]bool, len(groups)),
	}
	for _, g := range groups {
		e.expanded[g.ID] = g.matches(initialRoute)
	}
	return e
}

// Toggle flips the expanded state of one group. Unknown IDs are ignored.
func (e *Expansion) Toggle(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.expanded[id]; ok {
		e.expanded[id] = !e.expanded[id]
	}
}

// RouteChanged expands the group covering the new active route. One-way:
// groups no longer matching stay as they are.
func (e *Expansion) RouteChanged(route string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, g := range e.groups {
		if g.matches(route) {
			e.expanded[g.ID] = true
		}
	}
}

// IsExpanded reports whether the group is expanded.
func (e *Expansion) IsExpanded(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.expanded[id]
}

// Snapshot returns a copy of the current group states for rendering.
func (e *Expansion) Snapshot() map[string]bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]bool, len(e.expanded))
	for id, expanded := range e.expanded {
		out[id] = expanded
	}
	return out
}
