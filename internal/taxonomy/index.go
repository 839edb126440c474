// Package taxonomy provides the hierarchical category classification index
// used for listing categorization and category suggestions.
package taxonomy

import (
	"sync"
)

// Node is a single category in the classification tree. Codes are unique
// across the whole tree; a node without children is a leaf category usable
// for listings.
type Node struct {
	Code     string `json:"code"`
	Label    string `json:"label"`
	Children []Node `json:"children,omitempty"`
}

// Entry is a flattened category with its full ancestor path as label.
type Entry struct {
	Code  string
	Label string
}

// Index is a read-mostly classification tree. The tree is loaded once per
// session and replaced atomically on admin edits; lookups never mutate it.
type Index struct {
	roots   []Node
	version uint64
	mu      sync.RWMutex
}

// NewIndex creates an index over the given root nodes. A nil or empty tree
// is valid and degrades to empty lookups.
func NewIndex(roots []Node) *Index {
	return &Index{roots: roots, version: 1}
}

// Replace swaps in a new tree atomically and bumps the version.
func (ix *Index) Replace(roots []Node) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.roots = roots
	ix.version++
}

// Version returns the current tree version. The version changes whenever
// the tree is replaced, so callers can detect stale snapshots.
func (ix *Index) Version() uint64 {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.version
}

// Roots returns the current root nodes.
func (ix *Index) Roots() []Node {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.roots
}

// Flatten returns all categories depth-first, parent before children,
// children in declaration order. Each entry's label is the concatenation of
// ancestor labels joined by " > ".
func (ix *Index) Flatten() []Entry {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var out []Entry
	var walk func(nodes []Node, prefix string)
	walk = func(nodes []Node, prefix string) {
		for _, n := range nodes {
			label := n.Label
			if prefix != "" {
				label = prefix + " > " + n.Label
			}
			out = append(out, Entry{Code: n.Code, Label: label})
			if len(n.Children) > 0 {
				walk(n.Children, label)
			}
		}
	}
	walk(ix.roots, "")
	return out
}

// LabelOf returns the label of the first node matching code, searching
// depth-first. Unknown codes are returned unchanged so display code never
// has to handle a miss.
func (ix *Index) LabelOf(code string) string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if n := findNode(ix.roots, code); n != nil {
		return n.Label
	}
	return code
}

// PathLabel returns the full ancestor path label for code, joined by " > ".
// Unknown codes are returned unchanged.
func (ix *Index) PathLabel(code string) string {
	for _, e := range ix.Flatten() {
		if e.Code == code {
			return e.Label
		}
	}
	return code
}

// ParentOf returns the code of the top-level ancestor whose subtree
// contains childCode. The second return is false when no ancestor exists,
// including when childCode is itself a root.
func (ix *Index) ParentOf(childCode string) (string, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	for _, root := range ix.roots {
		if root.Code == childCode {
			continue
		}
		if findNode(root.Children, childCode) != nil {
			return root.Code, true
		}
	}
	return "", false
}

// Contains reports whether code exists anywhere in the tree.
func (ix *Index) Contains(code string) bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return findNode(ix.roots, code) != nil
}

func findNode(nodes []Node, code string) *Node {
	for i := range nodes {
		if nodes[i].Code == code {
			return &nodes[i]
		}
		if n := findNode(nodes[i].Children, code); n != nil {
			return n
		}
	}
	return nil
}
