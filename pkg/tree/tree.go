// Package tree implements a generic rose tree: a node value plus an
// ordered list of child trees. Trees are immutable values - every
// operation returns a new tree and shares the untouched subtrees with
// its input, so snapshots held elsewhere never observe partial updates.
//
// Children are ordered. All indexing, reconstruction, and zipper
// operations built on top of this package are position-sensitive.
package tree

import (
	"fmt"
)

// Tree is a rose tree node parameterized over a comparable value type.
// The zero value is a leaf carrying V's zero value.
type Tree[V comparable] struct {
	Value    V
	Children []Tree[V]
}

// New builds a tree from a value and zero or more child trees.
// Children keep the order they are given in.
func New[V comparable](value V, children ...Tree[V]) Tree[V] {
	if len(children) == 0 {
		return Tree[V]{Value: value}
	}
	kids := make([]Tree[V], len(children))
	copy(kids, children)
	return Tree[V]{Value: value, Children: kids}
}

// IsLeaf reports whether the tree has no children.
func (t Tree[V]) IsLeaf() bool {
	return len(t.Children) == 0
}

// ChildValues returns the values of the direct children, order preserved.
func (t Tree[V]) ChildValues() []V {
	if len(t.Children) == 0 {
		return nil
	}
	vals := make([]V, len(t.Children))
	for i, c := range t.Children {
		vals[i] = c.Value
	}
	return vals
}

// IsChild reports whether candidate's value equals the value of some
// direct child. Matching is by value only, not by subtree structure:
// two structurally different subtrees with the same root value count
// as the same child. AddChild and Merge rely on the same rule.
func (t Tree[V]) IsChild(candidate Tree[V]) bool {
	for _, c := range t.Children {
		if c.Value == candidate.Value {
			return true
		}
	}
	return false
}

// childByValue returns the index of the first direct child carrying
// value, or -1 if no child matches.
func (t Tree[V]) childByValue(value V) int {
	for i, c := range t.Children {
		if c.Value == value {
			return i
		}
	}
	return -1
}

// AddChild inserts child into the tree's child list.
//
// If no direct child shares child's value, child is prepended to the
// front of the list: the last-added child sits at index 0, matching
// the index-0-first semantics of zipper descent.
//
// If a direct child with the same value already exists, the two are
// merged instead: every grandchild of child is folded into the
// existing child by the same AddChild rule, and the result replaces
// the existing child in place. No front-insertion happens on the
// parent in that case.
func (t Tree[V]) AddChild(child Tree[V]) Tree[V] {
	if i := t.childByValue(child.Value); i >= 0 {
		merged := t.Children[i]
		for _, grandchild := range child.Children {
			merged = merged.AddChild(grandchild)
		}
		kids := make([]Tree[V], len(t.Children))
		copy(kids, t.Children)
		kids[i] = merged
		return Tree[V]{Value: t.Value, Children: kids}
	}
	kids := make([]Tree[V], 0, len(t.Children)+1)
	kids = append(kids, child)
	kids = append(kids, t.Children...)
	return Tree[V]{Value: t.Value, Children: kids}
}

// Merge combines two trees whose roots carry the same value. The
// receiver's value is kept; callers are responsible for only merging
// same-valued nodes.
//
// Children of the receiver whose value also appears among other's
// children are merged recursively. Children of other whose value does
// not appear among the receiver's children are appended afterward,
// each keeping its own subtree unmerged. The receiver's child order
// is preserved, other's extras follow in their own order.
func (t Tree[V]) Merge(other Tree[V]) Tree[V] {
	kids := make([]Tree[V], 0, len(t.Children)+len(other.Children))
	for _, c := range t.Children {
		if j := other.childByValue(c.Value); j >= 0 {
			kids = append(kids, c.Merge(other.Children[j]))
		} else {
			kids = append(kids, c)
		}
	}
	for _, c := range other.Children {
		if t.childByValue(c.Value) < 0 {
			kids = append(kids, c)
		}
	}
	return Tree[V]{Value: t.Value, Children: kids}
}

// PopChildAt removes and returns the child at index along with the
// updated parent. Out-of-range indices (including any index on a
// leaf) are a no-op: the returned child is nil and the tree comes
// back unchanged. The totality is deliberate - it keeps the zipper's
// descent primitive branch-free and pushes range checking up to the
// fallible navigation wrappers.
func (t Tree[V]) PopChildAt(index int) (*Tree[V], Tree[V]) {
	if index < 0 || index >= len(t.Children) {
		return nil, t
	}
	child := t.Children[index]
	kids := make([]Tree[V], 0, len(t.Children)-1)
	kids = append(kids, t.Children[:index]...)
	kids = append(kids, t.Children[index+1:]...)
	return &child, Tree[V]{Value: t.Value, Children: kids}
}

// PopChild removes and returns the first child. Equivalent to
// PopChildAt(0).
func (t Tree[V]) PopChild() (*Tree[V], Tree[V]) {
	return t.PopChildAt(0)
}

// Paths returns every root-to-leaf value path, in child order. A leaf
// yields a single one-element path.
func (t Tree[V]) Paths() [][]V {
	if len(t.Children) == 0 {
		return [][]V{{t.Value}}
	}
	var out [][]V
	for _, c := range t.Children {
		for _, p := range c.Paths() {
			path := make([]V, 0, len(p)+1)
			path = append(path, t.Value)
			path = append(path, p...)
			out = append(out, path)
		}
	}
	return out
}

// Flatten returns all values in pre-order: the node's own value
// first, then each child subtree in order.
func (t Tree[V]) Flatten() []V {
	out := make([]V, 0, 1+len(t.Children))
	out = append(out, t.Value)
	for _, c := range t.Children {
		out = append(out, c.Flatten()...)
	}
	return out
}

// Size returns the total number of nodes in the tree.
func (t Tree[V]) Size() int {
	n := 1
	for _, c := range t.Children {
		n += c.Size()
	}
	return n
}

// ElemAt walks the index path from the root and returns the value of
// the node it lands on. An empty path addresses the root itself. Any
// out-of-bounds step fails with ErrBadPath.
func (t Tree[V]) ElemAt(path ...int) (V, error) {
	cur := t
	for depth, idx := range path {
		if idx < 0 || idx >= len(cur.Children) {
			var zero V
			return zero, fmt.Errorf("index %d at depth %d (node has %d children): %w",
				idx, depth, len(cur.Children), ErrBadPath)
		}
		cur = cur.Children[idx]
	}
	return cur.Value, nil
}

// Equal reports pointwise structural equality: same value, same
// children in the same order, recursively.
func Equal[V comparable](a, b Tree[V]) bool {
	if a.Value != b.Value || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
