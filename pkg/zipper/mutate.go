package zipper

import (
	"fmt"

	"treezip/pkg/tree"
)

// Modify replaces the focus's value with f(value), children
// unchanged. Total.
func (z *Zipper[V]) Modify(f func(V) V) *Zipper[V] {
	focus := z.focus
	focus.Value = f(focus.Value)
	crumbs := make([]crumb[V], len(z.crumbs))
	copy(crumbs, z.crumbs)
	return &Zipper[V]{focus: focus, crumbs: crumbs}
}

// Replace swaps the entire focused subtree for t, keeping the
// ancestry. Total.
func (z *Zipper[V]) Replace(t tree.Tree[V]) *Zipper[V] {
	crumbs := make([]crumb[V], len(z.crumbs))
	copy(crumbs, z.crumbs)
	return &Zipper[V]{focus: t, crumbs: crumbs}
}

// Prune discards the focused subtree and moves the focus up to the
// parent, whose child list becomes reverse(left) ++ right with the
// pruned node spliced out. The root has no parent to splice into, so
// pruning it fails with ErrNoParent.
func (z *Zipper[V]) Prune() (*Zipper[V], error) {
	if len(z.crumbs) == 0 {
		return nil, fmt.Errorf("prune root: %w", ErrNoParent)
	}
	cr := z.crumbs[len(z.crumbs)-1]
	kids := make([]tree.Tree[V], 0, len(cr.left)+len(cr.right))
	for i := len(cr.left) - 1; i >= 0; i-- {
		kids = append(kids, cr.left[i])
	}
	kids = append(kids, cr.right...)
	parent := tree.Tree[V]{Value: cr.parent, Children: kids}
	return &Zipper[V]{focus: parent, crumbs: z.popped()}, nil
}

// InsertLeft inserts t as the focus's immediate left sibling and
// moves the focus onto it. Fails with ErrRootSiblings at the root.
func (z *Zipper[V]) InsertLeft(t tree.Tree[V]) (*Zipper[V], error) {
	if len(z.crumbs) == 0 {
		return nil, ErrRootSiblings
	}
	cr := z.crumbs[len(z.crumbs)-1]
	grown := crumb[V]{
		parent: cr.parent,
		left:   prepend(t, cr.left),
		right:  cr.right,
	}
	widened := &Zipper[V]{focus: z.focus, crumbs: z.replacedTop(grown)}
	return widened.PrevSibling()
}

// InsertRight inserts t as the focus's immediate right sibling and
// moves the focus onto it. Fails with ErrRootSiblings at the root.
func (z *Zipper[V]) InsertRight(t tree.Tree[V]) (*Zipper[V], error) {
	if len(z.crumbs) == 0 {
		return nil, ErrRootSiblings
	}
	cr := z.crumbs[len(z.crumbs)-1]
	grown := crumb[V]{
		parent: cr.parent,
		left:   cr.left,
		right:  prepend(t, cr.right),
	}
	widened := &Zipper[V]{focus: z.focus, crumbs: z.replacedTop(grown)}
	return widened.NextSibling()
}

// InsertFirstChild prepends t to the focus's children and descends to
// it. Always succeeds: any node can gain a child.
func (z *Zipper[V]) InsertFirstChild(t tree.Tree[V]) *Zipper[V] {
	focus := z.focus
	focus.Children = prepend(t, z.focus.Children)
	grown := &Zipper[V]{focus: focus, crumbs: z.crumbs}
	// The child list is non-empty by construction.
	down, _ := grown.FirstChild()
	return down
}

// InsertLastChild appends t to the focus's children and descends to
// it. Always succeeds.
func (z *Zipper[V]) InsertLastChild(t tree.Tree[V]) *Zipper[V] {
	focus := z.focus
	kids := make([]tree.Tree[V], 0, len(z.focus.Children)+1)
	kids = append(kids, z.focus.Children...)
	kids = append(kids, t)
	focus.Children = kids
	grown := &Zipper[V]{focus: focus, crumbs: z.crumbs}
	down, _ := grown.LastChild()
	return down
}

// InsertNthChild inserts t at position index among the focus's
// children and descends to it. index may equal the current child
// count (append); anything past that, or negative, fails with
// ErrBadInsertIndex.
func (z *Zipper[V]) InsertNthChild(index int, t tree.Tree[V]) (*Zipper[V], error) {
	n := len(z.focus.Children)
	if index < 0 || index > n {
		return nil, fmt.Errorf("insert at %d with %d children: %w", index, n, ErrBadInsertIndex)
	}
	kids := make([]tree.Tree[V], 0, n+1)
	kids = append(kids, z.focus.Children[:index]...)
	kids = append(kids, t)
	kids = append(kids, z.focus.Children[index:]...)
	focus := z.focus
	focus.Children = kids
	grown := &Zipper[V]{focus: focus, crumbs: z.crumbs}
	return grown.NthChild(index)
}
