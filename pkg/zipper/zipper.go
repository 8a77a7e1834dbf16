// Package zipper implements a cursor over a rose tree. A Zipper pairs
// a focused subtree with a stack of breadcrumbs recording everything
// needed to rebuild the ancestors, so a caller can navigate to any
// node, edit it, and reconstruct the whole tree from the point of
// focus without re-traversing from the root.
//
// Zippers are immutable values: every operation returns a new Zipper
// and leaves its input intact, so a caller can hold onto intermediate
// positions and resume from any of them. Fallible steps return
// (*Zipper, error) and are chained with Lift, which short-circuits on
// the first failure.
package zipper

import (
	"fmt"

	"treezip/pkg/tree"
)

// crumb is one stack frame recorded when descending from a node into
// one of its children. Siblings are split around the descended-into
// child: left holds the siblings before it in reverse order (nearest
// first), right holds the siblings after it in original order. The
// split form is what makes sibling-to-sibling movement O(1); the
// parent's child list is recovered as reverse(left) ++ [focus] ++ right.
type crumb[V comparable] struct {
	parent V
	left   []tree.Tree[V]
	right  []tree.Tree[V]
}

// Zipper is a cursor over a tree.Tree. The breadcrumb stack grows
// toward the focus: the innermost (nearest ancestor) crumb is last.
// An empty stack means the focus is the root of the tree under edit.
type Zipper[V comparable] struct {
	focus  tree.Tree[V]
	crumbs []crumb[V]
}

// FromTree creates a zipper focused on the root of t.
func FromTree[V comparable](t tree.Tree[V]) *Zipper[V] {
	return &Zipper[V]{focus: t}
}

// Tree projects the focused subtree, discarding ancestry. Lossy by
// design; use Root first to recover the whole tree.
func (z *Zipper[V]) Tree() tree.Tree[V] {
	return z.focus
}

// Depth returns the number of ancestors above the focus.
func (z *Zipper[V]) Depth() int {
	return len(z.crumbs)
}

// Ancestors returns the values of the focus's ancestors, root first.
func (z *Zipper[V]) Ancestors() []V {
	if len(z.crumbs) == 0 {
		return nil
	}
	vals := make([]V, len(z.crumbs))
	for i, cr := range z.crumbs {
		vals[i] = cr.parent
	}
	return vals
}

// pushed returns z's crumb stack with cr appended, as a fresh slice.
func (z *Zipper[V]) pushed(cr crumb[V]) []crumb[V] {
	out := make([]crumb[V], 0, len(z.crumbs)+1)
	out = append(out, z.crumbs...)
	out = append(out, cr)
	return out
}

// replacedTop returns z's crumb stack with the top frame swapped for
// cr, as a fresh slice.
func (z *Zipper[V]) replacedTop(cr crumb[V]) []crumb[V] {
	out := make([]crumb[V], len(z.crumbs))
	copy(out, z.crumbs)
	out[len(out)-1] = cr
	return out
}

// popped returns z's crumb stack without its top frame, as a fresh
// slice.
func (z *Zipper[V]) popped() []crumb[V] {
	out := make([]crumb[V], len(z.crumbs)-1)
	copy(out, z.crumbs[:len(z.crumbs)-1])
	return out
}

// NthChild descends into the child at index. Index 0 descends
// directly, pushing a crumb with the remaining children as right
// siblings; larger indices descend into child 0 and then walk right
// index times, so the cost is O(index) and walking past the last
// sibling surfaces as ErrNoNextSibling rather than ErrNoChildren.
// A focus without children fails with ErrNoChildren; a negative index
// is a degenerate request and fails with tree.ErrBadPath.
func (z *Zipper[V]) NthChild(index int) (*Zipper[V], error) {
	if index < 0 {
		return nil, fmt.Errorf("child index %d: %w", index, tree.ErrBadPath)
	}
	if z.focus.IsLeaf() {
		return nil, ErrNoChildren
	}
	if index == 0 {
		child, rest := z.focus.PopChild()
		cr := crumb[V]{parent: z.focus.Value, right: rest.Children}
		return &Zipper[V]{focus: *child, crumbs: z.pushed(cr)}, nil
	}
	prev, err := z.NthChild(index - 1)
	if err != nil {
		return nil, err
	}
	return prev.NextSibling()
}

// FirstChild descends into child 0. A childless focus fails with
// tree.ErrBadPath: asking a leaf for its first child is a degenerate
// request, not merely an out-of-range index.
func (z *Zipper[V]) FirstChild() (*Zipper[V], error) {
	if z.focus.IsLeaf() {
		return nil, fmt.Errorf("first child of leaf: %w", tree.ErrBadPath)
	}
	return z.NthChild(0)
}

// LastChild descends into the last child. A childless focus fails
// with tree.ErrBadPath, like FirstChild.
func (z *Zipper[V]) LastChild() (*Zipper[V], error) {
	n := len(z.focus.Children)
	if n == 0 {
		return nil, fmt.Errorf("last child of leaf: %w", tree.ErrBadPath)
	}
	return z.NthChild(n - 1)
}

// Ascend moves the focus to its parent, reassembling the parent's
// child list as reverse(left) ++ [focus] ++ right from the top crumb.
// Fails with ErrNoParent at the root.
func (z *Zipper[V]) Ascend() (*Zipper[V], error) {
	if len(z.crumbs) == 0 {
		return nil, ErrNoParent
	}
	cr := z.crumbs[len(z.crumbs)-1]
	kids := make([]tree.Tree[V], 0, len(cr.left)+1+len(cr.right))
	for i := len(cr.left) - 1; i >= 0; i-- {
		kids = append(kids, cr.left[i])
	}
	kids = append(kids, z.focus)
	kids = append(kids, cr.right...)
	parent := tree.Tree[V]{Value: cr.parent, Children: kids}
	return &Zipper[V]{focus: parent, crumbs: z.popped()}, nil
}

// Root ascends until the breadcrumb stack is empty. A zipper already
// at the root comes back unchanged. Iterative, so arbitrarily deep
// trees do not grow the call stack.
func (z *Zipper[V]) Root() *Zipper[V] {
	cur := z
	for len(cur.crumbs) > 0 {
		up, err := cur.Ascend()
		if err != nil {
			return cur
		}
		cur = up
	}
	return cur
}

// NextSibling moves the focus one step right among its siblings,
// staying at the same depth. Fails with ErrNoSiblings at the root and
// with ErrNoNextSibling when the focus is already the last sibling.
func (z *Zipper[V]) NextSibling() (*Zipper[V], error) {
	if len(z.crumbs) == 0 {
		return nil, ErrNoSiblings
	}
	cr := z.crumbs[len(z.crumbs)-1]
	if len(cr.right) == 0 {
		return nil, ErrNoNextSibling
	}
	next := cr.right[0]
	moved := crumb[V]{
		parent: cr.parent,
		left:   prepend(z.focus, cr.left),
		right:  cr.right[1:],
	}
	return &Zipper[V]{focus: next, crumbs: z.replacedTop(moved)}, nil
}

// PrevSibling moves the focus one step left among its siblings,
// staying at the same depth. Fails with ErrNoSiblings at the root and
// with ErrNoPrevSibling when the focus is already the first sibling.
func (z *Zipper[V]) PrevSibling() (*Zipper[V], error) {
	if len(z.crumbs) == 0 {
		return nil, ErrNoSiblings
	}
	cr := z.crumbs[len(z.crumbs)-1]
	if len(cr.left) == 0 {
		return nil, ErrNoPrevSibling
	}
	prev := cr.left[0]
	moved := crumb[V]{
		parent: cr.parent,
		left:   cr.left[1:],
		right:  prepend(z.focus, cr.right),
	}
	return &Zipper[V]{focus: prev, crumbs: z.replacedTop(moved)}, nil
}

// FindChild descends into the first direct child satisfying pred,
// scanning left to right. Fails with ErrNoChildMatch if no child
// matches.
func (z *Zipper[V]) FindChild(pred func(tree.Tree[V]) bool) (*Zipper[V], error) {
	for i, c := range z.focus.Children {
		if pred(c) {
			return z.NthChild(i)
		}
	}
	return nil, ErrNoChildMatch
}

// ToLeaf descends into the first child repeatedly until the focus is
// a leaf. Total: on a leaf it returns the zipper unchanged, and every
// finite tree bottoms out.
func (z *Zipper[V]) ToLeaf() *Zipper[V] {
	cur := z
	for !cur.focus.IsLeaf() {
		next, err := cur.FirstChild()
		if err != nil {
			return cur
		}
		cur = next
	}
	return cur
}

// prepend returns a fresh slice [head, rest...]. The rest slice is
// never aliased for writing, only read, so sharing its backing array
// with other zipper snapshots is safe.
func prepend[V comparable](head tree.Tree[V], rest []tree.Tree[V]) []tree.Tree[V] {
	out := make([]tree.Tree[V], 0, len(rest)+1)
	out = append(out, head)
	out = append(out, rest...)
	return out
}

// Lift threads a fallible navigation result into the next fallible
// step: a failure is returned untouched and f is never invoked, a
// success is handed to f. It is the sole sanctioned way to chain
// navigation without branching at every step:
//
//	z, err := zipper.Lift(zip.NthChild(1))(func(z *zipper.Zipper[string]) (*zipper.Zipper[string], error) {
//		return z.NthChild(0)
//	})
func Lift[V comparable](z *Zipper[V], err error) func(func(*Zipper[V]) (*Zipper[V], error)) (*Zipper[V], error) {
	return func(f func(*Zipper[V]) (*Zipper[V], error)) (*Zipper[V], error) {
		if err != nil {
			return nil, err
		}
		return f(z)
	}
}
