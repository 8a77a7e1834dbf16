package zipper

// Predicates over the current focus. All total.

// IsRoot reports whether the focus is the root of the tree under
// edit, i.e. the breadcrumb stack is empty.
func (z *Zipper[V]) IsRoot() bool {
	return len(z.crumbs) == 0
}

// HasParent reports whether the focus has an ancestor to ascend to.
func (z *Zipper[V]) HasParent() bool {
	return !z.IsRoot()
}

// IsLeaf reports whether the focus has no children.
func (z *Zipper[V]) IsLeaf() bool {
	return z.focus.IsLeaf()
}

// HasChildren reports whether the focus has at least one child.
func (z *Zipper[V]) HasChildren() bool {
	return !z.IsLeaf()
}

// IsFirst reports whether the focus is the first among its siblings.
// The root, having no sibling list, counts as first.
func (z *Zipper[V]) IsFirst() bool {
	if len(z.crumbs) == 0 {
		return true
	}
	return len(z.crumbs[len(z.crumbs)-1].left) == 0
}

// IsLast reports whether the focus is the last among its siblings.
// The root counts as last.
func (z *Zipper[V]) IsLast() bool {
	if len(z.crumbs) == 0 {
		return true
	}
	return len(z.crumbs[len(z.crumbs)-1].right) == 0
}

// IsOnlyChild reports whether the focus has no siblings on either
// side. True at the root.
func (z *Zipper[V]) IsOnlyChild() bool {
	return z.IsFirst() && z.IsLast()
}
