package zipper

import "errors"

// Navigation and mutation failures. All of them are structural: they
// describe where the cursor cannot go, never a transient condition,
// so there is nothing to retry. Callers branch with errors.Is.
var (
	// ErrNoChildren is returned when descending from a focus that has
	// no children.
	ErrNoChildren = errors.New("no children")

	// ErrNoParent is returned when ascending from (or pruning) the root.
	ErrNoParent = errors.New("no parent")

	// ErrNoSiblings is returned when stepping sideways at the root,
	// which has no sibling list at all.
	ErrNoSiblings = errors.New("no siblings")

	// ErrNoNextSibling is returned when stepping right past the last
	// sibling.
	ErrNoNextSibling = errors.New("no next sibling")

	// ErrNoPrevSibling is returned when stepping left past the first
	// sibling.
	ErrNoPrevSibling = errors.New("no previous sibling")

	// ErrNoChildMatch is returned by FindChild when no direct child
	// satisfies the predicate.
	ErrNoChildMatch = errors.New("no child matches")

	// ErrRootSiblings is returned when inserting a sibling at the
	// root; siblings require a parent to hang from.
	ErrRootSiblings = errors.New("root cannot have siblings")

	// ErrBadInsertIndex is returned when a child insertion index lies
	// outside [0, len(children)].
	ErrBadInsertIndex = errors.New("bad insertion index")
)
