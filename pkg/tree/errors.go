package tree

import "errors"

// ErrBadPath reports an index path step that falls outside a node's
// child list.
var ErrBadPath = errors.New("bad path")
