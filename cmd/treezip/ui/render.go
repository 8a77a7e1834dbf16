package ui

import (
	"strings"

	"treezip/pkg/tree"
)

// RenderTree renders a tree as an indented branch diagram, children
// in order, one node per line.
func RenderTree(t tree.Tree[string], styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.Branch.Render(t.Value))
	b.WriteString("\n")
	renderChildren(&b, t, "", styles)
	return b.String()
}

func renderChildren(b *strings.Builder, t tree.Tree[string], prefix string, styles Styles) {
	for i, c := range t.Children {
		last := i == len(t.Children)-1
		connector, childPrefix := "├── ", prefix+"│   "
		if last {
			connector, childPrefix = "└── ", prefix+"    "
		}
		b.WriteString(styles.Muted.Render(prefix + connector))
		b.WriteString(c.Value)
		b.WriteString("\n")
		renderChildren(b, c, childPrefix, styles)
	}
}
