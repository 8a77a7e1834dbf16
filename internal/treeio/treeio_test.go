package treeio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treezip/pkg/tree"
)

func TestFromMap(t *testing.T) {
	t.Run("single-key leaf", func(t *testing.T) {
		got, err := FromMap(map[string]any{"root": nil})
		require.NoError(t, err)
		assert.True(t, tree.Equal(got, tree.New("root")))
	})

	t.Run("nested maps become children sorted by value", func(t *testing.T) {
		got, err := FromMap(map[string]any{
			"root": map[string]any{
				"b": nil,
				"a": map[string]any{"deep": nil},
			},
		})
		require.NoError(t, err)
		want := tree.New("root",
			tree.New("a", tree.New("deep")),
			tree.New("b"),
		)
		assert.True(t, tree.Equal(got, want))
	})

	t.Run("scalar value becomes a leaf child", func(t *testing.T) {
		got, err := FromMap(map[string]any{"port": 8080})
		require.NoError(t, err)
		assert.True(t, tree.Equal(got, tree.New("port", tree.New("8080"))))
	})

	t.Run("list values mix scalars and subtrees", func(t *testing.T) {
		got, err := FromMap(map[string]any{
			"hosts": []any{
				"alpha",
				map[string]any{"beta": map[string]any{"gpu": nil}},
			},
		})
		require.NoError(t, err)
		want := tree.New("hosts",
			tree.New("alpha"),
			tree.New("beta", tree.New("gpu")),
		)
		assert.True(t, tree.Equal(got, want))
	})

	t.Run("zero root keys", func(t *testing.T) {
		_, err := FromMap(map[string]any{})
		assert.ErrorIs(t, err, ErrOneNodeRoot)
	})

	t.Run("two root keys", func(t *testing.T) {
		_, err := FromMap(map[string]any{"a": nil, "b": nil})
		assert.ErrorIs(t, err, ErrOneNodeRoot)
	})

	t.Run("unsupported value type", func(t *testing.T) {
		_, err := FromMap(map[string]any{"root": struct{}{}})
		assert.ErrorIs(t, err, ErrBadChildren)
	})

	t.Run("multi-key list item", func(t *testing.T) {
		_, err := FromMap(map[string]any{
			"root": []any{map[string]any{"a": nil, "b": nil}},
		})
		assert.ErrorIs(t, err, ErrOneNodeRoot)
	})
}

func TestToMap(t *testing.T) {
	tr := tree.New("root",
		tree.New("a", tree.New("deep")),
		tree.New("b"),
	)
	m := ToMap(tr)
	want := map[string]any{
		"root": map[string]any{
			"a": map[string]any{"deep": nil},
			"b": nil,
		},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("ToMap mismatch (-want +got):\n%s", diff)
	}

	// Round trip: the sorted-children tree survives FromMap(ToMap(t)).
	back, err := FromMap(m)
	require.NoError(t, err)
	assert.True(t, tree.Equal(back, tr))
}

func TestMarshal(t *testing.T) {
	t.Run("round trip preserves child order", func(t *testing.T) {
		// ToMap would re-sort these alphabetically; the write-back
		// serializer must not.
		tr := tree.New("cluster",
			tree.New("zulu"),
			tree.New("alpha", tree.New("node2"), tree.New("node1")),
			tree.New("mike"),
		)
		out, err := Marshal(tr)
		require.NoError(t, err)

		back, err := Parse(out)
		require.NoError(t, err)
		assert.True(t, tree.Equal(back, tr),
			"got %v, want %v", back, tr)
	})

	t.Run("round trip preserves duplicate-valued siblings", func(t *testing.T) {
		// Two same-valued siblings are legal in a tree even though a
		// map cannot hold them; neither subtree may be dropped.
		tr := tree.New("root",
			tree.New("x", tree.New("a")),
			tree.New("x", tree.New("b")),
		)
		out, err := Marshal(tr)
		require.NoError(t, err)

		back, err := Parse(out)
		require.NoError(t, err)
		assert.True(t, tree.Equal(back, tr),
			"got %v, want %v", back, tr)
	})

	t.Run("leaves serialize as null values", func(t *testing.T) {
		out, err := Marshal(tree.New("root", tree.New("kid")))
		require.NoError(t, err)

		back, err := Parse(out)
		require.NoError(t, err)
		assert.True(t, tree.Equal(back, tree.New("root", tree.New("kid"))))
	})
}

func TestToYAMLNode(t *testing.T) {
	node := ToYAMLNode(tree.New("root", tree.New("b"), tree.New("a")))
	require.Equal(t, 2, len(node.Content))
	assert.Equal(t, "root", node.Content[0].Value)

	kids := node.Content[1]
	require.Equal(t, 4, len(kids.Content), "two key/value pairs")
	assert.Equal(t, "b", kids.Content[0].Value, "document order, not sorted")
	assert.Equal(t, "a", kids.Content[2].Value)
}

func TestParse(t *testing.T) {
	t.Run("document order is preserved", func(t *testing.T) {
		// Deliberately not alphabetical; the YAML AST keeps the order
		// a plain map would lose.
		doc := []byte(`
cluster:
  zulu:
  alpha:
    node2:
    node1:
  mike:
`)
		got, err := Parse(doc)
		require.NoError(t, err)
		want := tree.New("cluster",
			tree.New("zulu"),
			tree.New("alpha", tree.New("node2"), tree.New("node1")),
			tree.New("mike"),
		)
		assert.True(t, tree.Equal(got, want),
			"got %v, want %v", got, want)
	})

	t.Run("scalars and sequences", func(t *testing.T) {
		doc := []byte(`
service:
  port: 8080
  hosts:
    - alpha
    - beta
`)
		got, err := Parse(doc)
		require.NoError(t, err)
		want := tree.New("service",
			tree.New("port", tree.New("8080")),
			tree.New("hosts", tree.New("alpha"), tree.New("beta")),
		)
		assert.True(t, tree.Equal(got, want))
	})

	t.Run("multi-key root", func(t *testing.T) {
		_, err := Parse([]byte("a:\nb:\n"))
		assert.ErrorIs(t, err, ErrOneNodeRoot)
	})

	t.Run("scalar root", func(t *testing.T) {
		_, err := Parse([]byte("just a string"))
		assert.ErrorIs(t, err, ErrOneNodeRoot)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := Parse(nil)
		assert.ErrorIs(t, err, ErrOneNodeRoot)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Parse([]byte(":\n\t- ["))
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("root:\n  kid:\n"), 0644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.True(t, tree.Equal(got, tree.New("root", tree.New("kid"))))

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
