package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a(b, c(d, z)) - the reference shape used across the zipper tests too.
func sampleTree() Tree[string] {
	return New("a",
		New("b"),
		New("c", New("d"), New("z")),
	)
}

func TestNew(t *testing.T) {
	leaf := New("x")
	if !leaf.IsLeaf() {
		t.Error("New without children should build a leaf")
	}

	tr := New("root", New("one"), New("two"))
	if got := len(tr.Children); got != 2 {
		t.Fatalf("child count = %d, want 2", got)
	}
	if tr.Children[0].Value != "one" || tr.Children[1].Value != "two" {
		t.Errorf("children out of order: %v", tr.ChildValues())
	}
}

func TestChildValues(t *testing.T) {
	tests := []struct {
		name string
		tree Tree[string]
		want []string
	}{
		{"leaf", New("x"), nil},
		{"one child", New("x", New("y")), []string{"y"}},
		{"order preserved", sampleTree(), []string{"b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.tree.ChildValues()); diff != "" {
				t.Errorf("ChildValues mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIsChild(t *testing.T) {
	tr := sampleTree()

	if !tr.IsChild(New("b")) {
		t.Error("b should be a child of a")
	}
	if tr.IsChild(New("d")) {
		t.Error("grandchild d should not count as a direct child")
	}
	// Matching is by value, not structure: a "c" with entirely
	// different children still matches the existing "c" child.
	if !tr.IsChild(New("c", New("other"))) {
		t.Error("value-based matching should ignore subtree structure")
	}
}

func TestAddChild(t *testing.T) {
	t.Run("prepends new child", func(t *testing.T) {
		tr := New("hello").AddChild(New("world"))
		want := New("hello", New("world"))
		if !Equal(tr, want) {
			t.Errorf("got %v, want %v", tr, want)
		}

		tr = tr.AddChild(New("mars"))
		assert.Equal(t, []string{"mars", "world"}, tr.ChildValues(),
			"last-added child should sit at index 0")
	})

	t.Run("same value merges instead of duplicating", func(t *testing.T) {
		tr := New("hello").
			AddChild(New("world", New("europe"))).
			AddChild(New("world", New("asia")))

		require.Len(t, tr.Children, 1, "second world should merge, not duplicate")
		world := tr.Children[0]
		assert.Equal(t, "world", world.Value)
		assert.ElementsMatch(t, []string{"asia", "europe"}, world.ChildValues(),
			"merged child should hold the union of both inputs' children")
	})

	t.Run("merge replaces in place without front-insertion", func(t *testing.T) {
		tr := New("root", New("left"), New("right"))
		tr = tr.AddChild(New("right", New("grand")))

		assert.Equal(t, []string{"left", "right"}, tr.ChildValues(),
			"merged child must keep its position")
		assert.Equal(t, []string{"grand"}, tr.Children[1].ChildValues())
	})

	t.Run("merge recurses through grandchildren", func(t *testing.T) {
		tr := New("root", New("x", New("y", New("deep1"))))
		tr = tr.AddChild(New("x", New("y", New("deep2"))))

		require.Len(t, tr.Children, 1)
		y := tr.Children[0].Children[0]
		assert.Equal(t, "y", y.Value)
		assert.ElementsMatch(t, []string{"deep1", "deep2"}, y.ChildValues())
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		before := sampleTree()
		_ = before.AddChild(New("extra"))
		if !Equal(before, sampleTree()) {
			t.Error("AddChild mutated its receiver")
		}
	})
}

func TestMerge(t *testing.T) {
	t.Run("disjoint children concatenate a-first", func(t *testing.T) {
		a := New("root", New("one"), New("two"))
		b := New("root", New("three"))
		got := a.Merge(b)
		assert.Equal(t, []string{"one", "two", "three"}, got.ChildValues())
	})

	t.Run("intersecting children merge recursively", func(t *testing.T) {
		a := New("root", New("shared", New("fromA")), New("onlyA"))
		b := New("root", New("shared", New("fromB")), New("onlyB"))
		got := a.Merge(b)

		require.Equal(t, []string{"shared", "onlyA", "onlyB"}, got.ChildValues())
		shared := got.Children[0]
		assert.Equal(t, []string{"fromA", "fromB"}, shared.ChildValues())
	})

	t.Run("b-only children keep their subtree unmerged", func(t *testing.T) {
		a := New("root", New("x"))
		b := New("root", New("y", New("deep", New("deeper"))))
		got := a.Merge(b)

		require.Len(t, got.Children, 2)
		if !Equal(got.Children[1], New("y", New("deep", New("deeper")))) {
			t.Error("appended b-only child lost its subtree")
		}
	})

	t.Run("keeps the receiver's value", func(t *testing.T) {
		got := New("root", New("c")).Merge(New("root"))
		assert.Equal(t, "root", got.Value)
	})
}

func TestPopChildAt(t *testing.T) {
	tests := []struct {
		name      string
		tree      Tree[string]
		index     int
		wantChild string // "" means nil child expected
		wantRest  []string
	}{
		{"first", sampleTree(), 0, "b", []string{"c"}},
		{"second", sampleTree(), 1, "c", []string{"b"}},
		{"out of range", sampleTree(), 2, "", []string{"b", "c"}},
		{"negative", sampleTree(), -1, "", []string{"b", "c"}},
		{"leaf", New("x"), 0, "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			child, rest := tt.tree.PopChildAt(tt.index)
			if tt.wantChild == "" {
				if child != nil {
					t.Fatalf("expected nil child, got %v", child.Value)
				}
			} else {
				if child == nil || child.Value != tt.wantChild {
					t.Fatalf("popped child = %v, want %s", child, tt.wantChild)
				}
			}
			if diff := cmp.Diff(tt.wantRest, rest.ChildValues()); diff != "" {
				t.Errorf("remaining children mismatch (-want +got):\n%s", diff)
			}
			if rest.Value != tt.tree.Value {
				t.Errorf("parent value changed: %s", rest.Value)
			}
		})
	}

	t.Run("does not mutate the receiver", func(t *testing.T) {
		tr := sampleTree()
		_, _ = tr.PopChildAt(0)
		if !Equal(tr, sampleTree()) {
			t.Error("PopChildAt mutated its receiver")
		}
	})
}

func TestPopChild(t *testing.T) {
	child, rest := sampleTree().PopChild()
	require.NotNil(t, child)
	assert.Equal(t, "b", child.Value)
	assert.Equal(t, []string{"c"}, rest.ChildValues())
}

func TestPaths(t *testing.T) {
	tests := []struct {
		name string
		tree Tree[string]
		want [][]string
	}{
		{"leaf", New("x"), [][]string{{"x"}}},
		{"sample", sampleTree(), [][]string{
			{"a", "b"},
			{"a", "c", "d"},
			{"a", "c", "z"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.tree.Paths()); diff != "" {
				t.Errorf("Paths mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlatten(t *testing.T) {
	got := sampleTree().Flatten()
	want := []string{"a", "b", "c", "d", "z"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Flatten mismatch (-want +got):\n%s", diff)
	}
}

func TestSize(t *testing.T) {
	assert.Equal(t, 1, New("x").Size())
	assert.Equal(t, 5, sampleTree().Size())
}

func TestElemAt(t *testing.T) {
	tr := sampleTree()

	tests := []struct {
		name    string
		path    []int
		want    string
		wantErr bool
	}{
		{"root", nil, "a", false},
		{"first child", []int{0}, "b", false},
		{"deep", []int{1, 1}, "z", false},
		{"out of bounds", []int{5}, "", true},
		{"into leaf", []int{0, 0}, "", true},
		{"negative", []int{-1}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tr.ElemAt(tt.path...)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrBadPath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Tree[string]
		want bool
	}{
		{"identical", sampleTree(), sampleTree(), true},
		{"leaves", New("x"), New("x"), true},
		{"different value", New("x"), New("y"), false},
		{"different depth", New("x"), New("x", New("y")), false},
		{"child order matters", New("x", New("p"), New("q")), New("x", New("q"), New("p")), false},
		{"deep difference", sampleTree(), New("a", New("b"), New("c", New("d"), New("w"))), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntValues(t *testing.T) {
	// The container is generic over any comparable value type.
	tr := New(1, New(2), New(3, New(4)))
	assert.Equal(t, []int{1, 2, 3, 4}, tr.Flatten())
	v, err := tr.ElemAt(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
}
