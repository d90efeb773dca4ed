package formatter

import (
	"strings"
	"testing"

	"github.com/oakwood-commons/zksim/internal/znode"
)

func buildTree(t *testing.T) *znode.Tree {
	t.Helper()
	tree := znode.NewTree()
	creates := []struct {
		path string
		opts znode.CreateOptions
	}{
		{"/a", znode.CreateOptions{Data: "hello", Ephemeral: true}},
		{"/a/b", znode.CreateOptions{}},
		{"/a/b/c", znode.CreateOptions{Data: "deep"}},
		{"/jobs", znode.CreateOptions{Sequential: true}},
		{"/z", znode.CreateOptions{Data: "both", Ephemeral: true, Sequential: true}},
	}
	for _, c := range creates {
		if _, err := tree.Create(c.path, c.opts); err != nil {
			t.Fatalf("Create(%q) error: %v", c.path, err)
		}
	}
	return tree
}

func TestFormatTree_Plain(t *testing.T) {
	tree := buildTree(t)

	got := FormatTree(tree.Root(), "/", TreeStylePlain)
	want := strings.Join([]string{
		"/",
		`|- a (E) "hello"`,
		"   |- b",
		`      |- c "deep"`,
		"|- jobs2 (S)",
		`|- z3 (ES) "both"`,
	}, "\n") + "\n"

	if got != want {
		t.Fatalf("plain tree mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatTree_EmptyRoot(t *testing.T) {
	got := FormatTree(znode.NewTree().Root(), "/", TreeStylePlain)
	if got != "/\n" {
		t.Fatalf("expected only root line, got %q", got)
	}
}

func TestFormatTree_Subtree(t *testing.T) {
	tree := buildTree(t)
	n, err := tree.Resolve("/a")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	got := FormatTree(n, "/a", TreeStylePlain)
	want := "/a\n|- b\n   |- c \"deep\"\n"
	if got != want {
		t.Fatalf("subtree mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestFormatTree_Box(t *testing.T) {
	tree := buildTree(t)

	got := FormatTree(tree.Root(), "/", TreeStyleBox)

	if !strings.HasPrefix(got, "/\n") {
		t.Errorf("expected box tree to start with root line, got:\n%s", got)
	}
	for _, label := range []string{`a (E) "hello"`, "b", `c "deep"`, "jobs2 (S)", `z3 (ES) "both"`} {
		if !strings.Contains(got, label) {
			t.Errorf("expected %q in output, got:\n%s", label, got)
		}
	}
	if strings.Contains(got, branchMarker) {
		t.Errorf("box style should not use plain markers, got:\n%s", got)
	}
}

func TestNodeLabel(t *testing.T) {
	tests := []struct {
		name string
		node *znode.Node
		want string
	}{
		{"bare", znode.NewNode("a", "", false, false), "a"},
		{"data only", znode.NewNode("a", "x y", false, false), `a "x y"`},
		{"ephemeral", znode.NewNode("a", "", true, false), "a (E)"},
		{"sequential", znode.NewNode("a1", "", false, true), "a1 (S)"},
		{"all", znode.NewNode("a1", "d", true, true), `a1 (ES) "d"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NodeLabel(tt.node); got != tt.want {
				t.Fatalf("NodeLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateTreeStyle(t *testing.T) {
	for _, s := range []string{"", "plain", "box"} {
		if err := ValidateTreeStyle(s); err != nil {
			t.Errorf("ValidateTreeStyle(%q) unexpected error: %v", s, err)
		}
	}
	if err := ValidateTreeStyle("fancy"); err == nil {
		t.Error("expected error for unknown style")
	}
}
