package formatter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/zksim/internal/znode"
)

func TestExport_YAMLKeepsChildOrder(t *testing.T) {
	tree := buildTree(t)

	out, err := Export(tree.Root(), "/", ExportYAML, MermaidOptions{})
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}

	var got Snapshot
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("yaml decode error: %v\n%s", err, out)
	}
	if got.Name != "/" {
		t.Errorf("root name = %q", got.Name)
	}
	var names []string
	for _, c := range got.Children {
		names = append(names, c.Name)
	}
	if strings.Join(names, ",") != "a,jobs2,z3" {
		t.Errorf("children = %v", names)
	}
	if !got.Children[0].Ephemeral || got.Children[0].Data != "hello" {
		t.Errorf("unexpected first child: %+v", got.Children[0])
	}
	if got.Children[0].Children[0].Children[0].Data != "deep" {
		t.Errorf("nested data lost: %+v", got.Children[0])
	}
}

func TestExport_JSON(t *testing.T) {
	tree := buildTree(t)
	n, err := tree.Resolve("/a")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	out, err := Export(n, "/a", ExportJSON, MermaidOptions{})
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	var got map[string]interface{}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("json decode error: %v", err)
	}
	if got["name"] != "a" || got["data"] != "hello" || got["ephemeral"] != true {
		t.Errorf("unexpected json: %s", out)
	}
	if _, ok := got["sequential"]; ok {
		t.Errorf("false flags should be omitted: %s", out)
	}
}

func TestExport_TOML(t *testing.T) {
	tree := buildTree(t)

	out, err := Export(tree.Root(), "/", ExportTOML, MermaidOptions{})
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	var got Snapshot
	if err := toml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("toml decode error: %v\n%s", err, out)
	}
	if len(got.Children) != 3 || got.Children[2].Name != "z3" {
		t.Errorf("unexpected toml round trip: %+v", got)
	}
}

func TestExport_Mermaid(t *testing.T) {
	tree := buildTree(t)

	out, err := Export(tree.Root(), "/", ExportMermaid, MermaidOptions{})
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	if !strings.HasPrefix(out, "graph TD\n") {
		t.Errorf("expected graph header, got:\n%s", out)
	}
	if !strings.Contains(out, `n0["/"]`) {
		t.Errorf("expected root node, got:\n%s", out)
	}
	if !strings.Contains(out, `n1["a (E) 'hello'"]`) {
		t.Errorf("expected escaped label, got:\n%s", out)
	}
	if !strings.Contains(out, "n0 --> n1") || !strings.Contains(out, "n1 --> n2") {
		t.Errorf("expected edges, got:\n%s", out)
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	tree := buildTree(t)
	if _, err := Export(tree.Root(), "/", ExportFormat("xml"), MermaidOptions{}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestExport_MermaidOptions(t *testing.T) {
	tree := buildTree(t)

	out, err := Export(tree.Root(), "/", ExportMermaid, MermaidOptions{Direction: "LR", NoValues: true})
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	if !strings.HasPrefix(out, "graph LR\n") {
		t.Errorf("expected LR header, got:\n%s", out)
	}
	if !strings.Contains(out, `n1["a"]`) || strings.Contains(out, "hello") {
		t.Errorf("expected names only, got:\n%s", out)
	}
}

func TestFormatAsMermaid_KeepsBackslashes(t *testing.T) {
	tree := znode.NewTree()
	if _, err := tree.Create("/b", znode.CreateOptions{Data: `x\y "q"`}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	out := FormatAsMermaid(tree.Root(), "/", MermaidOptions{})
	if !strings.Contains(out, `n1["b 'x\y 'q''"]`) {
		t.Errorf("expected label without Go escaping, got:\n%s", out)
	}
}

func TestValidateMermaidDirection(t *testing.T) {
	for _, d := range []string{"", "TD", "LR", "BT", "RL"} {
		if err := ValidateMermaidDirection(d); err != nil {
			t.Errorf("ValidateMermaidDirection(%q) error: %v", d, err)
		}
	}
	if err := ValidateMermaidDirection("up"); err == nil {
		t.Error("expected error for unknown direction")
	}
}
