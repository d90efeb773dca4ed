package formatter

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/oakwood-commons/zksim/internal/znode"
)

// ExportFormat names a document encoding for export.
type ExportFormat string

const (
	ExportYAML    ExportFormat = "yaml"
	ExportJSON    ExportFormat = "json"
	ExportTOML    ExportFormat = "toml"
	ExportMermaid ExportFormat = "mermaid"
)

// ValidExportFormats contains all valid export formats.
var ValidExportFormats = []ExportFormat{ExportYAML, ExportJSON, ExportTOML, ExportMermaid}

// ValidateExportFormat returns an error if the format is unknown.
func ValidateExportFormat(format string) error {
	for _, valid := range ValidExportFormats {
		if ExportFormat(format) == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid export format %q: valid values are yaml, json, toml, mermaid", format)
}

// Snapshot is a detached, serializable copy of a subtree. Children keep
// insertion order.
type Snapshot struct {
	Name       string     `json:"name" yaml:"name" toml:"name"`
	Data       string     `json:"data,omitempty" yaml:"data,omitempty" toml:"data,omitempty"`
	Ephemeral  bool       `json:"ephemeral,omitempty" yaml:"ephemeral,omitempty" toml:"ephemeral,omitempty"`
	Sequential bool       `json:"sequential,omitempty" yaml:"sequential,omitempty" toml:"sequential,omitempty"`
	Children   []Snapshot `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// NewSnapshot copies the subtree under n.
func NewSnapshot(n *znode.Node) Snapshot {
	s := Snapshot{
		Name:       n.Name,
		Data:       n.Data,
		Ephemeral:  n.Ephemeral,
		Sequential: n.Sequential,
	}
	for _, c := range n.Children() {
		s.Children = append(s.Children, NewSnapshot(c))
	}
	return s
}

// Export encodes the subtree under n. top labels the start node in diagram
// formats; mermaid only applies to ExportMermaid.
func Export(n *znode.Node, top string, format ExportFormat, mermaid MermaidOptions) (string, error) {
	switch format {
	case ExportYAML, "":
		return FormatYAML(NewSnapshot(n), YAMLFormatOptions{LiteralBlockStrings: true})
	case ExportJSON:
		b, err := json.MarshalIndent(NewSnapshot(n), "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal json: %w", err)
		}
		return string(b) + "\n", nil
	case ExportTOML:
		b, err := toml.Marshal(NewSnapshot(n))
		if err != nil {
			return "", fmt.Errorf("failed to marshal toml: %w", err)
		}
		return string(b), nil
	case ExportMermaid:
		return FormatAsMermaid(n, top, mermaid), nil
	default:
		return "", ValidateExportFormat(string(format))
	}
}
