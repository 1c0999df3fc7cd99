package compiler

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DumpFormat selects how Dump renders a tree.
type DumpFormat string

const (
	DumpText DumpFormat = "text"
	DumpYAML DumpFormat = "yaml"
)

type dumpNode struct {
	Kind     string     `yaml:"kind"`
	Value    string     `yaml:"value,omitempty"`
	Children []dumpNode `yaml:"children,omitempty"`
}

func toDumpNode(n Node) dumpNode {
	d := dumpNode{Kind: n.Kind().String()}
	switch v := n.(type) {
	case *Identifier:
		d.Value = v.Name
	case *Constant:
		d.Value = strconv.FormatInt(int64(v.Value), 10)
	}
	for _, c := range n.Children() {
		d.Children = append(d.Children, toDumpNode(c))
	}
	return d
}

// Dump renders the tree rooted at n.
//
//	Program
//	  Function
//	    Identifier main
//	    Statement
//	      Expression
//	        Constant 2
func Dump(n Node, format DumpFormat) (string, error) {
	d := toDumpNode(n)
	switch format {
	case DumpText, "":
		var sb strings.Builder
		writeText(&sb, d, 0)
		return sb.String(), nil
	case DumpYAML:
		out, err := yaml.Marshal(d)
		if err != nil {
			return "", fmt.Errorf("marshal ast: %w", err)
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("unknown dump format %q", format)
	}
}

func writeText(sb *strings.Builder, d dumpNode, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(d.Kind)
	if d.Value != "" {
		sb.WriteByte(' ')
		sb.WriteString(d.Value)
	}
	sb.WriteByte('\n')
	for _, c := range d.Children {
		writeText(sb, c, depth+1)
	}
}
