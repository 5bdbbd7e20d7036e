package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/cadenza/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart syntax string from a
// transition net. It applies semantic styling:
// - Vertex 1 (the tonic slot): ((Circle))
// - Isolated vertices (no outgoing edges): [[Subroutine]]
// - Default: [Rectangle]
// Labels carry the vertex quality when one is configured ("2m", "5").
func GenerateMermaid(net domain.Net, qualities []string) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, k := range net.Keys() {
		label := fmt.Sprintf("%d", k)
		if k-1 < len(qualities) && qualities[k-1] != "" {
			label = fmt.Sprintf("%d%s", k, qualities[k-1])
		}

		opener, closer := "[", "]"
		switch {
		case k == 1:
			opener, closer = "((", "))"
		case len(net[k]) == 0:
			opener, closer = "[[", "]]"
		}

		sb.WriteString(fmt.Sprintf("    v%d%s\"%s\"%s\n", k, opener, label, closer))

		for _, t := range net[k] {
			sb.WriteString(fmt.Sprintf("    v%d --> v%d\n", k, t))
		}
	}

	return sb.String()
}
