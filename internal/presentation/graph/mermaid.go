// Package graph renders a machine configuration as a Mermaid diagram.
package graph

import (
	"fmt"
	"strings"

	"github.com/tmsim/tmconv/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of the machine's state
// transitions. Semantic styling:
//   - the initial state (the first command's state) is a circle
//   - states only ever entered by a Stop move use dotted incoming arrows
//   - every edge is labeled "read/write,move-letter"
//
// States appear in first-encounter order so the diagram is deterministic
// for a given source file.
func GenerateMermaid(cfg *domain.Configuration) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	seen := make(map[int]bool)
	order := make([]int, 0, len(cfg.Commands)*2)
	for _, cmd := range cfg.Commands {
		for _, s := range []int{cmd.State, cmd.NextState} {
			if !seen[s] {
				seen[s] = true
				order = append(order, s)
			}
		}
	}

	for i, s := range order {
		opener, closer := "[", "]"
		if i == 0 {
			opener, closer = "((", "))" // initial state
		}
		sb.WriteString(fmt.Sprintf("    q%d%s\"q%d\"%s\n", s, opener, s, closer))
	}

	for _, cmd := range cfg.Commands {
		label := fmt.Sprintf("%s/%s,%s", escapeMermaidLabel(cmd.ReadingChar), escapeMermaidLabel(cmd.PlaceChar), moveLetter(cmd.NextMove))
		arrow := fmt.Sprintf("-- \"%s\" -->", label)
		if cmd.NextMove == domain.MoveStop {
			arrow = fmt.Sprintf("-. \"%s\" .->", label)
		}
		sb.WriteString(fmt.Sprintf("    q%d %s q%d\n", cmd.State, arrow, cmd.NextState))
	}

	return sb.String()
}

func moveLetter(move string) string {
	switch move {
	case domain.MoveRight:
		return "R"
	case domain.MoveLeft:
		return "L"
	default:
		return "S"
	}
}

// escapeMermaidLabel keeps symbols from breaking the Mermaid edge syntax.
func escapeMermaidLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
