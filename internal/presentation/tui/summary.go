package tui

import (
	"fmt"
	"strings"

	"github.com/tmsim/tmconv/pkg/domain"
)

// Summary produces a markdown description of a machine configuration,
// suitable for rendering with NewRenderer or for plain display.
func Summary(cfg *domain.Configuration) string {
	var sb strings.Builder

	sb.WriteString("# Turing Machine Configuration\n\n")
	sb.WriteString(fmt.Sprintf("- **Alphabet:** `%s`\n", cfg.Alphabet))
	sb.WriteString(fmt.Sprintf("- **Tape:** `%s`\n", cfg.Tape))
	sb.WriteString(fmt.Sprintf("- **Commands:** %d\n\n", len(cfg.Commands)))

	if len(cfg.Commands) == 0 {
		return sb.String()
	}

	sb.WriteString("| State | Read | Write | Next State | Move |\n")
	sb.WriteString("|------:|:----:|:-----:|-----------:|:-----|\n")
	for _, cmd := range cfg.Commands {
		sb.WriteString(fmt.Sprintf("| q%d | `%s` | `%s` | q%d | %s |\n",
			cmd.State, cmd.ReadingChar, cmd.PlaceChar, cmd.NextState, cmd.NextMove))
	}

	return sb.String()
}
