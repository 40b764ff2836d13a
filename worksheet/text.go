package worksheet

import (
	"fmt"
	"io"

	"github.com/ksarkes/chainsum/difficulty"
)

// RenderText writes a terminal preview of a scored batch, one line per
// problem: "statement  (difficulty=x.yz)".
func RenderText(w io.Writer, batch []difficulty.Scored) error {
	for _, s := range batch {
		if _, err := fmt.Fprintf(w, "%s  (difficulty=%.2f)\n", s.Problem.Statement(), s.Level); err != nil {
			return fmt.Errorf("worksheet: write text listing: %w", err)
		}
	}

	return nil
}
