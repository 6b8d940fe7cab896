package sink

import (
	"fmt"
	"io"
	"os"

	"github.com/ldurand/CardioFlow/internal/domain"
	"github.com/ldurand/CardioFlow/internal/ports"
)

// ConsoleSink prints one formatted line per sample, matching the CLI's
// human-readable feed.
type ConsoleSink struct {
	w io.Writer
}

func NewConsoleSink(w io.Writer) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleSink{w: w}
}

func (c *ConsoleSink) Name() string { return "console" }

func (c *ConsoleSink) WriteBatch(samples []domain.HeartData) error {
	for _, s := range samples {
		if _, err := fmt.Fprintln(c.w, s); err != nil {
			return fmt.Errorf("console write: %w", err)
		}
	}
	return nil
}

var _ ports.Sink = (*ConsoleSink)(nil)
