// Package appmode provides 2 methods to run the app: a single search and serve-mode
package appmode

import (
	"bufio"
	"io"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/reader"
)

// RunSearch loads cfg.Target, searches it and writes every found line to out.
// Content-source errors are returned as is, zero matches is not an error.
func RunSearch(cfg *model.Config, stdin io.Reader, out io.Writer) error {
	content, err := reader.ReadContent(stdin, cfg.Target)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	for _, line := range processor.Run(cfg, content) {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
