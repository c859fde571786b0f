// Package processor runs the matcher chosen by run parameters and packs the result for transport-layer
package processor

import (
	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/cespare/xxhash/v2"
)

type Processor struct{}

// Run returns the lines of content matching cfg.Query, in document order.
func Run(cfg *model.Config, content string) []string {
	return search(cfg.Query, content, cfg.CaseSensitive)
}

func (p Processor) ProcessTask(task *model.SearchTask) *model.SearchResult {
	output := search(task.Query, task.Content, !task.IgnoreCase)

	return &model.SearchResult{
		TaskID:   task.TaskID,
		HashSumm: hasher(output),
		Count:    len(output),
		Output:   output,
	}
}

func search(query, content string, caseSensitive bool) []string {
	if caseSensitive {
		return matcher.Search(query, content)
	}
	return matcher.SearchCaseInsensitive(query, content)
}

// хеш считается по строкам вместе с переводом строки, чтобы ["ab"] и ["a","b"] различались
func hasher(lines []string) uint64 {
	hs := xxhash.New()
	for _, s := range lines {
		_, _ = hs.WriteString(s)
		_, _ = hs.WriteString("\n")
	}
	return hs.Sum64()
}
