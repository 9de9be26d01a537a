package collation

import (
	"fmt"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator compares strings in the order a reader of the configured locale
// expects, so "adam" sorts next to "Adam" rather than after "Zoe".
type Collator struct {
	mu       sync.Mutex
	collator *collate.Collator
	tag      language.Tag
}

func New(locale string) (*Collator, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid collation locale %q: %w", locale, err)
	}

	return &Collator{
		collator: collate.New(tag),
		tag:      tag,
	}, nil
}

// CompareString reports -1, 0 or 1. collate.Collator keeps internal buffers,
// so calls are serialized.
func (c *Collator) CompareString(a, b string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.collator.CompareString(a, b)
}

func (c *Collator) Locale() string {
	return c.tag.String()
}
