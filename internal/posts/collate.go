package posts

import (
	"fmt"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator orders strings ignoring case and diacritics for one locale.
// It is not safe for concurrent use.
type Collator struct {
	c *collate.Collator
}

// NewCollator returns a Collator for a BCP-47 locale tag such as "en" or "sv-SE".
func NewCollator(locale string) (*Collator, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
	}
	return newCollator(tag), nil
}

// DefaultCollator returns the English collator.
func DefaultCollator() *Collator {
	return newCollator(language.English)
}

func newCollator(tag language.Tag) *Collator {
	return &Collator{c: collate.New(tag, collate.IgnoreCase, collate.IgnoreDiacritics)}
}

// Compare returns -1, 0 or 1.
func (c *Collator) Compare(a, b string) int {
	return c.c.CompareString(a, b)
}

// Sort orders posts by title, then by slug. Equal posts keep their order.
func (c *Collator) Sort(posts []Post) {
	slices.SortStableFunc(posts, func(a, b Post) int {
		if n := c.Compare(a.Title, b.Title); n != 0 {
			return n
		}
		return c.Compare(a.Slug, b.Slug)
	})
}
