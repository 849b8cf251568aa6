package index

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jorge-barreto/postindex/internal/posts"
)

// Result reports the outcome of WriteIfChanged.
type Result struct {
	Path    string
	Written bool
	Count   int
}

// Encode renders posts as a JSON array indented with two spaces and a single
// trailing newline. A nil slice encodes as []. Invalid UTF-8 is written as a
// literal U+FFFD rather than an escape.
func Encode(list []posts.Post) ([]byte, error) {
	clean := make([]posts.Post, len(list))
	for i, p := range list {
		clean[i] = posts.Post{
			Slug:  strings.ToValidUTF8(p.Slug, "\uFFFD"),
			Title: strings.ToValidUTF8(p.Title, "\uFFFD"),
		}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(clean); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteIfChanged writes the encoded index to path unless the file already
// holds exactly the same bytes. A missing or unreadable file counts as changed.
func WriteIfChanged(path string, list []posts.Post) (Result, error) {
	res := Result{Path: path, Count: len(list)}

	data, err := Encode(list)
	if err != nil {
		return res, fmt.Errorf("encoding %s: %w", path, err)
	}

	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, data) {
		return res, nil
	}

	if err := writeFileAtomic(path, data, 0644); err != nil {
		return res, fmt.Errorf("writing %s: %w", path, err)
	}
	res.Written = true
	return res, nil
}
