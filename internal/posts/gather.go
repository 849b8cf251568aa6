package posts

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Option configures Gather.
type Option func(*gatherer)

// WithLogger routes diagnostics about skipped or unreadable entries to log.
func WithLogger(log *zap.Logger) Option {
	return func(g *gatherer) {
		if log != nil {
			g.log = log
		}
	}
}

// WithCollator overrides the collator used to order the result.
func WithCollator(c *Collator) Option {
	return func(g *gatherer) {
		if c != nil {
			g.collator = c
		}
	}
}

type gatherer struct {
	log      *zap.Logger
	collator *Collator
}

// Gather builds the posts index for postsDir.
//
// Top-level *.md files and top-level directories are posts. Files are
// processed before directories, so a file wins a slug collision. Read errors
// never abort the scan: an unreadable file yields no content and an
// unreadable directory is skipped. A missing postsDir yields an empty,
// non-nil slice.
func Gather(postsDir string, opts ...Option) []Post {
	g := &gatherer{log: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}
	if g.collator == nil {
		g.collator = DefaultCollator()
	}

	entries, err := os.ReadDir(postsDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			g.log.Debug("posts directory not found", zap.String("path", postsDir))
		} else {
			g.log.Debug("reading posts directory", zap.String("path", postsDir), zap.Error(err))
		}
	}

	var found []Post
	for _, e := range entries {
		if !e.Type().IsRegular() || !isMarkdown(e.Name()) {
			continue
		}
		slug := trimExt(e.Name())
		content := g.readContent(filepath.Join(postsDir, e.Name()))
		found = append(found, Post{Slug: slug, Title: TitleOrHumanize(content, slug)})
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if p, ok := g.dirPost(filepath.Join(postsDir, e.Name()), e.Name()); ok {
			found = append(found, p)
		}
	}

	result := dedupe(found)
	g.collator.Sort(result)
	return result
}

// dirPost derives the post for a directory. ok is false for an empty or
// unreadable directory.
func (g *gatherer) dirPost(dir, slug string) (Post, bool) {
	preferred := filepath.Join(dir, slug+".md")
	if isRegularFile(preferred) {
		return Post{Slug: slug, Title: TitleOrHumanize(g.readContent(preferred), slug)}, true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		g.log.Debug("skipping unreadable directory", zap.String("path", dir), zap.Error(err))
		return Post{}, false
	}
	if name, ok := pickMarkdown(entries); ok {
		content := g.readContent(filepath.Join(dir, name))
		return Post{Slug: slug, Title: TitleOrHumanize(content, slug)}, true
	}
	if len(entries) == 0 {
		g.log.Debug("skipping empty directory", zap.String("path", dir))
		return Post{}, false
	}
	return Post{Slug: slug, Title: Humanize(slug)}, true
}

// pickMarkdown chooses index.md if present, otherwise the first markdown
// entry in listing order.
func pickMarkdown(entries []os.DirEntry) (string, bool) {
	var first string
	for _, e := range entries {
		if e.IsDir() || !isMarkdown(e.Name()) {
			continue
		}
		if strings.EqualFold(e.Name(), "index.md") {
			return e.Name(), true
		}
		if first == "" {
			first = e.Name()
		}
	}
	return first, first != ""
}

// readContent returns the file content, or "" if it cannot be read.
func (g *gatherer) readContent(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		g.log.Debug("unreadable post source", zap.String("path", path), zap.Error(err))
		return ""
	}
	return string(data)
}

func dedupe(in []Post) []Post {
	out := make([]Post, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, p := range in {
		if seen[p.Slug] {
			continue
		}
		seen[p.Slug] = true
		out = append(out, p)
	}
	return out
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isMarkdown(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".md")
}

// trimExt drops the final extension. A dot-file without another dot keeps
// its full name.
func trimExt(name string) string {
	if s := strings.TrimSuffix(name, filepath.Ext(name)); s != "" {
		return s
	}
	return name
}
