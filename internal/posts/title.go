package posts

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var separatorRe = regexp.MustCompile(`[-_]+`)

// ExtractTitle derives a display title from raw markdown text.
// It looks, in order, for a `title:` line following a `---` line, the first
// level-1 heading, and the first level-2 heading. The first source that
// matches decides the outcome; ok is false when no usable title was found.
func ExtractTitle(content string) (title string, ok bool) {
	if content == "" {
		return "", false
	}
	lines := splitLines(content)

	if t, found := frontMatterTitle(lines); found {
		return t, t != ""
	}
	if t, found := headingTitle(lines, "#"); found {
		return t, true
	}
	if t, found := headingTitle(lines, "##"); found {
		return t, true
	}
	return "", false
}

// Humanize turns a slug into a readable title: separator runs become a single
// space and every word starts with an upper-case letter.
//
//	my-first_post -> My First Post
func Humanize(slug string) string {
	s := separatorRe.ReplaceAllString(slug, " ")
	b := []byte(s)
	prevWord := false
	for i, c := range b {
		word := isWordByte(c)
		if word && !prevWord && 'a' <= c && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
		prevWord = word
	}
	return string(b)
}

// TitleOrHumanize returns the extracted title of content, falling back to the
// humanized slug.
func TitleOrHumanize(content, slug string) string {
	if t, ok := ExtractTitle(content); ok {
		return t
	}
	return Humanize(slug)
}

// splitLines breaks content on \n, \r, U+2028 and U+2029. Blank lines are
// dropped since no scan matches them.
func splitLines(content string) []string {
	return strings.FieldsFunc(content, func(r rune) bool {
		return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
	})
}

// isSpace reports whitespace including the byte order mark, which editors
// may leave at the start of a file.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// frontMatterTitle scans for the first `---` line and then for the first
// later `title:` line with a non-empty value. The block does not need a
// closing fence.
func frontMatterTitle(lines []string) (string, bool) {
	open := -1
	for i, line := range lines {
		if strings.HasPrefix(line, "---") {
			open = i
			break
		}
	}
	if open < 0 {
		return "", false
	}
	for _, line := range lines[open+1:] {
		rest, ok := strings.CutPrefix(line, "title:")
		if !ok {
			continue
		}
		v := strings.TrimFunc(rest, isSpace)
		if v == "" {
			continue
		}
		return unquote(v), true
	}
	return "", false
}

// headingTitle returns the text of the first line that is marker followed by
// whitespace and text. Leading indentation is allowed.
func headingTitle(lines []string, marker string) (string, bool) {
	for _, line := range lines {
		rest, ok := strings.CutPrefix(strings.TrimLeftFunc(line, isSpace), marker)
		if !ok || rest == "" {
			continue
		}
		if r, _ := utf8.DecodeRuneInString(rest); !isSpace(r) {
			continue
		}
		if t := strings.TrimFunc(rest, isSpace); t != "" {
			return t, true
		}
	}
	return "", false
}

// unquote strips one matching pair of surrounding single or double quotes.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == last && (first == '"' || first == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}

func isWordByte(c byte) bool {
	return c == '_' ||
		('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z')
}
