package index

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jorge-barreto/postindex/internal/posts"
)

func TestEncode_Format(t *testing.T) {
	data, err := Encode([]posts.Post{
		{Slug: "hello-world", Title: "Hello <World> & Friends"},
		{Slug: "b", Title: "B"},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := `[
  {
    "slug": "hello-world",
    "title": "Hello <World> & Friends"
  },
  {
    "slug": "b",
    "title": "B"
  }
]
`
	if string(data) != want {
		t.Fatalf("got:\n%s\nwant:\n%s", data, want)
	}
}

func TestEncode_InvalidUTF8WrittenAsReplacementChar(t *testing.T) {
	data, err := Encode([]posts.Post{{Slug: "bad", Title: "Caf\xe9 Notes"}})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\"title\": \"Caf\uFFFD Notes\"") {
		t.Fatalf("expected literal replacement character, got %s", data)
	}
	if strings.Contains(string(data), `\ufffd`) {
		t.Fatalf("replacement character should not be escaped, got %s", data)
	}
}

func TestEncode_Empty(t *testing.T) {
	for _, list := range [][]posts.Post{nil, {}} {
		data, err := Encode(list)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "[]\n" {
			t.Fatalf("Encode(%#v) = %q, want %q", list, data, "[]\n")
		}
	}
}

func TestWriteIfChanged_MissingFileWritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.json")
	res, err := WriteIfChanged(path, []posts.Post{{Slug: "a", Title: "A"}})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Written {
		t.Fatal("expected write for missing file")
	}
	if res.Count != 1 || res.Path != path {
		t.Fatalf("unexpected result %+v", res)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(data), "]\n") {
		t.Fatalf("expected trailing newline, got %q", data)
	}
}

func TestWriteIfChanged_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.json")
	list := []posts.Post{{Slug: "a", Title: "A"}, {Slug: "b", Title: "B"}}

	first, err := WriteIfChanged(path, list)
	if err != nil {
		t.Fatal(err)
	}
	if !first.Written {
		t.Fatal("first run should write")
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	infoBefore, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	second, err := WriteIfChanged(path, list)
	if err != nil {
		t.Fatal(err)
	}
	if second.Written {
		t.Fatal("second run should report no change")
	}
	if second.Count != 2 {
		t.Fatalf("Count = %d, want 2", second.Count)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Fatalf("file changed: %q -> %q", before, after)
	}
	infoAfter, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !os.SameFile(infoBefore, infoAfter) {
		t.Fatal("file was replaced on an unchanged run")
	}
}

func TestWriteIfChanged_DifferentContentRewritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.json")
	// Same data without the trailing newline must still be rewritten.
	if err := os.WriteFile(path, []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}
	res, err := WriteIfChanged(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Written {
		t.Fatal("expected rewrite when bytes differ")
	}
	data, _ := os.ReadFile(path)
	if string(data) != "[]\n" {
		t.Fatalf("got %q", data)
	}
}

func TestWriteIfChanged_WriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "posts.json")
	res, err := WriteIfChanged(path, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if res.Written {
		t.Fatal("failed write must not report Written")
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("error should mention path, got: %v", err)
	}
}
