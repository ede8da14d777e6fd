package driver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

func commitFile(t *testing.T, repo *git.Repository, dir, rel, contents, message string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}
	if _, err := worktree.Add(rel); err != nil {
		t.Fatalf("Add: %v", err)
	}
	hash, err := worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "onec",
			Email: "onec@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	return hash.String()
}

func TestLoadGitSourceAtRevision(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	first := commitFile(t, repo, dir, "src/main.onec", "fn main() {}\n", "first")
	commitFile(t, repo, dir, "src/main.onec", "fn main() { let a = 1; }\n", "second")

	path := filepath.Join(dir, "src", "main.onec")
	src, err := LoadGitSource(path, first)
	if err != nil {
		t.Fatalf("LoadGitSource returned error: %v", err)
	}
	if src.Text != "fn main() {}\n" {
		t.Fatalf("Text = %q, want first revision", src.Text)
	}
	if src.Name != "src/main.onec@"+first {
		t.Fatalf("Name = %q", src.Name)
	}

	head, err := LoadGitSource(path, "HEAD")
	if err != nil {
		t.Fatalf("LoadGitSource(HEAD) returned error: %v", err)
	}
	if !strings.Contains(head.Text, "let a = 1") {
		t.Fatalf("HEAD text = %q", head.Text)
	}

	prev, err := LoadGitSource(path, "HEAD~1")
	if err != nil {
		t.Fatalf("LoadGitSource(HEAD~1) returned error: %v", err)
	}
	if prev.Text != src.Text {
		t.Fatalf("HEAD~1 text = %q, want %q", prev.Text, src.Text)
	}
}

func TestLoadGitSourceErrors(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	commitFile(t, repo, dir, "main.onec", "fn main() {}\n", "init")

	if _, err := LoadGitSource(filepath.Join(dir, "main.onec"), "no-such-branch"); err == nil {
		t.Fatalf("expected unknown revision error")
	}
	if _, err := LoadGitSource(filepath.Join(dir, "other.onec"), "HEAD"); err == nil {
		t.Fatalf("expected missing file error")
	}
	if _, err := LoadGitSource(filepath.Join(t.TempDir(), "main.onec"), "HEAD"); err == nil {
		t.Fatalf("expected error outside a repository")
	}
}

func TestLoadSourceSelection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.onec")
	if err := os.WriteFile(path, []byte("fn main() {}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cases := []struct {
		name     string
		opts     SourceOptions
		wantName string
		wantText string
	}{
		{"file", SourceOptions{Path: path}, path, "fn main() {}"},
		{"inline", SourceOptions{Code: "fn a() {}"}, "<code>", "fn a() {}"},
		{"stdin", SourceOptions{Stdin: strings.NewReader("fn b() {}")}, StdinName, "fn b() {}"},
		{"dash", SourceOptions{Path: "-", Stdin: strings.NewReader("fn c() {}")}, StdinName, "fn c() {}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src, err := LoadSource(tc.opts)
			if err != nil {
				t.Fatalf("LoadSource returned error: %v", err)
			}
			if src.Name != tc.wantName || src.Text != tc.wantText {
				t.Fatalf("LoadSource = %+v, want %s %q", src, tc.wantName, tc.wantText)
			}
		})
	}
}

func TestLoadSourceRejectsConflicts(t *testing.T) {
	cases := []SourceOptions{
		{Code: "fn a() {}", Path: "x.onec"},
		{Code: "fn a() {}", Revision: "HEAD"},
		{Revision: "HEAD"},
		{},
		{Path: filepath.Join(t.TempDir(), "missing.onec")},
	}
	for _, opts := range cases {
		if _, err := LoadSource(opts); err == nil {
			t.Fatalf("expected error for %+v", opts)
		}
	}
}
