package driver

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/pkg/errors"
)

// StdinName is the display name of source read from standard input.
const StdinName = "<stdin>"

// Source is one unit of program text together with the name diagnostics
// should show for it.
type Source struct {
	Name string
	Text string
}

// SourceOptions selects where program text comes from. At most one of Code
// and Path-with-Revision applies; an empty Path or "-" reads Stdin.
type SourceOptions struct {
	Path     string
	Code     string
	Revision string
	Stdin    io.Reader
}

// LoadSource resolves opts into a Source.
func LoadSource(opts SourceOptions) (*Source, error) {
	switch {
	case opts.Code != "":
		if opts.Path != "" || opts.Revision != "" {
			return nil, errors.New("source: --code cannot be combined with a path or revision")
		}
		return &Source{Name: "<code>", Text: opts.Code}, nil
	case opts.Revision != "":
		if opts.Path == "" || opts.Path == "-" {
			return nil, errors.New("source: a revision needs a file path")
		}
		return LoadGitSource(opts.Path, opts.Revision)
	case opts.Path == "" || opts.Path == "-":
		if opts.Stdin == nil {
			return nil, errors.New("source: no input")
		}
		return ReadSource(StdinName, opts.Stdin)
	default:
		return LoadFile(opts.Path)
	}
}

func LoadFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "source: read %s", path)
	}
	return &Source{Name: path, Text: string(data)}, nil
}

func ReadSource(name string, r io.Reader) (*Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "source: read %s", name)
	}
	return &Source{Name: name, Text: string(data)}, nil
}

// LoadGitSource reads path as it was committed at rev in the repository
// containing it. rev accepts anything go-git can resolve (HEAD, branch and
// tag names, hashes, HEAD~1).
func LoadGitSource(path, rev string) (*Source, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "source: resolve %s", path)
	}
	repo, err := git.PlainOpenWithOptions(filepath.Dir(absPath), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, errors.Wrapf(err, "source: open repository for %s", path)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return nil, errors.Wrap(err, "source: repository has no worktree")
	}
	rel, err := repoRelative(worktree.Filesystem.Root(), absPath)
	if err != nil {
		return nil, err
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, errors.Wrapf(err, "source: resolve revision %q", rev)
	}
	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, errors.Wrapf(err, "source: load commit %s", hash)
	}
	file, err := commit.File(rel)
	if err != nil {
		return nil, errors.Wrapf(err, "source: %s at %s", rel, rev)
	}
	contents, err := file.Contents()
	if err != nil {
		return nil, errors.Wrapf(err, "source: read %s at %s", rel, rev)
	}
	return &Source{Name: rel + "@" + rev, Text: contents}, nil
}

// repoRelative returns path relative to root in slash form, following
// symlinks so temp directories behind links still match.
func repoRelative(root, path string) (string, error) {
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}
	dir, base := filepath.Split(path)
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		path = filepath.Join(resolved, base)
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", errors.Wrapf(err, "source: %s is outside the repository", path)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Errorf("source: %s is outside the repository at %s", path, root)
	}
	return filepath.ToSlash(rel), nil
}
