package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdout returns the writer commands print results to.
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

type stdinKey struct{}

// WithStdin returns a new context.Context whose commands read the source "-"
// from r instead of os.Stdin.
func WithStdin(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, stdinKey{}, r)
}

func stdinFrom(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(stdinKey{}).(io.Reader); ok && r != nil {
		return r
	}

	return os.Stdin
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// source is one named input document.
type source struct {
	name string
	text string
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// uniqueSources returns names without duplicates, in order of first
// appearance. Files are compared by device and inode, so a file named through
// a symlink or a different relative path is kept once. Names that cannot be
// resolved are kept so that reading them reports the failure.
func uniqueSources(names []string) []string {
	var (
		unique   = make([]string, 0, len(names))
		seen     = make(map[fileKey]struct{})
		hasStdin bool
	)

	for _, name := range names {
		if name == stdinSource {
			if !hasStdin {
				unique = append(unique, name)
			}

			hasStdin = true

			continue
		}

		key, ok := resolveFileKey(name)
		if ok {
			if _, exists := seen[key]; exists {
				continue
			}

			seen[key] = struct{}{}
		}

		unique = append(unique, name)
	}

	return unique
}

func resolveFileKey(path string) (fileKey, bool) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fileKey{}, false
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return fileKey{}, false
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return fileKey{}, false
	}

	return makeFileKey(info)
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}

func readSource(ctx context.Context, name string) (source, error) {
	var (
		data []byte
		err  error
	)

	if name == stdinSource {
		data, err = io.ReadAll(stdinFrom(ctx))
	} else {
		data, err = os.ReadFile(name)
	}

	if err != nil {
		return source{}, ErrReadInput.Wrap(err).With(slog.String("source", name))
	}

	return source{name: name, text: string(data)}, nil
}

// forEachSource reads every unique source in names and applies fn to it, with
// at most jobs sources in flight. A jobs value less than 1 selects one per
// CPU. Results are returned in source order. The first error cancels the
// remaining work.
func forEachSource[T any](
	ctx context.Context,
	names []string,
	jobs int,
	fn func(context.Context, source) (T, error),
) ([]T, error) {
	names = uniqueSources(names)
	if len(names) == 0 {
		return nil, ErrNoInput
	}

	if jobs < 1 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]T, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			src, err := readSource(ctx, name)
			if err != nil {
				return err
			}

			results[i], err = fn(ctx, src)

			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
