// Package fsutil provides the filesystem and path helpers used while
// materializing templates: existence checks, directory creation,
// exclusive-create batch copies, and short-name extraction.
package fsutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Sentinel errors for filesystem operations.
var (
	// ErrDestinationExists indicates an exclusive copy found its target
	// already present.
	ErrDestinationExists = errors.New("destination file already exists")

	// ErrPathEscape indicates a relative path resolves outside its base.
	ErrPathEscape = errors.New("path escapes base directory")
)

// Exists reports whether path exists. Stat errors other than
// "not exist" are treated as existing so callers never overwrite
// something they cannot inspect.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", dir, err)
	}
	return nil
}

// LastSegment returns the last non-empty "/"-separated segment of p.
// It mirrors a basename without touching the filesystem:
// "pages/home/home" -> "home", "packageA/" -> "packageA", "" -> "".
func LastSegment(p string) string {
	parts := strings.Split(p, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i]
		}
	}
	return ""
}

// Join resolves slash-separated relative segments under base and rejects
// results that leave base. A leading "/" on a segment is dropped, so a
// manifest root like "/packageA" still lands under base.
func Join(base string, rel ...string) (string, error) {
	segs := make([]string, len(rel))
	for i, r := range rel {
		segs[i] = strings.TrimLeft(r, "/")
	}
	joined := path.Join(segs...)
	cleaned := filepath.Clean(filepath.FromSlash(joined))
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("%w: absolute path %q", ErrPathEscape, joined)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrPathEscape, joined)
	}
	return filepath.Join(base, cleaned), nil
}

// CopyFileExclusive copies src from fsys to dst on disk. The destination
// is created with O_EXCL, so an existing file yields ErrDestinationExists
// and is left untouched.
func CopyFileExclusive(fsys fs.FS, src, dst string) error {
	in, err := fsys.Open(src)
	if err != nil {
		return fmt.Errorf("open template %q: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrDestinationExists, dst)
		}
		return fmt.Errorf("create %q: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy %q to %q: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %q: %w", dst, err)
	}
	return nil
}

// CopyBatch copies files (names relative to srcDir in fsys) one at a time,
// in the given order, to destBase plus each source file's extension.
// It stops at the first failure and does not remove files already copied;
// the returned slice lists every destination written so far.
// onCopied, when non-nil, is called after each successful copy.
func CopyBatch(fsys fs.FS, srcDir string, files []string, destBase string, onCopied func(dst string)) ([]string, error) {
	written := make([]string, 0, len(files))
	for _, name := range files {
		dst := destBase + path.Ext(name)
		if err := CopyFileExclusive(fsys, path.Join(srcDir, name), dst); err != nil {
			return written, err
		}
		written = append(written, dst)
		if onCopied != nil {
			onCopied(dst)
		}
	}
	return written, nil
}
