// Package jsondir stores documents as indented JSON files, one <key>.json per
// document, in a single flat directory.
package jsondir

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	ext = ".json"
	// TempFilePrefix marks in-flight writes; such files never match *.json.
	TempFilePrefix = ".tmp-"
)

// ErrNotExist is returned by Read when the document file is absent.
var ErrNotExist = fs.ErrNotExist

// Dir is a directory of JSON documents. It is created on first write.
type Dir struct {
	path string
}

// Open returns a Dir rooted at path without touching the filesystem.
func Open(path string) *Dir {
	return &Dir{path: path}
}

func (d *Dir) Path() string { return d.path }

// Ensure creates the directory if it does not exist.
func (d *Dir) Ensure() error {
	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return fmt.Errorf("create storage directory: %w", err)
	}
	return nil
}

// FileName returns the path of the document stored under key.
func (d *Dir) FileName(key string) string {
	return filepath.Join(d.path, key+ext)
}

// Write serializes v with two-space indentation and replaces <key>.json.
func (d *Dir) Write(key string, v any) error {
	if err := d.Ensure(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return writeFileAtomic(d.FileName(key), data, 0o644)
}

// Read decodes <key>.json into v. A missing file yields an error matching
// ErrNotExist.
func (d *Dir) Read(key string, v any) error {
	data, err := os.ReadFile(d.FileName(key))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", key+ext, err)
	}
	return nil
}

// Keys lists the keys of all *.json files in lexical filename order.
// A directory that does not exist yet has no keys.
func (d *Dir) Keys() ([]string, error) {
	if _, err := os.Stat(d.path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	matches, err := doublestar.Glob(os.DirFS(d.path), "*"+ext, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("list storage directory: %w", err)
	}
	sort.Strings(matches)
	keys := make([]string, 0, len(matches))
	for _, m := range matches {
		keys = append(keys, strings.TrimSuffix(m, ext))
	}
	return keys, nil
}

// writeFileAtomic writes data to a temp file in the same directory and
// renames it over filename.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", filename, err)
	}
	return nil
}
