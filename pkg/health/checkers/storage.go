package checkers

import (
	"context"
	"fmt"
	"os"
)

// StorageChecker verifies the resume directory exists and accepts writes.
type StorageChecker struct {
	dir string
}

func NewStorageChecker(dir string) *StorageChecker {
	return &StorageChecker{dir: dir}
}

func (c *StorageChecker) Name() string { return "storage" }

func (c *StorageChecker) Check(_ context.Context) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(c.dir, ".probe-*")
	if err != nil {
		return fmt.Errorf("directory not writable: %w", err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
