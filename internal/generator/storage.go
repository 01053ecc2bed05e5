package generator

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// ArtifactWriter persists generated artifacts. The driver treats writer
// failures as fatal; everything upstream degrades per item instead.
type ArtifactWriter interface {
	EnsureDir(ctx context.Context, dir string) error
	WriteFile(ctx context.Context, path string, data []byte) error
	Clean(ctx context.Context, dir string) error
}

// NewFSWriter returns an ArtifactWriter backed by the local filesystem.
// Files are written atomically so an interrupted build never leaves a
// truncated page behind.
func NewFSWriter() ArtifactWriter {
	return fsWriter{}
}

type fsWriter struct{}

func (fsWriter) EnsureDir(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func (fsWriter) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (fsWriter) Clean(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir == "" || dir == "." || dir == "/" {
		return fmt.Errorf("refusing to clean %q", dir)
	}
	if err := os.RemoveAll(dir); err != nil {
		return err
	}
	return nil
}
