package persistent

import (
	"context"
	"fmt"
	"os"

	"github.com/andreyxaxa/Image-Transformer/pkg/types/errs"
)

const filePerm = 0o644

// FileRepo addresses images on the local filesystem.
type FileRepo struct{}

func NewFileRepo() *FileRepo {
	return &FileRepo{}
}

func (r *FileRepo) Read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("FileRepo - Read: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("FileRepo - Read - os.ReadFile: %w: %w", errs.ErrIO, err)
	}

	return data, nil
}

// Write truncates and replaces the file in place. There is no temp file or backup.
func (r *FileRepo) Write(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("FileRepo - Write: %w", err)
	}

	err := os.WriteFile(path, data, filePerm)
	if err != nil {
		return fmt.Errorf("FileRepo - Write - os.WriteFile: %w: %w", errs.ErrIO, err)
	}

	return nil
}
