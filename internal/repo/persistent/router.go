package persistent

import (
	"context"
	"fmt"
	"strings"

	"github.com/andreyxaxa/Image-Transformer/internal/repo"
	"github.com/andreyxaxa/Image-Transformer/pkg/types/errs"
)

// ImageRepo picks the backing store from the path scheme: s3://bucket/key goes to the
// object store, anything else to the local filesystem.
type ImageRepo struct {
	files   repo.ImageStore
	objects repo.ImageStore // nil when S3 is disabled
}

func NewImageRepo(files, objects repo.ImageStore) *ImageRepo {
	return &ImageRepo{
		files:   files,
		objects: objects,
	}
}

func (r *ImageRepo) Read(ctx context.Context, path string) ([]byte, error) {
	store, err := r.storeFor(path)
	if err != nil {
		return nil, fmt.Errorf("ImageRepo - Read - r.storeFor: %w", err)
	}

	return store.Read(ctx, path)
}

func (r *ImageRepo) Write(ctx context.Context, path string, data []byte) error {
	store, err := r.storeFor(path)
	if err != nil {
		return fmt.Errorf("ImageRepo - Write - r.storeFor: %w", err)
	}

	return store.Write(ctx, path, data)
}

func (r *ImageRepo) storeFor(path string) (repo.ImageStore, error) {
	if !strings.HasPrefix(path, S3Scheme) {
		return r.files, nil
	}

	if r.objects == nil {
		return nil, fmt.Errorf("%w: object storage is disabled, path %q", errs.ErrIO, path)
	}

	return r.objects, nil
}
