package persistent_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/andreyxaxa/Image-Transformer/internal/repo/persistent"
	"github.com/andreyxaxa/Image-Transformer/pkg/types/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore records which paths were routed to it.
type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Read(_ context.Context, path string) ([]byte, error) {
	b, ok := m.data[path]
	if !ok {
		return nil, errs.ErrIO
	}
	return b, nil
}

func (m *memStore) Write(_ context.Context, path string, data []byte) error {
	m.data[path] = data
	return nil
}

func TestSplitS3Path(t *testing.T) {
	tests := []struct {
		path    string
		bucket  string
		key     string
		wantErr bool
	}{
		{path: "s3://images/a.png", bucket: "images", key: "a.png"},
		{path: "s3://images/nested/dir/b.jpg", bucket: "images", key: "nested/dir/b.jpg"},
		{path: "s3://images", wantErr: true},
		{path: "s3://images/", wantErr: true},
		{path: "s3:///a.png", wantErr: true},
		{path: "/tmp/a.png", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			bucket, key, err := persistent.SplitS3Path(tc.path)
			if tc.wantErr {
				require.ErrorIs(t, err, errs.ErrIO)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.bucket, bucket)
			assert.Equal(t, tc.key, key)
		})
	}
}

func TestImageRepo_RoutesByScheme(t *testing.T) {
	ctx := context.Background()
	files := newMemStore()
	objects := newMemStore()
	r := persistent.NewImageRepo(files, objects)

	require.NoError(t, r.Write(ctx, "/data/a.png", []byte("local")))
	require.NoError(t, r.Write(ctx, "s3://bucket/a.png", []byte("remote")))

	assert.Equal(t, map[string][]byte{"/data/a.png": []byte("local")}, files.data)
	assert.Equal(t, map[string][]byte{"s3://bucket/a.png": []byte("remote")}, objects.data)

	b, err := r.Read(ctx, "s3://bucket/a.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("remote"), b)
}

func TestImageRepo_ObjectStoreDisabled(t *testing.T) {
	ctx := context.Background()
	r := persistent.NewImageRepo(newMemStore(), nil)

	_, err := r.Read(ctx, "s3://bucket/a.png")
	require.ErrorIs(t, err, errs.ErrIO)

	err = r.Write(ctx, "s3://bucket/a.png", []byte("x"))
	require.ErrorIs(t, err, errs.ErrIO)
}

func TestFileRepo(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "img.bin")
	r := persistent.NewFileRepo()

	_, err := r.Read(ctx, path)
	require.ErrorIs(t, err, errs.ErrIO)
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, r.Write(ctx, path, []byte("first, longer content")))
	require.NoError(t, r.Write(ctx, path, []byte("second")))

	b, err := r.Read(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), b)

	err = r.Write(ctx, filepath.Join(t.TempDir(), "missing", "dir", "x.png"), []byte("x"))
	require.ErrorIs(t, err, errs.ErrIO)
}

func TestFileRepo_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "img.bin")
	r := persistent.NewFileRepo()

	err := r.Write(ctx, path, []byte("x"))
	require.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}
