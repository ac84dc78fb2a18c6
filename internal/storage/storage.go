// Package storage keeps product images in an S3-compatible object store.
// Objects are streamed; nothing is staged on local disk.
package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ImagePrefix is the key prefix for every product image.
const ImagePrefix = "products/"

// MaxImageSize caps a single upload.
const MaxImageSize = 5 << 20

var ErrUnsupportedImage = errors.New("unsupported image type")

var imageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// PutOptions describe an upload. Size is -1 when unknown.
type PutOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// ObjectStore is the subset of an S3 client the marketplace uses.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (ObjectInfo, error)
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	Delete(ctx context.Context, key string) error
	// PresignGet returns a URL that downloads the object without credentials until expiry.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// ImageKey returns a fresh object key for an uploaded file, keeping its
// extension: products/<uuid>.jpg.
func ImageKey(filename string) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	if _, ok := imageTypes[ext]; !ok {
		return "", ErrUnsupportedImage
	}
	return ImagePrefix + uuid.NewString() + ext, nil
}

// ImageContentType maps a key or filename to its MIME type.
func ImageContentType(name string) string {
	if ct, ok := imageTypes[strings.ToLower(path.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}
