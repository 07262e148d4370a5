package object

import (
	"context"
	"io"
)

// ObjectStore persists uploaded documents and artifacts derived from them.
// Objects are namespaced by the report they belong to.
type ObjectStore interface {
	// Save stores an uploaded file under the report's namespace and returns
	// the storage key it can be reopened with.
	Save(ctx context.Context, reportID string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	// SaveDerived stores a derived artifact at an exact storage key.
	SaveDerived(ctx context.Context, storageKey string, contentType string, r io.Reader) (int64, error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
