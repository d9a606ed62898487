package interfaces

import "context"

// Uploader stores a file and returns its public URL. resourceType is
// "image" for pictures and "raw" for documents.
type Uploader interface {
	UploadBytes(ctx context.Context, folder, filename, resourceType string, b []byte) (string, error)
}
