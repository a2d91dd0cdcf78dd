package objectstorage

import "context"

// ObjectStorage is the contract the catalog needs from the image store: the
// presigned-upload handshake and batch deletion by key.
type ObjectStorage interface {
	PresignUpload(ctx context.Context, key string, contentType string) (uploadURL string, err error)
	PublicURL(key string) string
	DeleteObjects(ctx context.Context, keys []string) (err error)
}
