package interfaces

import "context"

// IUploadArchive keeps a copy of every confirmed import file.
type IUploadArchive interface {
	Put(ctx context.Context, ownerID, batchID, fileName string, content []byte) (key string, err error)
	Delete(ctx context.Context, key string) error
}
