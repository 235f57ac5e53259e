package upload

import "context"

type UploadService interface {
	// List returns the latest import history entries
	List(ctx context.Context) ([]UploadResponse, error)

	// Latest returns the newest import that stored a source file, with a link to it
	Latest(ctx context.Context) (LatestUploadResponse, error)

	// LatestFile opens the source file of the newest import that stored one
	LatestFile(ctx context.Context) (FileDownload, error)
}
