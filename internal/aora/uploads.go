package aora

import (
	"context"
	"fmt"

	"github.com/aora/client/internal/appwrite"
	"github.com/aora/client/internal/logging"
	"github.com/aora/client/internal/models"
)

// File kinds accepted by UploadFile and FilePreview.
const (
	FileTypeImage = "image"
	FileTypeVideo = "video"
)

// imagePreview is the fixed transform applied to uploaded thumbnails.
var imagePreview = appwrite.PreviewOptions{
	Width:   2000,
	Height:  2000,
	Gravity: "top",
	Quality: 100,
}

// UploadFile stores the asset under a fresh unique id and resolves its
// durable URL. A nil asset is a no-op, not an error: the empty URL is
// returned without any remote call.
func (s *Service) UploadFile(ctx context.Context, asset *models.Asset, kind string) (string, error) {
	if asset == nil {
		return "", nil
	}

	ctx, op := logging.StartOperation(ctx, "upload_file")
	defer op.End()

	file, err := s.deps.Files.CreateFile(ctx, s.cols.StorageID, appwrite.UniqueID(), appwrite.InputFile{
		Path:     asset.Path,
		Name:     asset.Name,
		MIMEType: asset.MIMEType,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", kind, err)
	}

	return s.FilePreview(file.ID, kind)
}

// FilePreview resolves the durable URL for a stored file. Videos map to the
// direct view URL; images map to a 2000x2000 top-anchored preview at full
// quality. Unknown kinds fail before any URL is derived.
func (s *Service) FilePreview(fileID, kind string) (string, error) {
	var resolved string
	switch kind {
	case FileTypeVideo:
		resolved = s.deps.Files.FileViewURL(s.cols.StorageID, fileID)
	case FileTypeImage:
		resolved = s.deps.Files.FilePreviewURL(s.cols.StorageID, fileID, imagePreview)
	default:
		return "", &InvalidFileTypeError{Type: kind}
	}

	if resolved == "" {
		return "", &PreviewResolutionError{FileID: fileID}
	}
	return resolved, nil
}
