package aora

import (
	"context"
	"errors"
	"testing"

	"github.com/aora/client/internal/appwrite"
	"github.com/aora/client/internal/models"
)

func TestUploadFileNilAssetIsNoOp(t *testing.T) {
	service, fakes := newTestService()

	url, err := service.UploadFile(context.Background(), nil, FileTypeImage)
	if err != nil {
		t.Fatalf("upload nil asset: %v", err)
	}
	if url != "" {
		t.Fatalf("expected empty url, got %q", url)
	}
	if fakes.files.uploadCount() != 0 || len(fakes.files.views) != 0 || len(fakes.files.previews) != 0 {
		t.Fatal("expected no remote calls for a nil asset")
	}
}

func TestUploadFileImageResolvesPreview(t *testing.T) {
	service, fakes := newTestService()
	asset := &models.Asset{Name: "thumb.png", MIMEType: "image/png", Path: "/tmp/thumb.png"}

	url, err := service.UploadFile(context.Background(), asset, FileTypeImage)
	if err != nil {
		t.Fatalf("upload image: %v", err)
	}
	if url == "" {
		t.Fatal("expected a resolved url")
	}

	if fakes.files.uploadCount() != 1 {
		t.Fatalf("expected one upload, got %d", fakes.files.uploadCount())
	}
	upload := fakes.files.uploads[0]
	if upload.bucketID != "bucket" || upload.fileID == "" {
		t.Fatalf("unexpected upload target: %+v", upload)
	}
	if upload.in.Name != "thumb.png" || upload.in.MIMEType != "image/png" {
		t.Fatalf("unexpected input file: %+v", upload.in)
	}

	if len(fakes.files.previews) != 1 {
		t.Fatalf("expected one preview resolution, got %d", len(fakes.files.previews))
	}
	preview := fakes.files.previews[0]
	want := appwrite.PreviewOptions{Width: 2000, Height: 2000, Gravity: "top", Quality: 100}
	if preview.opts != want {
		t.Fatalf("expected preview options %+v got %+v", want, preview.opts)
	}
	if preview.fileID != upload.fileID {
		t.Fatalf("preview resolved for %q but upload was %q", preview.fileID, upload.fileID)
	}
}

func TestUploadFileVideoResolvesView(t *testing.T) {
	service, fakes := newTestService()
	asset := &models.Asset{Name: "clip.mp4", MIMEType: "video/mp4", Path: "/tmp/clip.mp4"}

	url, err := service.UploadFile(context.Background(), asset, FileTypeVideo)
	if err != nil {
		t.Fatalf("upload video: %v", err)
	}
	if url == "" {
		t.Fatal("expected a resolved url")
	}

	if len(fakes.files.views) != 1 || len(fakes.files.previews) != 0 {
		t.Fatalf("expected a single view resolution, got views=%d previews=%d",
			len(fakes.files.views), len(fakes.files.previews))
	}
}

func TestFilePreviewUnknownTypeMakesNoCalls(t *testing.T) {
	service, fakes := newTestService()

	_, err := service.FilePreview("file-1", "unknown")

	var typeErr *InvalidFileTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected *InvalidFileTypeError, got %T: %v", err, err)
	}
	if typeErr.Type != "unknown" {
		t.Fatalf("expected the offending type to be reported, got %q", typeErr.Type)
	}
	if len(fakes.files.views) != 0 || len(fakes.files.previews) != 0 {
		t.Fatal("expected no url resolution for an unknown type")
	}
}

func TestFilePreviewEmptyURL(t *testing.T) {
	service, fakes := newTestService()
	fakes.files.emptyURLs = true

	for _, kind := range []string{FileTypeImage, FileTypeVideo} {
		_, err := service.FilePreview("file-1", kind)

		var previewErr *PreviewResolutionError
		if !errors.As(err, &previewErr) {
			t.Fatalf("%s: expected *PreviewResolutionError, got %T: %v", kind, err, err)
		}
		if previewErr.FileID != "file-1" {
			t.Fatalf("%s: expected the file id to be reported, got %q", kind, previewErr.FileID)
		}
	}
}
