package appwrite

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"strconv"
)

// InputFile references a local file to be uploaded.
type InputFile struct {
	Path     string
	Name     string
	MIMEType string
}

// File is the facade's record for a stored binary.
type File struct {
	ID       string `json:"$id"`
	Name     string `json:"name"`
	MIMEType string `json:"mimeType"`
	Size     int64  `json:"sizeOriginal"`
}

// PreviewOptions are the server-side transform parameters applied when
// resolving an image preview URL.
type PreviewOptions struct {
	Width   int
	Height  int
	Gravity string
	Quality int
}

// Storage exposes the facade's file operations.
type Storage struct {
	client *Client
}

// NewStorage constructs the storage service over the provided client.
func NewStorage(client *Client) *Storage {
	return &Storage{client: client}
}

// CreateFile uploads the referenced local file under the provided id.
func (s *Storage) CreateFile(ctx context.Context, bucketID, fileID string, in InputFile) (File, error) {
	f, err := os.Open(in.Path)
	if err != nil {
		return File{}, fmt.Errorf("open upload source: %w", err)
	}
	defer f.Close()

	name := in.Name
	if name == "" {
		name = fileID
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("fileId", fileID); err != nil {
		return File{}, fmt.Errorf("write file id field: %w", err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, name))
	if in.MIMEType != "" {
		header.Set("Content-Type", in.MIMEType)
	}

	part, err := writer.CreatePart(header)
	if err != nil {
		return File{}, fmt.Errorf("create file part: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return File{}, fmt.Errorf("copy upload body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return File{}, fmt.Errorf("finalise upload body: %w", err)
	}

	path := fmt.Sprintf("/storage/buckets/%s/files", bucketID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.client.url(path, nil), &body)
	if err != nil {
		return File{}, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var file File
	if err := s.client.send(req, &file); err != nil {
		return File{}, err
	}
	return file, nil
}

// FileViewURL returns the direct, untransformed URL for a stored file.
func (s *Storage) FileViewURL(bucketID, fileID string) string {
	values := url.Values{}
	values.Set("project", s.client.projectID)

	path := fmt.Sprintf("/storage/buckets/%s/files/%s/view", bucketID, fileID)
	return s.client.url(path, values)
}

// FilePreviewURL returns the transformed preview URL for a stored file.
func (s *Storage) FilePreviewURL(bucketID, fileID string, opts PreviewOptions) string {
	values := url.Values{}
	if opts.Width > 0 {
		values.Set("width", strconv.Itoa(opts.Width))
	}
	if opts.Height > 0 {
		values.Set("height", strconv.Itoa(opts.Height))
	}
	if opts.Gravity != "" {
		values.Set("gravity", opts.Gravity)
	}
	if opts.Quality > 0 {
		values.Set("quality", strconv.Itoa(opts.Quality))
	}
	values.Set("project", s.client.projectID)

	path := fmt.Sprintf("/storage/buckets/%s/files/%s/preview", bucketID, fileID)
	return s.client.url(path, values)
}
