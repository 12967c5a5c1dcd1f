package aora

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/aora/client/internal/appwrite"
	"github.com/aora/client/internal/logging"
	"github.com/aora/client/internal/models"
)

// latestPostsLimit caps the home screen's "latest" rail.
const latestPostsLimit = 7

// AllPosts returns every video post, in the facade's default order.
func (s *Service) AllPosts(ctx context.Context) ([]models.VideoPost, error) {
	return s.listPosts(ctx, "list posts")
}

// LatestPosts returns the newest posts, creation time descending, capped at
// seven items.
func (s *Service) LatestPosts(ctx context.Context) ([]models.VideoPost, error) {
	return s.listPosts(ctx, "list latest posts",
		appwrite.OrderDesc("$createdAt"),
		appwrite.Limit(latestPostsLimit))
}

// SearchPosts returns the posts whose title matches the search term.
func (s *Service) SearchPosts(ctx context.Context, term string) ([]models.VideoPost, error) {
	return s.listPosts(ctx, "search posts", appwrite.Search("title", term))
}

// UserPosts returns the posts created by the provided user.
func (s *Service) UserPosts(ctx context.Context, userID string) ([]models.VideoPost, error) {
	return s.listPosts(ctx, "list user posts", appwrite.Equal("creator", userID))
}

func (s *Service) listPosts(ctx context.Context, op string, queries ...appwrite.Query) ([]models.VideoPost, error) {
	list, err := s.deps.Documents.ListDocuments(ctx, s.cols.DatabaseID, s.cols.VideoCollectionID, queries...)
	if err != nil {
		return nil, &DocumentQueryError{Op: op, Err: err}
	}

	posts := make([]models.VideoPost, 0, len(list.Documents))
	for _, doc := range list.Documents {
		var post models.VideoPost
		if err := doc.Decode(&post); err != nil {
			return nil, &DocumentQueryError{Op: op, Err: err}
		}
		posts = append(posts, post)
	}

	return posts, nil
}

// VideoForm carries the inputs for publishing a new video post.
type VideoForm struct {
	Title     string
	Thumbnail *models.Asset
	Video     *models.Asset
	Prompt    string
	UserID    string
}

// CreateVideo uploads the thumbnail and video concurrently and, only once
// both resolve to durable URLs, creates the post document. The first upload
// failure aborts the whole operation and no document is created.
func (s *Service) CreateVideo(ctx context.Context, form VideoForm) (models.VideoPost, error) {
	ctx, op := logging.StartOperation(ctx, "create_video")
	defer op.End()

	if form.Thumbnail == nil || form.Video == nil {
		return models.VideoPost{}, errors.New("thumbnail and video are required")
	}

	var thumbnailURL, videoURL string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		thumbnailURL, err = s.UploadFile(gctx, form.Thumbnail, FileTypeImage)
		return err
	})
	g.Go(func() error {
		var err error
		videoURL, err = s.UploadFile(gctx, form.Video, FileTypeVideo)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.VideoPost{}, err
	}

	doc, err := s.deps.Documents.CreateDocument(ctx, s.cols.DatabaseID, s.cols.VideoCollectionID, appwrite.UniqueID(), map[string]any{
		"title":     form.Title,
		"thumbnail": thumbnailURL,
		"video":     videoURL,
		"prompt":    form.Prompt,
		"creator":   form.UserID,
	})
	if err != nil {
		return models.VideoPost{}, &DocumentQueryError{Op: "create video document", Err: err}
	}

	var post models.VideoPost
	if err := doc.Decode(&post); err != nil {
		return models.VideoPost{}, &DocumentQueryError{Op: "decode video document", Err: err}
	}

	return post, nil
}
