package aora

import (
	"context"

	"github.com/aora/client/internal/appwrite"
)

// Accounts captures the account and session operations the flows require.
type Accounts interface {
	Create(ctx context.Context, userID, email, password, name string) (appwrite.User, error)
	CreateEmailSession(ctx context.Context, email, password string) (appwrite.Session, error)
	DeleteCurrentSession(ctx context.Context) error
	Get(ctx context.Context) (appwrite.User, error)
	HasSession() bool
}

// Documents captures the document operations the flows require.
type Documents interface {
	CreateDocument(ctx context.Context, databaseID, collectionID, documentID string, fields any) (appwrite.Document, error)
	ListDocuments(ctx context.Context, databaseID, collectionID string, queries ...appwrite.Query) (appwrite.DocumentList, error)
}

// Files captures the storage operations the flows require. The URL methods
// are local derivations and take no context.
type Files interface {
	CreateFile(ctx context.Context, bucketID, fileID string, in appwrite.InputFile) (appwrite.File, error)
	FileViewURL(bucketID, fileID string) string
	FilePreviewURL(bucketID, fileID string, opts appwrite.PreviewOptions) string
}

// Avatars derives avatar URLs from display names.
type Avatars interface {
	InitialsURL(name string) string
}
