package aora

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/aora/client/internal/appwrite"
)

// fakeAccounts mimics the facade's account service, tracking call order and
// how many sessions are concurrently active.
type fakeAccounts struct {
	createErr  error
	sessionErr error
	deleteErr  error
	getErr     error

	emptyAccount bool
	current      appwrite.User

	hasSession     bool
	activeSessions int
	maxSessions    int
	calls          []string
}

func (f *fakeAccounts) Create(_ context.Context, userID, email, _, name string) (appwrite.User, error) {
	f.calls = append(f.calls, "create account")
	if f.createErr != nil {
		return appwrite.User{}, f.createErr
	}
	if f.emptyAccount {
		return appwrite.User{}, nil
	}
	return appwrite.User{ID: userID, Email: email, Name: name}, nil
}

func (f *fakeAccounts) CreateEmailSession(_ context.Context, email, _ string) (appwrite.Session, error) {
	f.calls = append(f.calls, "create session")
	if f.sessionErr != nil {
		return appwrite.Session{}, f.sessionErr
	}
	f.hasSession = true
	f.activeSessions++
	if f.activeSessions > f.maxSessions {
		f.maxSessions = f.activeSessions
	}
	return appwrite.Session{ID: "sess-1", UserID: email, Secret: "s3cret"}, nil
}

func (f *fakeAccounts) DeleteCurrentSession(_ context.Context) error {
	f.calls = append(f.calls, "delete session")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if f.activeSessions > 0 {
		f.activeSessions--
	}
	f.hasSession = false
	return nil
}

func (f *fakeAccounts) Get(_ context.Context) (appwrite.User, error) {
	f.calls = append(f.calls, "get account")
	if f.getErr != nil {
		return appwrite.User{}, f.getErr
	}
	return f.current, nil
}

func (f *fakeAccounts) HasSession() bool {
	return f.hasSession
}

type createdDocument struct {
	databaseID   string
	collectionID string
	documentID   string
	fields       map[string]any
}

type listCall struct {
	databaseID   string
	collectionID string
	queries      []appwrite.Query
}

// fakeDocuments mimics the facade's document service. Created documents echo
// their fields back the way the real facade does.
type fakeDocuments struct {
	createErr error
	listErr   error

	listResult appwrite.DocumentList

	created []createdDocument
	lists   []listCall
}

func (f *fakeDocuments) CreateDocument(_ context.Context, databaseID, collectionID, documentID string, fields any) (appwrite.Document, error) {
	m, _ := fields.(map[string]any)
	f.created = append(f.created, createdDocument{
		databaseID:   databaseID,
		collectionID: collectionID,
		documentID:   documentID,
		fields:       m,
	})
	if f.createErr != nil {
		return appwrite.Document{}, f.createErr
	}

	payload := map[string]any{
		"$id":           documentID,
		"$collectionId": collectionID,
		"$createdAt":    "2024-08-06T07:29:33.493+00:00",
	}
	for k, v := range m {
		payload[k] = v
	}
	return docFromFields(payload)
}

func (f *fakeDocuments) ListDocuments(_ context.Context, databaseID, collectionID string, queries ...appwrite.Query) (appwrite.DocumentList, error) {
	f.lists = append(f.lists, listCall{databaseID: databaseID, collectionID: collectionID, queries: queries})
	if f.listErr != nil {
		return appwrite.DocumentList{}, f.listErr
	}
	return f.listResult, nil
}

func docFromFields(fields map[string]any) (appwrite.Document, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return appwrite.Document{}, fmt.Errorf("marshal fake document: %w", err)
	}
	var doc appwrite.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return appwrite.Document{}, fmt.Errorf("unmarshal fake document: %w", err)
	}
	return doc, nil
}

func mustDoc(t *testing.T, fields map[string]any) appwrite.Document {
	t.Helper()
	doc, err := docFromFields(fields)
	if err != nil {
		t.Fatalf("build fake document: %v", err)
	}
	return doc
}

type uploadCall struct {
	bucketID string
	fileID   string
	in       appwrite.InputFile
}

type previewCall struct {
	bucketID string
	fileID   string
	opts     appwrite.PreviewOptions
}

// fakeFiles mimics the facade's storage service. An optional gate forces
// concurrent uploads to overlap before either may return.
type fakeFiles struct {
	createErr error
	emptyURLs bool
	gate      *sync.WaitGroup

	mu       sync.Mutex
	uploads  []uploadCall
	views    []string
	previews []previewCall
}

func (f *fakeFiles) CreateFile(_ context.Context, bucketID, fileID string, in appwrite.InputFile) (appwrite.File, error) {
	if f.gate != nil {
		f.gate.Done()
		f.gate.Wait()
	}

	f.mu.Lock()
	f.uploads = append(f.uploads, uploadCall{bucketID: bucketID, fileID: fileID, in: in})
	f.mu.Unlock()

	if f.createErr != nil {
		return appwrite.File{}, f.createErr
	}
	return appwrite.File{ID: fileID, Name: in.Name, MIMEType: in.MIMEType}, nil
}

func (f *fakeFiles) FileViewURL(bucketID, fileID string) string {
	f.mu.Lock()
	f.views = append(f.views, fileID)
	f.mu.Unlock()

	if f.emptyURLs {
		return ""
	}
	return "https://cdn.example.com/" + bucketID + "/" + fileID + "/view"
}

func (f *fakeFiles) FilePreviewURL(bucketID, fileID string, opts appwrite.PreviewOptions) string {
	f.mu.Lock()
	f.previews = append(f.previews, previewCall{bucketID: bucketID, fileID: fileID, opts: opts})
	f.mu.Unlock()

	if f.emptyURLs {
		return ""
	}
	return "https://cdn.example.com/" + bucketID + "/" + fileID + "/preview"
}

func (f *fakeFiles) uploadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.uploads)
}

type fakeAvatars struct{}

func (fakeAvatars) InitialsURL(name string) string {
	return "https://cdn.example.com/avatars/initials?name=" + name
}

type serviceFakes struct {
	accounts  *fakeAccounts
	documents *fakeDocuments
	files     *fakeFiles
}

func newTestService() (*Service, serviceFakes) {
	fakes := serviceFakes{
		accounts:  &fakeAccounts{},
		documents: &fakeDocuments{},
		files:     &fakeFiles{},
	}

	service := New(Dependencies{
		Accounts:  fakes.accounts,
		Documents: fakes.documents,
		Files:     fakes.files,
		Avatars:   fakeAvatars{},
	}, Collections{
		DatabaseID:        "db",
		UserCollectionID:  "users",
		VideoCollectionID: "videos",
		StorageID:         "bucket",
	})

	return service, fakes
}
