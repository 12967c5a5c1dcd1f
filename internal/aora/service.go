// Package aora implements the client-side flows of the Aora video app: the
// registration-and-bootstrap sequence, session management, current-user
// resolution, post listing and search, and typed upload with concurrent
// publishing. All durable state lives behind the remote facade; the service
// itself is stateless.
package aora

// Collections names the remote database, collections, and bucket the flows
// operate on.
type Collections struct {
	DatabaseID        string
	UserCollectionID  string
	VideoCollectionID string
	StorageID         string
}

// Dependencies aggregates the facade services the flows call.
type Dependencies struct {
	Accounts  Accounts
	Documents Documents
	Files     Files
	Avatars   Avatars
}

// Service is the backend client module consumed by the app's UI layer.
type Service struct {
	deps Dependencies
	cols Collections
}

// New constructs a Service over the provided facade services.
func New(deps Dependencies, cols Collections) *Service {
	if deps.Accounts == nil || deps.Documents == nil || deps.Files == nil || deps.Avatars == nil {
		panic("aora: all facade services must be provided")
	}
	return &Service{deps: deps, cols: cols}
}
