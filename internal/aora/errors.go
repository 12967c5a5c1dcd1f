package aora

import "fmt"

// AccountCreationError reports a failed remote account registration.
type AccountCreationError struct {
	Err error
}

func (e *AccountCreationError) Error() string {
	return fmt.Sprintf("create account: %v", e.Err)
}

func (e *AccountCreationError) Unwrap() error { return e.Err }

// AuthenticationError reports a failed session create or delete.
type AuthenticationError struct {
	Err error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authenticate: %v", e.Err)
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// InvalidFileTypeError reports an upload kind outside {image, video}. It is
// raised before any remote call is made.
type InvalidFileTypeError struct {
	Type string
}

func (e *InvalidFileTypeError) Error() string {
	return fmt.Sprintf("invalid file type %q", e.Type)
}

// PreviewResolutionError reports that no durable URL could be resolved for a
// stored file.
type PreviewResolutionError struct {
	FileID string
}

func (e *PreviewResolutionError) Error() string {
	return fmt.Sprintf("resolve preview for file %s: empty url", e.FileID)
}

// DocumentQueryError reports a failed document list or create call.
type DocumentQueryError struct {
	Op  string
	Err error
}

func (e *DocumentQueryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DocumentQueryError) Unwrap() error { return e.Err }
