package aora

import (
	"context"
	"errors"

	"github.com/aora/client/internal/appwrite"
	"github.com/aora/client/internal/logging"
	"github.com/aora/client/internal/models"
)

// CreateUser registers a new account and leaves the caller with an active
// session and a stored profile document. The steps run strictly in order:
// account create, avatar derivation, sign-in, profile document create. A
// failure aborts the remainder; a failure after the account was created
// leaves that account without a profile document.
func (s *Service) CreateUser(ctx context.Context, email, password, username string) (models.UserProfile, error) {
	ctx, op := logging.StartOperation(ctx, "create_user")
	defer op.End()

	account, err := s.deps.Accounts.Create(ctx, appwrite.UniqueID(), email, password, username)
	if err != nil {
		return models.UserProfile{}, &AccountCreationError{Err: err}
	}
	if account.ID == "" {
		return models.UserProfile{}, &AccountCreationError{Err: errors.New("facade returned no account")}
	}

	avatarURL := s.deps.Avatars.InitialsURL(username)

	if _, err := s.SignIn(ctx, email, password); err != nil {
		return models.UserProfile{}, err
	}

	doc, err := s.deps.Documents.CreateDocument(ctx, s.cols.DatabaseID, s.cols.UserCollectionID, appwrite.UniqueID(), map[string]any{
		"accountId": account.ID,
		"email":     email,
		"username":  username,
		"avatar":    avatarURL,
	})
	if err != nil {
		return models.UserProfile{}, &DocumentQueryError{Op: "create profile document", Err: err}
	}

	var profile models.UserProfile
	if err := doc.Decode(&profile); err != nil {
		return models.UserProfile{}, &DocumentQueryError{Op: "decode profile document", Err: err}
	}

	return profile, nil
}

// SignIn establishes an email session. Any already active session is deleted
// first, so at most one session is live per client at a time.
func (s *Service) SignIn(ctx context.Context, email, password string) (appwrite.Session, error) {
	ctx, op := logging.StartOperation(ctx, "sign_in")
	defer op.End()

	if s.deps.Accounts.HasSession() {
		if err := s.deps.Accounts.DeleteCurrentSession(ctx); err != nil {
			return appwrite.Session{}, &AuthenticationError{Err: err}
		}
	}

	session, err := s.deps.Accounts.CreateEmailSession(ctx, email, password)
	if err != nil {
		return appwrite.Session{}, &AuthenticationError{Err: err}
	}

	return session, nil
}

// SignOut deletes the active session.
func (s *Service) SignOut(ctx context.Context) error {
	ctx, op := logging.StartOperation(ctx, "sign_out")
	defer op.End()

	if err := s.deps.Accounts.DeleteCurrentSession(ctx); err != nil {
		return &AuthenticationError{Err: err}
	}
	return nil
}

// CurrentUser resolves the profile document of the active account. It is a
// soft auth-state check: no active account, no matching profile, or any
// failure yields nil rather than an error. If the facade ever returns more
// than one matching profile the first is used.
func (s *Service) CurrentUser(ctx context.Context) *models.UserProfile {
	ctx, op := logging.StartOperation(ctx, "current_user")
	defer op.End()

	logger := logging.FromContext(ctx)

	account, err := s.deps.Accounts.Get(ctx)
	if err != nil {
		logger.Debug("no active account", "error", err)
		return nil
	}
	if account.ID == "" {
		return nil
	}

	list, err := s.deps.Documents.ListDocuments(ctx, s.cols.DatabaseID, s.cols.UserCollectionID,
		appwrite.Equal("accountId", account.ID))
	if err != nil {
		logger.Warn("profile lookup failed", "accountId", account.ID, "error", err)
		return nil
	}
	if len(list.Documents) == 0 {
		logger.Warn("account has no profile document", "accountId", account.ID)
		return nil
	}

	var profile models.UserProfile
	if err := list.Documents[0].Decode(&profile); err != nil {
		logger.Warn("decode profile document", "accountId", account.ID, "error", err)
		return nil
	}

	return &profile
}
