package appwrite

import (
	"context"
	"net/http"
)

// User is the facade's opaque account record. Only the fields the app reads
// are decoded.
type User struct {
	ID    string `json:"$id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is the handle for an authenticated session. The secret is the only
// field the client inspects; it is replayed on subsequent requests.
type Session struct {
	ID     string `json:"$id"`
	UserID string `json:"userId"`
	Secret string `json:"secret"`
}

// Account exposes the facade's account and session operations.
type Account struct {
	client *Client
}

// NewAccount constructs the account service over the provided client.
func NewAccount(client *Client) *Account {
	return &Account{client: client}
}

// Create registers a new account under the provided id.
func (a *Account) Create(ctx context.Context, userID, email, password, name string) (User, error) {
	body := map[string]string{
		"userId":   userID,
		"email":    email,
		"password": password,
		"name":     name,
	}

	var user User
	if err := a.client.call(ctx, http.MethodPost, "/account", nil, body, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// CreateEmailSession authenticates with email and password. The returned
// session secret becomes the client's active session.
func (a *Account) CreateEmailSession(ctx context.Context, email, password string) (Session, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var session Session
	if err := a.client.call(ctx, http.MethodPost, "/account/sessions/email", nil, body, &session); err != nil {
		return Session{}, err
	}

	a.client.SetSession(session.Secret)
	return session, nil
}

// DeleteCurrentSession revokes the active session and forgets its secret.
func (a *Account) DeleteCurrentSession(ctx context.Context) error {
	if err := a.client.call(ctx, http.MethodDelete, "/account/sessions/current", nil, nil, nil); err != nil {
		return err
	}
	a.client.ClearSession()
	return nil
}

// Get returns the account behind the active session.
func (a *Account) Get(ctx context.Context) (User, error) {
	var user User
	if err := a.client.call(ctx, http.MethodGet, "/account", nil, nil, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// HasSession reports whether the client currently holds a session secret.
func (a *Account) HasSession() bool {
	return a.client.HasSession()
}
