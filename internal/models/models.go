package models

import "time"

// UserProfile is the application-level user record stored in the user
// collection, distinct from the backend's opaque account record.
type UserProfile struct {
	ID        string    `json:"$id"`
	AccountID string    `json:"accountId"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"$createdAt"`
}

// VideoPost is a published video referencing its resolved asset URLs.
type VideoPost struct {
	ID        string    `json:"$id"`
	Title     string    `json:"title"`
	Thumbnail string    `json:"thumbnail"`
	Video     string    `json:"video"`
	Prompt    string    `json:"prompt"`
	CreatorID string    `json:"creator"`
	CreatedAt time.Time `json:"$createdAt"`
}

// Asset describes a local file picked for upload. It is transient: once the
// binary is stored remotely only the resolved URL is retained.
type Asset struct {
	Name     string
	MIMEType string
	Path     string
}
