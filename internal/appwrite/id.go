package appwrite

import "github.com/google/uuid"

// UniqueID returns a fresh identifier suitable for new documents and files.
func UniqueID() string {
	return uuid.NewString()
}
