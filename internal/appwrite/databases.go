package appwrite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Document is a stored record: facade-owned metadata plus the raw app-level
// fields, decodable into a typed struct via Decode.
type Document struct {
	ID           string
	CollectionID string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	raw json.RawMessage
}

// UnmarshalJSON splits the metadata attributes from the field payload, which
// is retained verbatim for Decode.
func (d *Document) UnmarshalJSON(data []byte) error {
	var meta struct {
		ID           string    `json:"$id"`
		CollectionID string    `json:"$collectionId"`
		CreatedAt    time.Time `json:"$createdAt"`
		UpdatedAt    time.Time `json:"$updatedAt"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return fmt.Errorf("decode document metadata: %w", err)
	}

	*d = Document{
		ID:           meta.ID,
		CollectionID: meta.CollectionID,
		CreatedAt:    meta.CreatedAt,
		UpdatedAt:    meta.UpdatedAt,
		raw:          append(json.RawMessage(nil), data...),
	}
	return nil
}

// Decode unmarshals the document's fields into v.
func (d Document) Decode(v any) error {
	if len(d.raw) == 0 {
		return errors.New("appwrite: empty document")
	}
	if err := json.Unmarshal(d.raw, v); err != nil {
		return fmt.Errorf("decode document %s: %w", d.ID, err)
	}
	return nil
}

// DocumentList is the result of a list call, in the order the facade chose.
type DocumentList struct {
	Total     int        `json:"total"`
	Documents []Document `json:"documents"`
}

// Databases exposes the facade's document operations.
type Databases struct {
	client *Client
}

// NewDatabases constructs the database service over the provided client.
func NewDatabases(client *Client) *Databases {
	return &Databases{client: client}
}

// CreateDocument stores a new document under the provided id.
func (db *Databases) CreateDocument(ctx context.Context, databaseID, collectionID, documentID string, fields any) (Document, error) {
	body := map[string]any{
		"documentId": documentID,
		"data":       fields,
	}

	path := fmt.Sprintf("/databases/%s/collections/%s/documents", databaseID, collectionID)

	var doc Document
	if err := db.client.call(ctx, http.MethodPost, path, nil, body, &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// ListDocuments returns the documents matching the provided queries.
func (db *Databases) ListDocuments(ctx context.Context, databaseID, collectionID string, queries ...Query) (DocumentList, error) {
	values := url.Values{}
	for _, q := range queries {
		encoded, err := q.encode()
		if err != nil {
			return DocumentList{}, err
		}
		values.Add("queries[]", encoded)
	}

	path := fmt.Sprintf("/databases/%s/collections/%s/documents", databaseID, collectionID)

	var list DocumentList
	if err := db.client.call(ctx, http.MethodGet, path, values, nil, &list); err != nil {
		return DocumentList{}, err
	}
	return list, nil
}
