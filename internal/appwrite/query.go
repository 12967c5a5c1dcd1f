package appwrite

import (
	"encoding/json"
	"fmt"
)

// Query filters, orders, or bounds a document list call. Queries are encoded
// in the facade's JSON query format and passed as repeated URL parameters.
type Query struct {
	Method    string `json:"method"`
	Attribute string `json:"attribute,omitempty"`
	Values    []any  `json:"values,omitempty"`
}

// Equal matches documents whose attribute equals the provided value.
func Equal(attribute string, value any) Query {
	return Query{Method: "equal", Attribute: attribute, Values: []any{value}}
}

// Search matches documents whose attribute contains the provided term.
func Search(attribute, term string) Query {
	return Query{Method: "search", Attribute: attribute, Values: []any{term}}
}

// OrderDesc orders results by the attribute, newest first when applied to
// creation timestamps.
func OrderDesc(attribute string) Query {
	return Query{Method: "orderDesc", Attribute: attribute}
}

// Limit caps the number of returned documents.
func Limit(n int) Query {
	return Query{Method: "limit", Values: []any{n}}
}

func (q Query) encode() (string, error) {
	data, err := json.Marshal(q)
	if err != nil {
		return "", fmt.Errorf("encode %s query: %w", q.Method, err)
	}
	return string(data), nil
}
