package appwrite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Error is the facade's error envelope, returned for any non-2xx response.
type Error struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Type    string `json:"type"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("appwrite: %s (%d %s)", e.Message, e.Code, e.Type)
}

// decodeError maps a response body to an *Error, falling back to the HTTP
// status when the body is not a recognisable envelope.
func decodeError(status int, body []byte) error {
	var apiErr Error
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Message == "" {
		message := strings.TrimSpace(string(body))
		if message == "" {
			message = http.StatusText(status)
		}
		return &Error{Message: message, Code: status, Type: "general_unknown"}
	}
	if apiErr.Code == 0 {
		apiErr.Code = status
	}
	return &apiErr
}
