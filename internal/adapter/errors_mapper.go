package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// errorBody is the JSON shape the backend uses for non-2xx responses.
type errorBody struct {
	Message string `json:"message"`
}

// mapHTTPError converts a completed resty response into an error value.
// 2xx responses map to nil. 401 maps to [ErrUnauthorized]. Other non-2xx
// responses are parsed as a {message} JSON document; when parsing fails the
// generic "Network error" message is used instead.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	message := genericErrorMessage
	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil && strings.TrimSpace(body.Message) != "" {
		message = body.Message
	}

	return &HTTPError{StatusCode: resp.StatusCode(), Message: message}
}
