package hypr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrResponse is matched by every *ResponseError.
var ErrResponse = errors.New("hypr: compositor rejected command")

// ResponseError carries an error-shaped reply.
type ResponseError struct {
	Response string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("hypr: compositor replied %q", e.Response)
}

func (e *ResponseError) Unwrap() error {
	return ErrResponse
}

// Prefixes the compositor uses for refusals, lowercased.
var errorPrefixes = []string{
	"unknown request",
	"invalid",
	"error",
	"couldn't",
	"no such",
	"not found",
}

// CheckResponse classifies a reply returned by Client.Send. It is a
// heuristic over known refusal texts; Send itself never calls it, so a
// refusal is only an error for callers that ask.
func CheckResponse(response string) error {
	text := strings.ToLower(strings.TrimSpace(response))
	for _, prefix := range errorPrefixes {
		if strings.HasPrefix(text, prefix) {
			return &ResponseError{Response: strings.TrimSpace(response)}
		}
	}
	return nil
}
