// Package nlp holds the collaborator-backed implementations of the grammar,
// sentiment and similarity capabilities used by signal extraction, together
// with their local fallbacks.
package nlp

import (
	"errors"
	"net/http"
	"time"
)

// ErrUnavailable reports that a remote collaborator could not produce a
// result: transport error, non-2xx status, malformed body or timeout.
var ErrUnavailable = errors.New("collaborator unavailable")

const defaultHTTPTimeout = 10 * time.Second

func newHTTPClient(c *http.Client) *http.Client {
	if c != nil {
		return c
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}
