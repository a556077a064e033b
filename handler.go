// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmacauth // import "blitznote.com/src/http.hmac"

import (
	"net/http"
)

// NewHandler creates a new instance of this package's verifying handler,
// meant to be used in Go's own http server.
//
// Its responsibility is to reject invalid or formally incorrect configurations.
//
// 'next' is optional and receives all requests that pass verification.
func NewHandler(config *Configuration, next http.Handler) (*Handler, error) {
	g, err := newGuard(config)
	if err != nil {
		return nil, err
	}

	h := Handler{
		Next:  next,
		guard: g,
	}
	if next == nil {
		h.Next = http.NotFoundHandler()
	}

	return &h, nil
}

// Middleware is NewHandler in the shape most routers expect for chaining,
// such as gorilla/mux with its 'Use'. All handlers share the same configuration.
func Middleware(config *Configuration) (func(http.Handler) http.Handler, error) {
	g, err := newGuard(config)
	if err != nil {
		return nil, err
	}

	return func(next http.Handler) http.Handler {
		return &Handler{
			Next:  next,
			guard: g,
		}
	}, nil
}

// Handler implements http.Handler.
type Handler struct {
	Next http.Handler

	guard *guard
}

// ServeHTTP defers the request to the next handler if its signature is valid.
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpCode, _ := h.guard.serveHTTP(w, r,
		func(w http.ResponseWriter, r *http.Request) (int, error) {
			h.Next.ServeHTTP(w, r)
			return 0, nil
		},
	)

	// Causes have been logged already, and are none of the client's business.
	if httpCode >= 400 {
		http.Error(w, http.StatusText(httpCode), httpCode)
	}
}
