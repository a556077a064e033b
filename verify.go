// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmacauth // import "blitznote.com/src/http.hmac"

import (
	"bytes"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	auth "blitznote.com/src/http.hmac/signature.auth"
)

var nopLogger = zerolog.Nop()

// guard is the compiled form of a Configuration.
// Every front-end (net/http, Caddy) funnels requests through one.
type guard struct {
	verifier    *auth.Verifier
	maxBodySize int64
	logger      *zerolog.Logger
}

func newGuard(config *Configuration) (*guard, error) {
	v, err := config.verifier()
	if err != nil {
		return nil, err
	}
	g := guard{
		verifier:    v,
		maxBodySize: config.MaxBodySize,
		logger:      config.Logger,
	}
	if g.logger == nil {
		g.logger = &nopLogger
	}
	return &g, nil
}

// serveHTTP verifies the request and calls 'next' only if it passes.
//
// Rejections are written here, and result in status code 0 as is custom with Caddy.
// Errors reading the body are returned for the host to deal with,
// along with a suggested status code.
func (g *guard) serveHTTP(w http.ResponseWriter, r *http.Request,
	next func(http.ResponseWriter, *http.Request) (int, error),
) (int, error) {
	token, authErr := g.verifier.Token(r.Header)
	if authErr != nil {
		return g.reject(w, r, authErr)
	}

	body, httpCode, err := g.bufferBody(w, r)
	if err != nil {
		g.logger.Warn().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Msg("cannot verify request")
		return httpCode, err
	}

	if authErr = g.verifier.Check(token, body); authErr != nil {
		return g.reject(w, r, authErr)
	}
	return next(w, r)
}

func (g *guard) reject(w http.ResponseWriter, r *http.Request, err auth.AuthError) (int, error) {
	g.logger.Debug().
		Stringer("outcome", auth.OutcomeOf(err)).
		Str("header", g.verifier.HeaderField()).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("remote", r.RemoteAddr).
		Msg("request rejected")

	http.Error(w, err.Error(), err.SuggestedResponseCode())
	return 0, nil
}

// bufferBody reads the body in full, and replaces it with a replayable copy.
func (g *guard) bufferBody(w http.ResponseWriter, r *http.Request) ([]byte, int, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, 0, nil
	}

	var src io.Reader = r.Body
	if g.maxBodySize > 0 {
		src = http.MaxBytesReader(w, r.Body, g.maxBodySize)
	}
	body, err := ioutil.ReadAll(src)
	r.Body.Close()
	if err != nil {
		if _, tooLarge := err.(*http.MaxBytesError); tooLarge {
			return nil, http.StatusRequestEntityTooLarge, errors.Wrap(err, "reading request body")
		}
		return nil, http.StatusInternalServerError, errors.Wrap(err, "reading request body")
	}

	r.Body = ioutil.NopCloser(bytes.NewReader(body))
	r.GetBody = func() (io.ReadCloser, error) {
		return ioutil.NopCloser(bytes.NewReader(body)), nil
	}
	return body, 0, nil
}
