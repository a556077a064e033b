// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmacauth // import "blitznote.com/src/http.hmac"

import (
	"encoding/base64"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	auth "blitznote.com/src/http.hmac/signature.auth"
)

// Configuration represents the settings for a scope (path).
//
// Handlers take a snapshot on construction;
// changes made afterwards don't affect them.
type Configuration struct {
	// Key for the HMAC. Required.
	SharedSecret []byte

	// Hash underlying the HMAC. Defaults to auth.SHA256.
	Algorithm auth.Algorithm

	// Name of the header that carries the signature.
	HeaderField string

	// How the signature is embedded in HeaderField, with one auth.Placeholder.
	// For example "sha256={}".
	HeaderFormat string

	// Requests with larger bodies get rejected with 413.
	// In bytes. 0 means unlimited.
	MaxBodySize int64

	// Receives one line per rejected request. Optional.
	Logger *zerolog.Logger
}

// NewDefaultConfiguration creates a new default configuration.
func NewDefaultConfiguration(secret []byte) *Configuration {
	return &Configuration{
		SharedSecret: secret,
		Algorithm:    auth.SHA256,
		HeaderField:  auth.DefaultHeaderField,
		HeaderFormat: auth.Placeholder,
	}
}

// SetSharedSecret decodes the secret from its base64 representation.
//
// For example:
//  RZ9FvpusdSdjHT0hjv3eRgw4WNj12GYZu3pN3r/jVKE=
func (c *Configuration) SetSharedSecret(encoded string) error {
	binary, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return errors.Wrap(err, "shared secret must be in base64")
	}
	c.SharedSecret = binary
	return nil
}

// SetAlgorithm is like assigning to Algorithm, but with validation.
func (c *Configuration) SetAlgorithm(name string) error {
	a, err := auth.ParseAlgorithm(name)
	if err != nil {
		return err
	}
	c.Algorithm = a
	return nil
}

// verifier rejects invalid or formally incorrect configurations.
func (c *Configuration) verifier() (*auth.Verifier, error) {
	if c.MaxBodySize < 0 {
		return nil, auth.ConfigurationError("max body size must not be negative")
	}
	return auth.NewVerifier(c.SharedSecret, c.Algorithm, c.HeaderField, c.HeaderFormat)
}
