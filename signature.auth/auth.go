// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package auth // import "blitznote.com/src/http.hmac/signature.auth"

import (
	"crypto/hmac"
	"net/http"
	"net/textproto"
	"strings"
)

// DefaultHeaderField is where the signature is expected if not configured otherwise.
const DefaultHeaderField = "X-Signature"

const errHeaderField ConfigurationError = "invalid header field name: "

// Verifier checks whether the signature in a request's header
// matches the one computed from its body.
//
// It does not change after construction and is safe for concurrent use.
type Verifier struct {
	signer *Signer
	field  string
	format HeaderFormat
}

// NewVerifier validates its arguments and returns a ready Verifier.
//
// 'headerField' is the name of the header that carries the signature,
// 'headerFormat' a template with exactly one Placeholder, like "sha256={}".
// Empty values select DefaultHeaderField, SHA256, and a bare Placeholder.
func NewVerifier(secret []byte, algorithm Algorithm, headerField, headerFormat string) (*Verifier, error) {
	signer, err := NewSigner(secret, algorithm)
	if err != nil {
		return nil, err
	}

	if headerField == "" {
		headerField = DefaultHeaderField
	}
	if strings.ContainsAny(headerField, " \t\r\n:") {
		return nil, errHeaderField + ConfigurationError(headerField)
	}

	if headerFormat == "" {
		headerFormat = Placeholder
	}
	format, err := ParseHeaderFormat(headerFormat)
	if err != nil {
		return nil, err
	}

	return &Verifier{
		signer: signer,
		field:  textproto.CanonicalMIMEHeaderKey(headerField),
		format: format,
	}, nil
}

// HeaderField returns the canonical name of the header carrying the signature.
func (v *Verifier) HeaderField() string { return v.field }

// Token extracts the signature from the headers.
func (v *Verifier) Token(headers http.Header) (string, AuthError) {
	token, ok := v.format.Extract(headers.Get(v.field))
	if !ok {
		return "", ErrSignatureMissing
	}
	return token, nil
}

// Check compares the token to the signature of body in constant time.
func (v *Verifier) Check(token string, body []byte) AuthError {
	expected := v.signer.Sign(body)
	if !hmac.Equal([]byte(token), []byte(expected)) {
		return ErrSignatureInvalid
	}
	return nil
}

// Authenticate combines Token and Check.
func (v *Verifier) Authenticate(headers http.Header, body []byte) AuthError {
	token, err := v.Token(headers)
	if err != nil {
		return err
	}
	return v.Check(token, body)
}

// Sign sets the header so that Authenticate will accept it with body.
//
// Meant for senders, and tests.
func (v *Verifier) Sign(headers http.Header, body []byte) {
	headers.Set(v.field, v.format.Render(v.signer.Sign(body)))
}
