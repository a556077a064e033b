// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package auth

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"hash"
	"strings"
)

// Algorithm names the hash function underlying a HMAC.
type Algorithm string

// Recognized algorithms. SHA256 is the default.
const (
	SHA1   Algorithm = "sha1" // only for legacy senders
	SHA224 Algorithm = "sha224"
	SHA256 Algorithm = "sha256"
	SHA384 Algorithm = "sha384"
	SHA512 Algorithm = "sha512"
)

const errAlgorithm ConfigurationError = "unsupported algorithm: "

var hashes = map[Algorithm]func() hash.Hash{
	SHA1:   sha1.New,
	SHA224: sha256.New224,
	SHA256: sha256.New,
	SHA384: sha512.New384,
	SHA512: sha512.New,
}

// ParseAlgorithm translates names like "sha256", "SHA-256", or "hmac-sha256"
// into the corresponding Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.TrimPrefix(s, "hmac-")
	s = strings.Replace(s, "-", "", 1)
	a := Algorithm(s)
	if _, found := hashes[a]; !found {
		return "", errAlgorithm + ConfigurationError(name)
	}
	return a, nil
}

// Signer computes signatures over payloads using one shared secret.
//
// Safe for concurrent use.
type Signer struct {
	secret []byte
	hash   func() hash.Hash
}

// NewSigner returns a Signer for the given secret and algorithm.
// The secret is copied.
func NewSigner(secret []byte, algorithm Algorithm) (*Signer, error) {
	if algorithm == "" {
		algorithm = SHA256
	}
	h, found := hashes[algorithm]
	if !found {
		return nil, errAlgorithm + ConfigurationError(algorithm)
	}
	return &Signer{
		secret: append([]byte(nil), secret...),
		hash:   h,
	}, nil
}

// Sign returns the HMAC of payload in base64 (standard alphabet, padded).
func (s *Signer) Sign(payload []byte) string {
	mac := hmac.New(s.hash, s.secret)
	mac.Write(payload)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Compute is a shorthand for NewSigner followed by Sign.
func Compute(secret []byte, algorithm Algorithm, payload []byte) (string, error) {
	s, err := NewSigner(secret, algorithm)
	if err != nil {
		return "", err
	}
	return s.Sign(payload), nil
}
