// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package auth // import "blitznote.com/src/http.hmac/signature.auth"

import (
	"strings"
)

// Placeholder marks where the signature goes in a header format.
const Placeholder = "{}"

// Used in errors that are returned when parsing a malformed header format.
const (
	errFormatNoPlaceholder    ConfigurationError = "header format lacks the placeholder " + Placeholder
	errFormatManyPlaceholders ConfigurationError = "header format has more than one placeholder " + Placeholder
)

// HeaderFormat describes how a signature is embedded in a header value:
// as is, or surrounded by a constant Prefix and Suffix.
type HeaderFormat struct {
	Prefix string
	Suffix string
}

// ParseHeaderFormat splits a template such as "HMAC {}" or "sha256={}"
// at its only Placeholder.
func ParseHeaderFormat(template string) (HeaderFormat, error) {
	switch strings.Count(template, Placeholder) {
	case 0:
		return HeaderFormat{}, errFormatNoPlaceholder
	case 1:
		break
	default:
		return HeaderFormat{}, errFormatManyPlaceholders
	}

	idx := strings.Index(template, Placeholder)
	return HeaderFormat{
		Prefix: template[:idx],
		Suffix: template[idx+len(Placeholder):],
	}, nil
}

// Extract returns what is between Prefix and Suffix in value.
//
// Returns false if either is missing, if they would overlap, or if nothing is left.
func (f HeaderFormat) Extract(value string) (string, bool) {
	if len(value) <= len(f.Prefix)+len(f.Suffix) {
		return "", false
	}
	if !strings.HasPrefix(value, f.Prefix) || !strings.HasSuffix(value, f.Suffix) {
		return "", false
	}
	return value[len(f.Prefix) : len(value)-len(f.Suffix)], true
}

// Render is the inverse of Extract.
func (f HeaderFormat) Render(signature string) string {
	return f.Prefix + signature + f.Suffix
}

// String reassembles the template.
func (f HeaderFormat) String() string {
	return f.Render(Placeholder)
}
