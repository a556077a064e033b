// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hmacauth contains a HTTP handler, also available as plugin for Caddy,
// which lets through only requests that have been signed using a shared secret.
//
// It is meant to be put in front of endpoints that receive webhooks:
// The sender computes a HMAC over the request body exactly as sent,
// encodes it in base64, and puts it into a header.
// Anything that arrives without a signature is rejected with 400,
// anything with a wrong signature with 401.
// The body remains readable for the handlers that come next.
//
// The header is configurable, as is the format of its value.
// For example, with "Authorization" and "HMAC {}":
//
//  Authorization: HMAC uYRUNd8Qu0vogK9Kv92FWZrFMsoroEl0RfE8hMUJAl8=
//
// Package blitznote.com/src/http.hmac/signature.auth explains how to
// generate signatures on the shell.
//
// In a 'Caddyfile', given build tag 'caddyserver1.0', it is configured like this:
//
//  hmac /webhook {
//  	secret        RZ9FvpusdSdjHT0hjv3eRgw4WNj12GYZu3pN3r/jVKE=
//  	algorithm     sha256
//  	header        Authorization
//  	format        "HMAC {}"
//  	max_body_size 1048576
//  }
//
// Of which only 'secret' is mandatory, in base64.
package hmacauth // import "blitznote.com/src/http.hmac"
