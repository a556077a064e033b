// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package auth implements verification of HMAC signatures
// which a sender computes over the raw body of a HTTP request.
//
// The sender is expected to put the signature into one header,
// optionally wrapped in a constant prefix and suffix, like this:
//
//  Authorization: HMAC uYRUNd8Qu0vogK9Kv92FWZrFMsoroEl0RfE8hMUJAl8=
//  X-Hub-Signature: sha256=uYRUNd8Qu0vogK9Kv92FWZrFMsoroEl0RfE8hMUJAl8=
//
// Where the header's name and its format (here "HMAC {}" and "sha256={}")
// are agreed upon in advance.
//
// This is how you generate aforementioned signature on the Linux shell,
// given the shared secret in base64:
//  secret="RZ9FvpusdSdjHT0hjv3eRgw4WNj12GYZu3pN3r/jVKE="
//  body='{"text": "test"}'
//
//  printf '%s' "${body}" \
//  | openssl dgst -sha256 -mac HMAC \
//      -macopt hexkey:$(printf '%s' "${secret}" | base64 -d | xxd -p -c 256) -binary \
//  | openssl enc -base64
//
// After that it's using, for example, 'curl' like this:
//  curl --data-binary "${body}" \
//    --header 'Authorization: HMAC …' \
//    <url>
package auth // import "blitznote.com/src/http.hmac/signature.auth"
