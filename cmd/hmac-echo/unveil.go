// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !openbsd
// +build !openbsd

package main

// unveilBlock removes access to the filesystem from this process.
//
// Call this last, after any files (such as .env) have been read.
//
// Is a nop on this operating system.
func unveilBlock() error {
	return nil
}
