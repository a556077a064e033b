// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// Errors returned by unveilBlock.
const (
	errUnveil      unveilError = "Call 'unveil' failed"
	errUnveilEPERM unveilError = "Call 'unveil' failed: Called after locking"
)

type unveilError string

func (e unveilError) Error() string { return string(e) }

func translateUnveilErrorCode(err error) error {
	switch err {
	case nil:
		return nil
	case syscall.EPERM:
		return errUnveilEPERM
	}
	return errUnveil
}

// unveilBlock removes access to the filesystem from this process.
//
// Call this last, after any files (such as .env) have been read.
func unveilBlock() error {
	return translateUnveilErrorCode(unix.UnveilBlock())
}
