// Copyright 2023 The maskquad (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package maskquad

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMagic is returned when a stream does not start with the
	// maskquad dataset file magic number.
	ErrInvalidMagic = textErr("invalid magic number")
)

const packageName = "maskquad: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}

func textPanic(text string) {
	panic(packageName + text)
}
