// SPDX-License-Identifier: MIT
// Package parse: sentinel error set. Malformed constructor input is the
// only failure mode of this package; callers match it via errors.Is.

package parse

import "errors"

// ErrInvalidArgument is returned by Parse, FromVector and the other
// constructors when the input matches none of the accepted shapes or
// yields a non-finite component. Construction aborts immediately; there is
// no partial result.
var ErrInvalidArgument = errors.New("parse: invalid argument")
