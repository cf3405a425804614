// SPDX-License-Identifier: MIT
// Package core: sentinel error set. This file defines ONLY the
// package-level sentinel errors of the numeric core. Operations return
// these sentinels directly and tests match them via errors.Is; wrap with
// fmt.Errorf("ctx: %w", ErrX) only at an outer boundary.

package core

import "errors"

// ErrDivisionByZero is returned by Div and Inverse when the divisor is the
// zero value, and by Atan at its singular point z = i. It is one of the two
// error kinds of the whole library (the other is parse.ErrInvalidArgument);
// every other irregular numeric outcome propagates as IEEE NaN/Inf instead
// of erroring.
var ErrDivisionByZero = errors.New("core: division by zero")
