// SPDX-License-Identifier: MIT
// Package parse: multi-format construction. Parse normalizes every
// accepted shape into a fresh core.Complex; nothing here keeps state
// between calls.

package parse

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/cval/core"
)

// Parse normalizes v into a core.Complex.
//
// See the package documentation for the full list of accepted shapes.
// Unrecognized types, unparseable strings and inputs producing a
// non-finite component fail with ErrInvalidArgument.
func Parse(v any) (core.Complex, error) {
	switch x := v.(type) {
	case core.Complex:
		return x, nil
	case complex128:
		return finite(core.New(real(x), imag(x)))
	case complex64:
		return finite(core.New(float64(real(x)), float64(imag(x))))
	case string:
		return parseString(x)
	case map[string]float64:
		return parseMap(x)
	case map[string]any:
		m := make(map[string]float64, len(x))
		for k, raw := range x {
			f, ok := toFloat(raw)
			if !ok {
				return core.Zero, fmt.Errorf("parse: map value %q is %T: %w", k, raw, ErrInvalidArgument)
			}
			m[k] = f
		}

		return parseMap(m)
	case []float64:
		return FromVector(x)
	case [2]float64:
		return finite(core.New(x[0], x[1]))
	default:
		if f, ok := toFloat(v); ok {
			return finite(core.New(f, 0))
		}

		return core.Zero, fmt.Errorf("parse: unsupported type %T: %w", v, ErrInvalidArgument)
	}
}

// FromPolar returns the Cartesian value abs·(cos(arg), sin(arg)).
func FromPolar(abs, arg float64) core.Complex {
	return core.New(abs*math.Cos(arg), abs*math.Sin(arg))
}

// FromVector converts a (re, im) slice into a value. A single element is
// taken as a pure real; any other length fails with ErrInvalidArgument.
func FromVector(v []float64) (core.Complex, error) {
	switch len(v) {
	case 1:
		return finite(core.New(v[0], 0))
	case 2:
		return finite(core.New(v[0], v[1]))
	default:
		return core.Zero, fmt.Errorf("parse: vector length %d: %w", len(v), ErrInvalidArgument)
	}
}

// parseMap dispatches on the key shape: Cartesian {re, im} wins when
// either key is present, polar {abs, arg} otherwise. Missing keys of the
// chosen shape default to zero; an alien key set is rejected.
func parseMap(m map[string]float64) (core.Complex, error) {
	re, hasRe := m["re"]
	im, hasIm := m["im"]
	if hasRe || hasIm {
		return finite(core.New(re, im))
	}

	abs, hasAbs := m["abs"]
	arg, hasArg := m["arg"]
	if hasAbs || hasArg {
		return finite(FromPolar(abs, arg))
	}

	return core.Zero, fmt.Errorf("parse: map needs re/im or abs/arg keys: %w", ErrInvalidArgument)
}

// parseString tokenizes a sum of signed real and imaginary terms.
// Whitespace is insignificant; terms of the same kind accumulate.
func parseString(s string) (core.Complex, error) {
	t := strings.ReplaceAll(s, " ", "")
	if t == "" {
		return core.Zero, fmt.Errorf("parse: empty string: %w", ErrInvalidArgument)
	}

	var re, im float64
	for i := 0; i < len(t); {
		k := termEnd(t, i)
		val, imag, err := parseTerm(t[i:k])
		if err != nil {
			return core.Zero, fmt.Errorf("parse: %q: %w", s, err)
		}
		if imag {
			im += val
		} else {
			re += val
		}
		i = k
	}

	return finite(core.New(re, im))
}

// termEnd returns the index just past the term starting at i: the next
// top-level '+'/'-' that is neither the term's own leading sign nor an
// exponent sign ("1e-5").
func termEnd(t string, i int) int {
	k := i + 1 // skip a leading sign or first digit
	for k < len(t) {
		if (t[k] == '+' || t[k] == '-') && t[k-1] != 'e' && t[k-1] != 'E' {
			break
		}
		k++
	}

	return k
}

// parseTerm evaluates one signed term. A trailing 'i' marks it imaginary;
// a bare "i", "+i" or "-i" means magnitude 1.
func parseTerm(term string) (val float64, imag bool, err error) {
	body := term
	if strings.HasSuffix(body, "i") {
		imag = true
		body = body[:len(body)-1]
		switch body {
		case "", "+":
			return 1, true, nil
		case "-":
			return -1, true, nil
		}
	}

	val, err = strconv.ParseFloat(body, 64)
	if err != nil {
		return 0, false, fmt.Errorf("bad term %q: %w", term, ErrInvalidArgument)
	}

	return val, imag, nil
}

// finite enforces the constructor contract: both components must be
// finite. NaN and ±Inf never enter the library through Parse; they can
// only arise downstream from IEEE propagation.
func finite(c core.Complex) (core.Complex, error) {
	if c.IsNaN() || math.IsInf(c.Re(), 0) || math.IsInf(c.Im(), 0) {
		return core.Zero, fmt.Errorf("parse: non-finite component: %w", ErrInvalidArgument)
	}

	return c, nil
}

// toFloat widens any Go real numeric kind to float64.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}
